// Package domain contains the core measurement model for gopvac.
//
// The domain is I/O- and format-agnostic: it does not depend on FITS parsing,
// YAML, or the filesystem. Infra/adapters map into/from these types.
package domain
