package ports

import "github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"

// WorkspaceInitializer scaffolds a measurement workspace: config template,
// map directories, runs output, state directory.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
