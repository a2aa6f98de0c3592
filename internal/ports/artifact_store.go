package ports

import "github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"

// ArtifactStore persists measurement records for reproducibility.
type ArtifactStore interface {
	Save(rec domain.MeasurementRecord) (id string, err error)
}
