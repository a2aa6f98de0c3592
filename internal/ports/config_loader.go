package ports

import "github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"

// ConfigLoader reads a measurement configuration from a file path.
type ConfigLoader interface {
	LoadMeasureConfig(path string) (domain.MeasureConfig, error)
}
