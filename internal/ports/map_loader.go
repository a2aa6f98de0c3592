package ports

import "github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"

// MapLoader materializes a SkyMap from a map spec, applying the optional
// keep-mask at load time.
type MapLoader interface {
	Load(spec domain.MapSpec, mask *domain.MaskSpec) (SkyMap, error)
}
