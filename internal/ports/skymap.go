package ports

// SkyMap is the minimal capability a map needs to be photometered: pixel
// lookup and value retrieval. Implementations are immutable once loaded and
// safe for concurrent reads.
type SkyMap interface {
	// Label identifies the map-making pipeline (e.g. "smica").
	Label() string
	// Nside is the HEALPix resolution parameter.
	Nside() int
	// Npix is the total pixel count.
	Npix() int
	// Value returns the temperature of a pixel in µK.
	Value(pix int) float64
	// Seen reports whether a pixel carries usable sky (unmasked, finite,
	// not the UNSEEN sentinel).
	Seen(pix int) bool
}
