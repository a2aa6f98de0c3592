package skymaps

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/healpix"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
)

// Loader reads HEALPix maps from FITS binary tables (the Planck archive
// layout: map data in the first extension, one column per Stokes field,
// chunked vector cells).
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.MapLoader = (*Loader)(nil)

// Load reads the map column, converts to µK when needed, and applies the
// optional keep-mask. Only RING ordering is supported.
func (l *Loader) Load(spec domain.MapSpec, mask *domain.MaskSpec) (ports.SkyMap, error) {
	values, nside, err := readHealpixColumn(spec.Path, spec.Field)
	if err != nil {
		return nil, err
	}
	if !spec.InUK {
		for i := range values {
			if values[i] > domain.UnseenValue {
				values[i] *= domain.KelvinToMicroK
			}
		}
	}

	var keep []bool
	if mask != nil {
		mv, mnside, err := readHealpixColumn(mask.Path, mask.Field)
		if err != nil {
			return nil, err
		}
		if mnside != nside {
			return nil, &domain.OpError{
				Op:   "skymaps.load",
				Kind: domain.KindInvalidConfig,
				Path: mask.Path,
				Err:  fmt.Errorf("nside mismatch: map nside=%d vs mask nside=%d", nside, mnside),
			}
		}
		keep = make([]bool, len(mv))
		for i, v := range mv {
			keep[i] = v >= mask.Threshold
		}
	}

	return New(spec.Label, nside, values, keep)
}

// readHealpixColumn flattens one column of the first FITS extension into a
// full-sky pixel array and returns it with the NSIDE header value.
func readHealpixColumn(path string, field int) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &domain.OpError{
			Op:   "skymaps.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	fits, err := fitsio.Open(f)
	if err != nil {
		return nil, 0, loadErr(path, fmt.Errorf("not a FITS file: %w", err))
	}
	defer fits.Close()

	if len(fits.HDUs()) < 2 {
		return nil, 0, loadErr(path, fmt.Errorf("no table extension"))
	}
	tbl, ok := fits.HDU(1).(*fitsio.Table)
	if !ok {
		return nil, 0, loadErr(path, fmt.Errorf("first extension is not a binary table"))
	}

	hdr := tbl.Header()
	nside, err := headerInt(hdr, "NSIDE")
	if err != nil {
		return nil, 0, loadErr(path, err)
	}
	if !healpix.ValidNside(nside) {
		return nil, 0, loadErr(path, fmt.Errorf("invalid NSIDE %d", nside))
	}
	if ord := headerString(hdr, "ORDERING"); ord != "" && !strings.EqualFold(ord, "RING") {
		return nil, 0, &domain.OpError{
			Op:   "skymaps.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported ORDERING %q (only RING)", ord),
		}
	}

	cols := tbl.Cols()
	if field < 0 || field >= len(cols) {
		return nil, 0, loadErr(path, fmt.Errorf("field %d out of range (table has %d columns)", field, len(cols)))
	}

	npix, _ := healpix.Npix(nside)
	values := make([]float64, 0, npix)

	rows, err := tbl.Read(0, int64(tbl.NumRows()))
	if err != nil {
		return nil, 0, loadErr(path, err)
	}
	defer rows.Close()

	dests := scanDests(cols)
	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, 0, loadErr(path, err)
		}
		values = appendCell(values, dests[field])
	}
	if err := rows.Err(); err != nil {
		return nil, 0, loadErr(path, err)
	}

	if len(values) != npix {
		return nil, 0, loadErr(path, fmt.Errorf("column %d holds %d pixels, NSIDE %d implies %d", field, len(values), nside, npix))
	}
	return values, nside, nil
}

// scanDests builds one destination per column matching its TFORM: scalar or
// vector, single or double precision.
func scanDests(cols []fitsio.Column) []interface{} {
	dests := make([]interface{}, len(cols))
	for i, c := range cols {
		repeat, double := parseTform(c.Format)
		switch {
		case double && repeat > 1:
			dests[i] = new([]float64)
		case double:
			dests[i] = new(float64)
		case repeat > 1:
			dests[i] = new([]float32)
		default:
			dests[i] = new(float32)
		}
	}
	return dests
}

func appendCell(values []float64, dest interface{}) []float64 {
	switch v := dest.(type) {
	case *[]float64:
		values = append(values, *v...)
	case *float64:
		values = append(values, *v)
	case *[]float32:
		for _, x := range *v {
			values = append(values, float64(x))
		}
	case *float32:
		values = append(values, float64(*v))
	}
	return values
}

// parseTform splits a TFORM like "1024E" or "D" into repeat count and
// precision.
func parseTform(format string) (repeat int, double bool) {
	s := strings.TrimSpace(strings.ToUpper(format))
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	repeat = 1
	if i > 0 {
		if n, err := strconv.Atoi(s[:i]); err == nil {
			repeat = n
		}
	}
	double = strings.HasPrefix(s[i:], "D")
	return repeat, double
}

func headerInt(hdr *fitsio.Header, key string) (int, error) {
	card := hdr.Get(key)
	if card == nil {
		return 0, fmt.Errorf("missing %s header", key)
	}
	switch v := card.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("malformed %s header %q", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("malformed %s header (%T)", key, card.Value)
	}
}

func headerString(hdr *fitsio.Header, key string) string {
	card := hdr.Get(key)
	if card == nil {
		return ""
	}
	if s, ok := card.Value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func loadErr(path string, err error) error {
	return &domain.OpError{
		Op:   "skymaps.load",
		Kind: domain.KindMapUninitialized,
		Path: path,
		Err:  err,
	}
}
