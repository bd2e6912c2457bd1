package airports

import (
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
)

var (
	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("airports: missing column")

	// ErrMalformedRow is returned for a row with a bad code, coordinate or
	// field count, unless WithSkipInvalid is set.
	ErrMalformedRow = errors.New("airports: malformed row")
)

// Column headers of the route dataset. Each row describes one route.
const (
	prefixSource      = "Source Airport "
	prefixDestination = "Destination Airport "
)

var fields = []string{"Code", "Name", "City", "Country", "Latitude", "Longitude"}

// LoadOptions configures Read and Load.
type LoadOptions struct {
	// SkipInvalid logs and skips malformed rows instead of failing. Only
	// CSV syntax errors and ErrMalformedRow are skipped; I/O errors from
	// the underlying reader always abort.
	SkipInvalid bool

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// LoadOption configures LoadOptions.
type LoadOption func(*LoadOptions)

// WithSkipInvalid skips malformed rows with a warning.
func WithSkipInvalid() LoadOption {
	return func(o *LoadOptions) {
		o.SkipInvalid = true
	}
}

// WithLogger sets the logger for load diagnostics.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *LoadOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Load opens path on fs and reads it with Read.
func Load(fs afero.Fs, path string, opts ...LoadOption) (*core.Graph, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

// Read builds the route graph from CSV data. The header row selects the
// columns, so extra columns and any column order are accepted. Every row
// upserts both airports and adds an undirected edge weighted by their
// Haversine distance in kilometres.
func Read(r io.Reader, opts ...LoadOption) (*core.Graph, error) {
	cfg := LoadOptions{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMissingColumn, "empty input")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	src, err := columns(header, prefixSource)
	if err != nil {
		return nil, err
	}
	dst, err := columns(header, prefixDestination)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	skipped := 0
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if err != nil && !errors.As(err, &perr) {
			return nil, errors.Wrapf(err, "read line %d", line)
		}
		if err == nil {
			err = addRoute(g, rec, src, dst)
		}
		if err == nil {
			continue
		}
		if !cfg.SkipInvalid || (perr == nil && !errors.Is(err, ErrMalformedRow)) {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		skipped++
		cfg.Logger.Debug("skipping row", "line", line, tint.Err(err))
	}
	if skipped > 0 {
		cfg.Logger.Warn("skipped malformed rows", "count", skipped)
	}
	cfg.Logger.Debug("route graph loaded", "airports", g.VertexCount(), "routes", g.EdgeCount())

	return g, nil
}

// columns maps each field to its header index for one endpoint prefix.
func columns(header []string, prefix string) ([]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		j, ok := idx[prefix+f]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", prefix+f)
		}
		out[i] = j
	}

	return out, nil
}

func addRoute(g *core.Graph, rec []string, src, dst []int) error {
	from, err := parseAirport(rec, src)
	if err != nil {
		return err
	}
	to, err := parseAirport(rec, dst)
	if err != nil {
		return err
	}
	if err := g.AddVertex(from.Code, from.Attributes()); err != nil {
		return err
	}
	if err := g.AddVertex(to.Code, to.Attributes()); err != nil {
		return err
	}

	return g.AddEdge(from.Code, to.Code, Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude))
}

func parseAirport(rec []string, cols []int) (Airport, error) {
	for _, c := range cols {
		if c >= len(rec) {
			return Airport{}, errors.Wrapf(ErrMalformedRow, "%d fields", len(rec))
		}
	}
	a := Airport{
		Code:    NormalizeCode(rec[cols[0]]),
		Name:    strings.TrimSpace(rec[cols[1]]),
		City:    strings.TrimSpace(rec[cols[2]]),
		Country: strings.TrimSpace(rec[cols[3]]),
	}
	if a.Code == "" {
		return Airport{}, errors.Wrap(ErrMalformedRow, "empty airport code")
	}
	var err error
	if a.Latitude, err = parseCoord(rec[cols[4]], 90); err != nil {
		return Airport{}, errors.Wrapf(err, "%s latitude", a.Code)
	}
	if a.Longitude, err = parseCoord(rec[cols[5]], 180); err != nil {
		return Airport{}, errors.Wrapf(err, "%s longitude", a.Code)
	}

	return a, nil
}

func parseCoord(s string, limit float64) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "coordinate %q", s)
	}
	if f < -limit || f > limit {
		return 0, errors.Wrapf(ErrMalformedRow, "coordinate %v out of range", f)
	}

	return f, nil
}
