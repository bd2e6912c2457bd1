package airports

import (
	"github.com/cockroachdb/errors"
	"github.com/google/cel-go/cel"
	"github.com/katalvlaran/flightnet/core"
)

// ErrBadFilter is returned when a filter expression does not compile to a
// boolean CEL program or fails at evaluation.
var ErrBadFilter = errors.New("airports: bad filter expression")

// Filter is a compiled CEL predicate over airport fields. Available
// variables: code, name, city, country (string) and latitude, longitude
// (double). Example: `country == "Peru" && latitude < -10.0`.
type Filter struct {
	expr string
	prg  cel.Program
}

// NewFilter compiles expr. An empty expression matches every airport.
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		return &Filter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("code", cel.StringType),
		cel.Variable("name", cel.StringType),
		cel.Variable("city", cel.StringType),
		cel.Variable("country", cel.StringType),
		cel.Variable("latitude", cel.DoubleType),
		cel.Variable("longitude", cel.DoubleType),
	)
	if err != nil {
		return nil, errors.Wrap(err, "cel env")
	}
	ast, iss := env.Compile(expr)
	if iss.Err() != nil {
		return nil, errors.Wrapf(ErrBadFilter, "%s: %v", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.Wrapf(ErrBadFilter, "%s: result is %s, not bool", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(ErrBadFilter, "%s: %v", expr, err)
	}

	return &Filter{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.expr }

// Match evaluates the predicate for a.
func (f *Filter) Match(a Airport) (bool, error) {
	if f == nil || f.prg == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(map[string]any{
		"code":      a.Code,
		"name":      a.Name,
		"city":      a.City,
		"country":   a.Country,
		"latitude":  a.Latitude,
		"longitude": a.Longitude,
	})
	if err != nil {
		return false, errors.Wrapf(ErrBadFilter, "%s on %s: %v", f.expr, a.Code, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, errors.Wrapf(ErrBadFilter, "%s: non-bool result", f.expr)
	}

	return b, nil
}

// Select returns the codes of the airports in g that match f, in
// ascending order. Vertices without airport metadata are skipped.
func (f *Filter) Select(g *core.Graph) ([]string, error) {
	out := make([]string, 0, g.VertexCount())
	for _, id := range g.Vertices() {
		a, err := Lookup(g, id)
		if err != nil {
			continue
		}
		ok, err := f.Match(a)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}

	return out, nil
}
