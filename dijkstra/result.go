package dijkstra

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/flightnet/core"
)

// Reachable reports whether target was reached from the source.
func (r *Result) Reachable(target string) bool {
	d, ok := r.Dist[target]

	return ok && !math.IsInf(d, 1)
}

// PathTo walks Prev backwards from target and returns the route from the
// source to target inclusive. The route for the source itself is [source].
func (r *Result) PathTo(target string) ([]string, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, errors.Wrapf(core.ErrVertexNotFound, "target %q", target)
	}
	if !r.Reachable(target) {
		return nil, errors.Wrapf(ErrNoPath, "%s → %s", r.Source, target)
	}

	path := []string{target}
	for cur := target; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok {
			return nil, errors.Wrapf(ErrNoPath, "%s → %s", r.Source, target)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Farthest returns the k reached vertices with the greatest distance,
// sorted by distance descending and ID ascending. The source counts as a
// candidate at distance 0. k larger than the number of reached vertices
// returns them all; a non-positive k returns nothing.
func (r *Result) Farthest(k int) []Reach {
	out := make([]Reach, 0, len(r.Dist))
	for id, d := range r.Dist {
		if math.IsInf(d, 1) {
			continue
		}
		out = append(out, Reach{ID: id, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance > out[j].Distance
		}

		return out[i].ID < out[j].ID
	})
	if k < 0 {
		k = 0
	}
	if k < len(out) {
		out = out[:k]
	}

	return out
}

// KFarthest runs ShortestPaths from source and returns its k farthest
// reached vertices.
func KFarthest(g *core.Graph, source string, k int, opts ...Option) ([]Reach, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrBadK, "k=%d", k)
	}
	res, err := ShortestPaths(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Farthest(k), nil
}

// ShortestPath returns one minimum-distance route between source and target.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Path, error) {
	res, err := ShortestPaths(g, source, opts...)
	if err != nil {
		return Path{}, err
	}
	vertices, err := res.PathTo(target)
	if err != nil {
		return Path{}, err
	}

	return Path{Vertices: vertices, Distance: res.Dist[target]}, nil
}
