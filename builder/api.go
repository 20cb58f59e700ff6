// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// api.go — Constructor composition for point sets.
//
// Design contract:
//   - One orchestrator: BuildPoints(opts, cons...) runs constructors in order over
//     a shared point slice; Build additionally returns the unit-distance graph.
//   - Constructors only append (or replace with a transformed copy); they never
//     reorder existing points, so earlier vertex indices stay stable.

package builder

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
)

// Constructor transforms the working point set. It receives the current
// points and returns the new set; implementations must not mutate the input.
type Constructor func(points []geom.Point) ([]geom.Point, error)

// Points appends fixed points.
func Points(pts ...geom.Point) Constructor {
	return func(cur []geom.Point) ([]geom.Point, error) {
		return appendCopy(cur, pts), nil
	}
}

// Gadget appends the named gadget (see GadgetByName).
func Gadget(name string) Constructor {
	return func(cur []geom.Point) ([]geom.Point, error) {
		pts, err := GadgetByName(name)
		if err != nil {
			return nil, err
		}
		return appendCopy(cur, pts), nil
	}
}

// TransformedCopy appends t applied to the current points.
func TransformedCopy(t geom.Transform) Constructor {
	return func(cur []geom.Point) ([]geom.Point, error) {
		return appendCopy(cur, t.Apply(cur)), nil
	}
}

// BuildPoints runs constructors in order starting from an empty set.
// With WithDedupe, coincident points are collapsed after every constructor.
func BuildPoints(opts []Option, cons ...Constructor) ([]geom.Point, error) {
	cfg := newBuilderConfig(opts...)
	var pts []geom.Point
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildPoints: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		next, err := fn(pts)
		if err != nil {
			return nil, fmt.Errorf("BuildPoints: constructor %d: %w", i, err)
		}
		if cfg.dedupe {
			next = dedupe(next, cfg.tolerance)
		}
		pts = next
	}
	return pts, nil
}

// Build runs BuildPoints and then UnitDistance with the same options.
func Build(opts []Option, cons ...Constructor) ([]geom.Point, *core.Graph, error) {
	pts, err := BuildPoints(opts, cons...)
	if err != nil {
		return nil, nil, err
	}
	g, err := unitDistance(pts, newBuilderConfig(opts...))
	if err != nil {
		return nil, nil, err
	}
	return pts, g, nil
}

func appendCopy(cur, more []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(cur)+len(more))
	out = append(out, cur...)
	return append(out, more...)
}
