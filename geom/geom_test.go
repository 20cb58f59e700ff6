package geom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/geom"
)

const eps = 1e-9

// randomPoints returns n deterministic points in [-3,3]².
func randomPoints(r *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(r.Float64()*6-3, r.Float64()*6-3)
	}

	return pts
}

// TestRotate_PreservesDistances checks rigid-motion invariance of all pairwise distances.
func TestRotate_PreservesDistances(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		pts := randomPoints(r, 12)
		theta := r.Float64() * 2 * math.Pi
		rot := geom.Rotate(pts, theta)
		require.Len(t, rot, len(pts))
		for i := range pts {
			for j := range pts {
				assert.InDelta(t, geom.Distance(pts[i], pts[j]), geom.Distance(rot[i], rot[j]), eps)
			}
		}
	}
}

func TestTranslate_PreservesDistancesAndInput(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, math.Sqrt(3)/2)}
	orig := append([]geom.Point(nil), pts...)
	moved := geom.Translate(pts, geom.Vector{X: 2.5, Y: -1})

	require.Equal(t, orig, pts, "input must not be mutated")
	assert.InDelta(t, 2.5, moved[0].X, eps)
	assert.InDelta(t, -1.0, moved[0].Y, eps)
	assert.InDelta(t, 1.0, geom.Distance(moved[1], moved[2]), eps)
}

func TestTransform_ApplyMatchesComposition(t *testing.T) {
	pts := randomPoints(rand.New(rand.NewSource(3)), 8)
	tr := geom.Transform{Angle: 0.7, Offset: geom.Vector{X: 1, Y: 2}}
	want := geom.Translate(geom.Rotate(pts, 0.7), geom.Vector{X: 1, Y: 2})
	got := tr.Apply(pts)
	for i := range pts {
		assert.InDelta(t, want[i].X, got[i].X, eps)
		assert.InDelta(t, want[i].Y, got[i].Y, eps)
		single := tr.ApplyPoint(pts[i])
		assert.InDelta(t, got[i].X, single.X, eps)
	}
	assert.True(t, geom.Identity().IsIdentity())
	assert.False(t, tr.IsIdentity())
}

func TestRotateAbout_FixesPivot(t *testing.T) {
	pivot := geom.Pt(1, 1)
	out := geom.RotateAbout([]geom.Point{pivot, geom.Pt(2, 1)}, pivot, math.Pi/2)
	assert.InDelta(t, 1.0, out[0].X, eps)
	assert.InDelta(t, 1.0, out[0].Y, eps)
	assert.InDelta(t, 1.0, out[1].X, eps)
	assert.InDelta(t, 2.0, out[1].Y, eps)
}

func TestUnitCircleIntersections(t *testing.T) {
	cases := []struct {
		name string
		p, q geom.Point
		want int
	}{
		{"Unit", geom.Pt(0, 0), geom.Pt(1, 0), 2},
		{"Tangent", geom.Pt(0, 0), geom.Pt(2, 0), 1},
		{"TooFar", geom.Pt(0, 0), geom.Pt(2.5, 0), 0},
		{"Same", geom.Pt(1, 1), geom.Pt(1, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.UnitCircleIntersections(tc.p, tc.q, eps)
			require.Len(t, got, tc.want)
			for _, c := range got {
				assert.True(t, geom.IsUnitDistance(c, tc.p, 1e-7))
				assert.True(t, geom.IsUnitDistance(c, tc.q, 1e-7))
			}
		})
	}
}

func TestCheckDistinct(t *testing.T) {
	require.NoError(t, geom.CheckDistinct([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)}, eps))

	err := geom.CheckDistinct([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1e-12)}, eps)
	require.ErrorIs(t, err, geom.ErrGeometryDegenerate)

	err = geom.CheckDistinct([]geom.Point{geom.Pt(math.NaN(), 0)}, eps)
	require.ErrorIs(t, err, geom.ErrNonFinite)

	assert.Equal(t, [][2]int{{0, 2}}, geom.Coincident([]geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 0)}, eps))
}
