package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
)

// TestGadgets_Sizes locks vertex and edge counts of every seed gadget.
func TestGadgets_Sizes(t *testing.T) {
	lattice2, err := builder.Lattice(2)
	require.NoError(t, err)

	cases := []struct {
		name   string
		points []geom.Point
		v, e   int
	}{
		{"Triangle", builder.Triangle(), 3, 3},
		{"Hexagon", builder.Hexagon(), 7, 12},
		{"MoserSpindle", builder.MoserSpindle(), 7, 11},
		{"Golomb", builder.Golomb(), 10, 18},
		{"Lattice2", lattice2, 19, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.UnitDistance(tc.points)
			require.NoError(t, err)
			assert.Equal(t, tc.v, g.VertexCount())
			assert.Equal(t, tc.e, g.EdgeCount())
		})
	}
}

func TestUnitDistance_TriangleIsK3(t *testing.T) {
	g, err := builder.UnitDistance(builder.Triangle())
	require.NoError(t, err)
	if diff := cmp.Diff([]core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}}, g.Edges()); diff != "" {
		t.Fatalf("edges (-want +got):\n%s", diff)
	}
}

// TestUnitDistance_IndexMatchesPairwise checks both strategies agree edge for edge.
func TestUnitDistance_IndexMatchesPairwise(t *testing.T) {
	base, err := builder.Lattice(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(11))
	pts := append([]geom.Point(nil), base...)
	for i := 0; i < 3; i++ {
		tr := geom.Transform{Angle: r.Float64() * math.Pi, Offset: geom.Vector{X: r.Float64(), Y: r.Float64()}}
		pts = append(pts, tr.Apply(base)...)
	}
	// points straddling cell boundaries and negative coordinates
	pts = append(pts, geom.Pt(-0.5, 0), geom.Pt(0.5, 0), geom.Pt(-1e-12, 1), geom.Pt(-1e-12, 2))

	plain, err := builder.UnitDistance(pts, builder.WithSpatialIndex(false))
	require.NoError(t, err)
	indexed, err := builder.UnitDistance(pts, builder.WithSpatialIndex(true))
	require.NoError(t, err)

	require.Greater(t, plain.EdgeCount(), 0)
	if diff := cmp.Diff(plain.Edges(), indexed.Edges()); diff != "" {
		t.Fatalf("indexed edges differ (-pairwise +indexed):\n%s", diff)
	}
}

// TestUnitDistance_Symmetry: {P,Q} reported iff {Q,P} reported, under both strategies.
func TestUnitDistance_Symmetry(t *testing.T) {
	pts := builder.Golomb()
	rev := make([]geom.Point, len(pts))
	for i := range pts {
		rev[len(pts)-1-i] = pts[i]
	}
	for _, idx := range []bool{false, true} {
		g, err := builder.UnitDistance(pts, builder.WithSpatialIndex(idx))
		require.NoError(t, err)
		gr, err := builder.UnitDistance(rev, builder.WithSpatialIndex(idx))
		require.NoError(t, err)
		n := len(pts)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, g.HasEdge(i, j), g.HasEdge(j, i))
				assert.Equal(t, g.HasEdge(i, j), gr.HasEdge(n-1-i, n-1-j))
			}
		}
	}
}

// TestUnitDistance_RotationIsomorphic: vertex-for-vertex identical graphs after a rigid motion.
func TestUnitDistance_RotationIsomorphic(t *testing.T) {
	pts := builder.MoserSpindle()
	g, err := builder.UnitDistance(pts)
	require.NoError(t, err)
	moved := geom.Transform{Angle: 1.234, Offset: geom.Vector{X: 5, Y: -7}}.Apply(pts)
	g2, err := builder.UnitDistance(moved)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), g2.Edges())
}

func TestUnitDistance_Tolerance(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1+1e-7, 0)}
	g, err := builder.UnitDistance(pts)
	require.NoError(t, err)
	assert.Equal(t, 0, g.EdgeCount())

	g, err = builder.UnitDistance(pts, builder.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestUnitDistance_NonFinite(t *testing.T) {
	_, err := builder.UnitDistance([]geom.Point{geom.Pt(0, 0), geom.Pt(math.Inf(1), 0)})
	require.ErrorIs(t, err, builder.ErrNonFinitePoint)
}

func TestUnitDistance_DuplicatePointsNotAdjacent(t *testing.T) {
	g, err := builder.UnitDistance([]geom.Point{geom.Pt(0, 0), geom.Pt(0, 0), geom.Pt(1, 0)})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 1, V: 2}}, g.Edges())
}

func TestUnitPairs(t *testing.T) {
	a := []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}
	b := []geom.Point{geom.Pt(1, 0), geom.Pt(0, -1), geom.Pt(0.5, 0)}
	for _, idx := range []bool{false, true} {
		pairs, err := builder.UnitPairs(a, b, builder.WithSpatialIndex(idx))
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{0, 0}, {0, 1}}, pairs)
	}
}

func TestGadgetByName(t *testing.T) {
	pts, err := builder.GadgetByName("Moser")
	require.NoError(t, err)
	assert.Len(t, pts, 7)
	pts, err = builder.GadgetByName("lattice-1")
	require.NoError(t, err)
	assert.Len(t, pts, 7)
	_, err = builder.GadgetByName("petersen")
	require.ErrorIs(t, err, builder.ErrUnknownGadget)
	_, err = builder.Lattice(0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestBuild_ConstructorsAndDedupe(t *testing.T) {
	// the identity copy duplicates every point; dedupe collapses it back
	pts, g, err := builder.Build(
		[]builder.Option{builder.WithDedupe()},
		builder.Gadget(builder.GadgetTriangle),
		builder.TransformedCopy(geom.Identity()),
		builder.Points(geom.Pt(0.5, -math.Sqrt(3)/2)),
	)
	require.NoError(t, err)
	assert.Len(t, pts, 4)
	assert.Equal(t, 5, g.EdgeCount())

	_, err = builder.BuildPoints(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.BuildPoints(nil, builder.Gadget("nope"))
	require.ErrorIs(t, err, builder.ErrUnknownGadget)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithTolerance(0) })
	assert.Panics(t, func() { builder.WithTolerance(-1) })
	assert.Panics(t, func() { builder.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}
