package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

// Golden layouts pin the order in which the random stream is consumed.
// Any change to draw order shows up here first.

func kindCounts(n *Neighborhood) map[BuildingKind]int {
	counts := map[BuildingKind]int{}
	for _, b := range n.Buildings {
		counts[b.Kind]++
	}
	return counts
}

func TestGoldenCounts(t *testing.T) {
	tests := []struct {
		c                  spec.Config
		buildings, trees   int
		parks              int
		gable, flat, shops int
	}{
		{spec.Config{Count: 64, Spread: 18, MaxHeight: 8, Seed: 1}, 64, 18, 6, 33, 11, 20},
		{spec.Config{Count: 16, Spread: 10, MaxHeight: 4, Seed: 7}, 16, 20, 6, 7, 1, 8},
		{spec.Config{Count: 144, Spread: 30, MaxHeight: 14, Seed: 42}, 72, 16, 6, 39, 9, 24},
		{spec.Config{Count: 0, Spread: 18, MaxHeight: 8, Seed: -5}, 12, 19, 8, 5, 3, 4},
	}
	for _, tt := range tests {
		n := mustGenerate(t, tt.c)
		assert.Len(t, n.Buildings, tt.buildings, "%+v", tt.c)
		assert.Len(t, n.Trees, tt.trees, "%+v", tt.c)
		assert.Len(t, n.Parks, tt.parks, "%+v", tt.c)
		assert.Len(t, n.Roads, 8)
		assert.Len(t, n.Sidewalks, 16)

		kinds := kindCounts(n)
		assert.Equal(t, tt.gable, kinds[GableResidential], "%+v", tt.c)
		assert.Equal(t, tt.flat, kinds[FlatResidential], "%+v", tt.c)
		assert.Equal(t, tt.shops, kinds[FlatCommercial], "%+v", tt.c)
	}
}

func TestGoldenDefaultLayout(t *testing.T) {
	n := mustGenerate(t, spec.Config{Count: 64, Spread: 18, MaxHeight: 8, Seed: 1})

	lamp := n.Lamps[0]
	assert.Equal(t, "lamp_00", lamp.ID)
	assert.InDelta(t, -6.9, lamp.X, eps)
	assert.InDelta(t, -7.56, lamp.Z, eps)
	assert.InDelta(t, 1.1016414327081294, lamp.Height, eps)
	for _, l := range n.Lamps[:4] {
		assert.Equal(t, lamp.Height, l.Height, "lamps on one line share a height")
	}

	b := n.Buildings[0]
	assert.Equal(t, "bld_000", b.ID)
	assert.Equal(t, "block_0_0", b.Block)
	assert.Equal(t, North, b.Side)
	assert.InDelta(t, -5.15, b.Position.X, eps)
	assert.InDelta(t, -4.4677564473077656, b.Position.Z, eps)
	assert.InDelta(t, 1.2, b.Width, eps)
	assert.InDelta(t, 0.5668507928401231, b.Depth, eps)
	assert.InDelta(t, 5.243825370073319, b.Height, eps)
	assert.InDelta(t, 1.4682711036205294, b.RoofHeight, eps)
	assert.Equal(t, GableResidential, b.Kind)
	assert.Equal(t, 5, b.WindowRows)
	assert.Equal(t, 2, b.WindowCols)
	assert.Equal(t, 0.0, b.RotationY)
	assert.Equal(t, "#4c6d7c", b.BodyColor)
	assert.Equal(t, "#463a2e", b.RoofColor)
	assert.Equal(t, "#7dc1de", b.WindowColor)

	last := n.Buildings[len(n.Buildings)-1]
	assert.Equal(t, "bld_063", last.ID)
	assert.Equal(t, "block_2_1", last.Block)
	assert.Equal(t, West, last.Side)
	assert.Equal(t, FlatCommercial, last.Kind)
	assert.InDelta(t, 4.634750331416726, last.Position.X, eps)
	assert.InDelta(t, 0.55, last.Position.Z, eps)
	assert.InDelta(t, 6.693528281524777, last.Height, eps)
	assert.InDelta(t, -math.Pi/2, last.RotationY, eps)

	tree := n.Trees[0]
	assert.Equal(t, "tree_000", tree.ID)
	assert.InDelta(t, -4.846231254208832, tree.X, eps)
	assert.InDelta(t, -4.806464684959501, tree.Z, eps)
	assert.InDelta(t, 0.6803639613324776, tree.Height, eps)
	assert.InDelta(t, 0.5236688036471605, tree.Canopy, eps)

	park := n.Parks[0]
	assert.Equal(t, "park_0_0", park.ID)
	assert.InDelta(t, -4.6, park.X, eps)
	assert.InDelta(t, -4.6, park.Z, eps)
	assert.InDelta(t, 0.9994776476928964, park.Width, eps)
	assert.Equal(t, park.Width, park.Depth)
}

func TestGoldenSmallLayouts(t *testing.T) {
	seven := mustGenerate(t, spec.Config{Count: 16, Spread: 10, MaxHeight: 4, Seed: 7})
	require.NotEmpty(t, seven.Buildings)
	b := seven.Buildings[0]
	assert.Equal(t, GableResidential, b.Kind)
	assert.InDelta(t, 2.9279814494773744, b.Height, eps)
	assert.InDelta(t, 0.48222683272138234, b.Depth, eps)
	assert.InDelta(t, -4.462769922776148, b.Position.Z, eps)

	eight := mustGenerate(t, spec.Config{Count: 16, Spread: 10, MaxHeight: 4, Seed: 8})
	assert.Len(t, eight.Buildings, 16)
	assert.Len(t, eight.Trees, 18)
	assert.Equal(t, FlatResidential, eight.Buildings[0].Kind)
	assert.InDelta(t, 2.815882398374379, eight.Buildings[0].Height, eps)
}

func TestGoldenLargeLayout(t *testing.T) {
	n := mustGenerate(t, spec.Config{Count: 144, Spread: 30, MaxHeight: 14, Seed: 42})
	b := n.Buildings[0]
	assert.InDelta(t, -10.15, b.Position.X, eps)
	assert.InDelta(t, -7.032914436831141, b.Position.Z, eps)
	assert.InDelta(t, 2.0950862338766454, b.Width, eps)
	assert.InDelta(t, 1.549873348351568, b.Depth, eps)
	assert.InDelta(t, 12.869987045787276, b.Height, eps)
}
