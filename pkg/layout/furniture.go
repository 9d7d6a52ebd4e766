package layout

import (
	"fmt"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/rng"
)

const (
	treeChance       = 0.5
	treeInset        = 0.8 // fraction of sidewalk width
	treeJitter       = 0.4
	treeHeightBase   = 0.6
	treeHeightJitter = 0.7
	canopyBase       = 0.5
	canopyJitter     = 0.6
)

// scatterTrees tries one tree per corner of b. Corners go min-x/min-z,
// max-x/min-z, min-x/max-z, max-x/max-z; each draws its chance, then x and
// z jitter, height and canopy when placed.
func scatterTrees(r *rng.Rand, b Block, next int) []Tree {
	lo, hi := b.Bounds.Min(), b.Bounds.Max()
	inset := analytics.SidewalkWidth * treeInset

	var trees []Tree
	for corner := 0; corner < 4; corner++ {
		if !r.Chance(treeChance) {
			continue
		}
		cx := hi.X - inset
		if corner%2 == 0 {
			cx = lo.X + inset
		}
		cz := hi.Z - inset
		if corner < 2 {
			cz = lo.Z + inset
		}

		x := cx + (r.Float64()-0.5)*treeJitter
		z := cz + (r.Float64()-0.5)*treeJitter
		trees = append(trees, Tree{
			ID:     fmt.Sprintf("tree_%03d", next+len(trees)),
			Block:  b.ID,
			X:      x,
			Z:      z,
			Height: r.Range(treeHeightBase, treeHeightJitter),
			Canopy: r.Range(canopyBase, canopyJitter),
		})
	}
	return trees
}
