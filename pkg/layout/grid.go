package layout

import (
	"fmt"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/rng"
)

const (
	lampInset        = 0.6 // fraction of street width between lamp and span edge
	lampHeightBase   = 1.1
	lampHeightJitter = 0.6

	parkChance     = 0.4 // a park is placed when the draw exceeds this
	parkFraction   = 0.28
	parkJitter     = 0.18
	mainStreetLine = 1
)

// layoutStreets emits the roads, sidewalks and lamps of every grid line.
// It draws one lamp height per even line.
func layoutStreets(p *analytics.ResolvedParameters, r *rng.Rand) ([]RoadStrip, []SidewalkStrip, []LightPole) {
	lines := analytics.BlockCount + 1
	roads := make([]RoadStrip, 0, 2*lines)
	sidewalks := make([]SidewalkStrip, 0, 4*lines)
	lamps := make([]LightPole, 0, 4*(lines+1)/2)

	span := p.TotalSpan
	street := analytics.StreetWidth
	walk := analytics.SidewalkWidth

	for i := 0; i < lines; i++ {
		pos := p.GridLine(i)

		roads = append(roads,
			RoadStrip{ID: fmt.Sprintf("road_x_%d", i), Axis: AxisX, Line: i, Rect: geo.Rect{X: 0, Z: pos, Width: span, Depth: street}},
			RoadStrip{ID: fmt.Sprintf("road_z_%d", i), Axis: AxisZ, Line: i, Rect: geo.Rect{X: pos, Z: 0, Width: street, Depth: span}},
		)

		lo := pos - street/2 - walk/2
		hi := pos + street/2 + walk/2
		sidewalks = append(sidewalks,
			SidewalkStrip{ID: fmt.Sprintf("sidewalk_x_%d_0", i), Axis: AxisX, Line: i, Rect: geo.Rect{X: 0, Z: lo, Width: span, Depth: walk}},
			SidewalkStrip{ID: fmt.Sprintf("sidewalk_x_%d_1", i), Axis: AxisX, Line: i, Rect: geo.Rect{X: 0, Z: hi, Width: span, Depth: walk}},
			SidewalkStrip{ID: fmt.Sprintf("sidewalk_z_%d_0", i), Axis: AxisZ, Line: i, Rect: geo.Rect{X: lo, Z: 0, Width: walk, Depth: span}},
			SidewalkStrip{ID: fmt.Sprintf("sidewalk_z_%d_1", i), Axis: AxisZ, Line: i, Rect: geo.Rect{X: hi, Z: 0, Width: walk, Depth: span}},
		)

		if i%2 == 0 {
			h := r.Range(lampHeightBase, lampHeightJitter)
			near := -span/2 + street*lampInset
			far := span/2 - street*lampInset
			for _, at := range [4]geo.Point2D{{X: pos, Z: near}, {X: pos, Z: far}, {X: near, Z: pos}, {X: far, Z: pos}} {
				lamps = append(lamps, LightPole{
					ID:     fmt.Sprintf("lamp_%02d", len(lamps)),
					Line:   i,
					X:      at.X,
					Z:      at.Z,
					Height: h,
				})
			}
		}
	}

	return roads, sidewalks, lamps
}

// newBlock returns the block at grid cell (bx, bz).
func newBlock(p *analytics.ResolvedParameters, bx, bz int) Block {
	return Block{
		ID:         fmt.Sprintf("block_%d_%d", bx, bz),
		Col:        bx,
		Row:        bz,
		Bounds:     geo.Rect{X: p.BlockCenter(bx), Z: p.BlockCenter(bz), Width: p.BlockSize, Depth: p.BlockSize},
		Core:       bx == mainStreetLine && bz == mainStreetLine,
		MainStreet: bx == mainStreetLine || bz == mainStreetLine,
	}
}

// placePark draws whether b gets a park and, if so, its size.
func placePark(p *analytics.ResolvedParameters, r *rng.Rand, b Block) (ParkPatch, bool) {
	if !r.Chance(parkChance) {
		return ParkPatch{}, false
	}
	size := p.BlockSize * r.Range(parkFraction, parkJitter)
	return ParkPatch{
		ID:    fmt.Sprintf("park_%d_%d", b.Col, b.Row),
		Block: b.ID,
		Rect:  geo.Rect{X: b.Bounds.X, Z: b.Bounds.Z, Width: size, Depth: size},
	}, true
}
