package layout

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/rng"
)

const (
	commercialChance = 0.6 // main-street lots turn commercial above this draw
	gableChance      = 0.2 // residential roofs are gabled above this draw

	commercialHeightBase  = 0.7
	residentialHeightBase = 0.4
	heightJitter          = 0.6
	minHeight             = 1.6

	commercialRoofRatio  = 0.18
	residentialRoofRatio = 0.28
	minRoofHeight        = 0.35

	minWindows = 2
	maxWindows = 5
)

// placer places buildings on block lots and enforces the global cap.
// Placements past the cap are skipped without drawing from the stream.
type placer struct {
	p         *analytics.ResolvedParameters
	r         *rng.Rand
	buildings []Building
}

func newPlacer(p *analytics.ResolvedParameters, r *rng.Rand) *placer {
	return &placer{
		p:         p,
		r:         r,
		buildings: make([]Building, 0, p.ExpectedBuildings),
	}
}

func (pl *placer) full() bool {
	return len(pl.buildings) >= pl.p.MaxBuildings
}

// placeBlock fills the lots along the four edges of b. Each lot draws its
// setback, width, depth and (on main-street blocks outside the core) its
// commercial status, then places north, south, east and west buildings
// in that order.
func (pl *placer) placeBlock(b Block) {
	p, r := pl.p, pl.r
	lo, hi := b.Bounds.Min(), b.Bounds.Max()

	for i := 0; i < p.Lots; i++ {
		offset := (float64(i) + 0.5) * p.LotSpan
		setback := r.Range(analytics.SetbackBase, analytics.SetbackJitter)
		widthLimit := p.WidthLimit()
		depthLimit := p.DepthLimit(setback)
		width := math.Min(p.LotBase*r.Range(analytics.WidthFraction, analytics.WidthJitter), widthLimit)
		depth := math.Min(p.BlockSize*r.Range(analytics.DepthFraction, analytics.DepthJitter), depthLimit)
		commercial := b.Core || (b.MainStreet && r.Chance(commercialChance))

		lot := lotPlan{block: b, index: i, width: width, depth: depth, commercial: commercial}
		pl.add(lot, North, geo.Pt(lo.X+offset, hi.Z-depth/2-setback))
		pl.add(lot, South, geo.Pt(lo.X+offset, lo.Z+depth/2+setback))
		pl.add(lot, East, geo.Pt(hi.X-depth/2-setback, lo.Z+offset))
		pl.add(lot, West, geo.Pt(lo.X+depth/2+setback, lo.Z+offset))
	}
}

// lotPlan is what one lot decides for all four of its placements.
type lotPlan struct {
	block      Block
	index      int
	width      float64
	depth      float64
	commercial bool
}

// add shapes one building. Draw order: height, roof (residential only),
// body saturation, body lightness, roof lightness, window lightness.
func (pl *placer) add(lot lotPlan, side Side, at geo.Point2D) {
	if pl.full() {
		return
	}
	r := pl.r
	maxHeight := pl.p.Config.MaxHeight

	heightBase := maxHeight * residentialHeightBase
	if lot.commercial {
		heightBase = maxHeight * commercialHeightBase
	}
	height := math.Max(minHeight, r.Range(heightBase, maxHeight*heightJitter))

	kind := FlatCommercial
	roofRatio := commercialRoofRatio
	if !lot.commercial {
		kind = FlatResidential
		if r.Chance(gableChance) {
			kind = GableResidential
		}
		roofRatio = residentialRoofRatio
	}
	roofHeight := math.Max(minRoofHeight, height*roofRatio)

	bodyS := r.Range(0.15, 0.2)
	bodyL := r.Range(0.22, 0.35)
	roofL := r.Range(0.2, 0.2)
	windowL := r.Range(0.6, 0.2)

	pl.buildings = append(pl.buildings, Building{
		ID:          fmt.Sprintf("bld_%03d", len(pl.buildings)),
		Block:       lot.block.ID,
		Lot:         lot.index,
		Side:        side,
		Position:    at,
		Width:       lot.width,
		Depth:       lot.depth,
		Height:      height,
		RoofHeight:  roofHeight,
		Kind:        kind,
		BodyColor:   hslHex(bodyHue, bodyS, bodyL),
		RoofColor:   hslHex(roofHue, 0.2, roofL),
		WindowColor: hslHex(windowHue, 0.6, windowL),
		WindowRows:  windowCount(height),
		WindowCols:  windowCount(lot.width),
		RotationY:   side.RotationY(),
	})
}

// RotationY returns the Y rotation that turns a building's front (local
// +Z) toward the street beyond this side of its block.
func (s Side) RotationY() float64 {
	switch s {
	case South:
		return math.Pi
	case East:
		return math.Pi / 2
	case West:
		return -math.Pi / 2
	default:
		return 0
	}
}

// Outward returns the unit vector pointing from a block's center across
// this side.
func (s Side) Outward() geo.Point2D {
	switch s {
	case South:
		return geo.Pt(0, -1)
	case East:
		return geo.Pt(1, 0)
	case West:
		return geo.Pt(-1, 0)
	default:
		return geo.Pt(0, 1)
	}
}

// windowCount clamps before converting so huge extents cannot overflow
// the int.
func windowCount(extent float64) int {
	return int(math.Min(maxWindows, math.Max(minWindows, math.Floor(extent))))
}
