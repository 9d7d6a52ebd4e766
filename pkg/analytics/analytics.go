package analytics

import (
	"math"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

// ResolvedParameters holds the grid geometry derived from a Config. It is
// everything the layout solver needs besides the random stream.
type ResolvedParameters struct {
	Config spec.Config `json:"config"`

	TotalSpan  float64 `json:"total_span"`
	GridSpan   float64 `json:"grid_span"`
	BlockSize  float64 `json:"block_size"`
	Pitch      float64 `json:"pitch"`
	RoadStart  float64 `json:"road_start"`
	BlockStart float64 `json:"block_start"`

	LotBase float64 `json:"lot_base"`
	Lots    int     `json:"lots"`
	LotSpan float64 `json:"lot_span"`

	MaxBuildings      int `json:"max_buildings"`
	LotCapacity       int `json:"lot_capacity"`
	ExpectedBuildings int `json:"expected_buildings"`

	MaxBuildingDepth float64 `json:"max_building_depth"`
}

// Resolve derives the grid geometry for c and reports density findings.
// It assumes c already passed validation.ValidateConfig.
func Resolve(c spec.Config) (*ResolvedParameters, *validation.Report) {
	report := validation.NewReport()

	// 1. Span and block size: roads and blocks tile the span inside the
	//    outer sidewalks.
	totalSpan := math.Max(MinSpan, c.Spread)
	gridSpan := totalSpan - 2*SidewalkWidth
	blockSize := (gridSpan - (BlockCount+1)*StreetWidth) / BlockCount
	roadStart := -gridSpan/2 + StreetWidth/2
	blockStart := roadStart + StreetWidth/2 + blockSize/2

	// 2. Lots along each block edge.
	lotBase := math.Max(MinLotBase, blockSize/LotDivisor)
	lots := max(MinLots, int(math.Floor(blockSize/lotBase)))
	lotSpan := blockSize / float64(lots)

	// 3. Building cap.
	maxBuildings := max(MinBuildingCap, c.Count)
	capacity := BlockCount * BlockCount * lots * 4

	params := &ResolvedParameters{
		Config:            c,
		TotalSpan:         totalSpan,
		GridSpan:          gridSpan,
		BlockSize:         blockSize,
		Pitch:             blockSize + StreetWidth,
		RoadStart:         roadStart,
		BlockStart:        blockStart,
		LotBase:           lotBase,
		Lots:              lots,
		LotSpan:           lotSpan,
		MaxBuildings:      maxBuildings,
		LotCapacity:       capacity,
		ExpectedBuildings: min(maxBuildings, capacity),
		MaxBuildingDepth:  maxDepth(blockSize),
	}

	// 4. Analytical validation
	validateAnalytical(params, report)

	return params, report
}

// GridLine returns the center coordinate of the i-th road, counted from
// the negative edge.
func (p *ResolvedParameters) GridLine(i int) float64 {
	return p.RoadStart + float64(i)*(p.BlockSize+StreetWidth)
}

// BlockCenter returns the center coordinate of the b-th block along one
// axis.
func (p *ResolvedParameters) BlockCenter(b int) float64 {
	return p.BlockStart + float64(b)*(p.BlockSize+StreetWidth)
}

// HalfSpan returns half the total span, the bound for every coordinate.
func (p *ResolvedParameters) HalfSpan() float64 {
	return p.TotalSpan / 2
}

// DepthLimit returns the deepest a building may be for a given setback.
func (p *ResolvedParameters) DepthLimit(setback float64) float64 {
	return math.Max(MinBuildingExtent, p.BlockSize/2-setback-CenterGap/2)
}

// WidthLimit returns the widest a building may be along its lot.
func (p *ResolvedParameters) WidthLimit() float64 {
	return math.Max(MinBuildingExtent, p.LotSpan-LotGap)
}

func maxDepth(blockSize float64) float64 {
	limit := math.Max(MinBuildingExtent, blockSize/2-SetbackBase-CenterGap/2)
	return math.Min(blockSize*(DepthFraction+DepthJitter), limit)
}
