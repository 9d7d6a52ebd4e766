package analytics

// Street grid.
const (
	BlockCount    = 3
	StreetWidth   = 2.4
	SidewalkWidth = 0.9
	MinSpan       = 18.0
)

// Lots and building envelopes.
const (
	MinLotBase        = 2.4
	LotDivisor        = 4.2
	MinLots           = 2
	MinBuildingCap    = 12
	MinBuildingExtent = 1.2
	LotGap            = 0.6
	CenterGap         = 1.4
	SetbackBase       = 0.6
	SetbackJitter     = 0.3
	WidthFraction     = 0.75
	WidthJitter       = 0.45
	DepthFraction     = 0.2
	DepthJitter       = 0.08
)
