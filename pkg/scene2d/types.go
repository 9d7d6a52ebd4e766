package scene2d

import "github.com/ChicagoDave/neighborhood/pkg/spec"

// Scene2D is the complete top-down plan of a neighborhood for an SVG
// renderer. Coordinates are [x, z] pairs on the ground plane.
type Scene2D struct {
	Metadata  Metadata        `json:"metadata"`
	Blocks    []Block2D       `json:"blocks"`
	Streets   []Street2D      `json:"streets"`
	Sidewalks []Strip2D       `json:"sidewalks"`
	Parks     []Park2D        `json:"parks"`
	Buildings []Building2D    `json:"buildings"`
	Trees     []Marker2D      `json:"trees"`
	Lamps     []Marker2D      `json:"lamps"`
	Summary   BuildingSummary `json:"summary"`
}

// Metadata holds neighborhood-level summary data.
type Metadata struct {
	Config      spec.Config `json:"config"`
	Span        float64     `json:"span"`
	GeneratedAt string      `json:"generated_at"`
}

// Block2D is one block of the grid.
type Block2D struct {
	ID         string       `json:"id"`
	Center     [2]float64   `json:"center"`
	Polygon    [][2]float64 `json:"polygon"`
	Core       bool         `json:"core"`
	MainStreet bool         `json:"main_street"`
}

// Street2D is a road centerline.
type Street2D struct {
	ID    string     `json:"id"`
	Axis  string     `json:"axis"`
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
	Width float64    `json:"width"`
}

// Strip2D is a sidewalk rectangle.
type Strip2D struct {
	ID      string       `json:"id"`
	Polygon [][2]float64 `json:"polygon"`
}

// Park2D is a green patch inside a block.
type Park2D struct {
	ID      string       `json:"id"`
	Block   string       `json:"block"`
	Polygon [][2]float64 `json:"polygon"`
	Area    float64      `json:"area"`
}

// Building2D is a building footprint. The polygon follows the building's
// rotation; Front is the unit vector its entrance faces.
type Building2D struct {
	ID      string       `json:"id"`
	Block   string       `json:"block"`
	Kind    string       `json:"kind"`
	Polygon [][2]float64 `json:"polygon"`
	Front   [2]float64   `json:"front"`
	Height  float64      `json:"height"`
	Color   string       `json:"color"`
}

// Marker2D is a point feature drawn as a circle.
type Marker2D struct {
	ID       string     `json:"id"`
	Position [2]float64 `json:"position"`
	Radius   float64    `json:"radius"`
}

// BuildingSummary holds aggregate building data.
type BuildingSummary struct {
	TotalBuildings int                         `json:"total_buildings"`
	ByKind         map[string]int              `json:"by_kind"`
	ByBlock        map[string]BlockBuildingSum `json:"by_block"`
}

// BlockBuildingSum is the building aggregate for one block.
type BlockBuildingSum struct {
	Residential int     `json:"residential"`
	Commercial  int     `json:"commercial"`
	Footprint   float64 `json:"footprint"`
	MaxHeight   float64 `json:"max_height"`
}
