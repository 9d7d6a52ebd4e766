package layout

import (
	"encoding/json"
	"fmt"

	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

// Neighborhood is a generated layout. It is built once per Config and
// never modified afterwards; callers replace it wholesale to regenerate.
type Neighborhood struct {
	Config    spec.Config     `json:"config"`
	Span      float64         `json:"span"`
	Blocks    []Block         `json:"blocks"`
	Buildings []Building      `json:"buildings"`
	Roads     []RoadStrip     `json:"roads"`
	Sidewalks []SidewalkStrip `json:"sidewalks"`
	Trees     []Tree          `json:"trees"`
	Lamps     []LightPole     `json:"lamps"`
	Parks     []ParkPatch     `json:"parks"`
}

// Bounds returns the square every generated coordinate lies in.
func (n *Neighborhood) Bounds() geo.Rect {
	return geo.Square(n.Span)
}

// Block is one cell of the 3x3 grid of developable land.
type Block struct {
	ID         string   `json:"id"`
	Col        int      `json:"col"`
	Row        int      `json:"row"`
	Bounds     geo.Rect `json:"bounds"`
	Core       bool     `json:"core"`
	MainStreet bool     `json:"main_street"`
}

// BuildingKind is the shape variant of a building. Commercial buildings
// only come with flat roofs.
type BuildingKind int

const (
	GableResidential BuildingKind = iota
	FlatResidential
	FlatCommercial
)

var kindNames = [...]string{
	GableResidential: "gable_residential",
	FlatResidential:  "flat_residential",
	FlatCommercial:   "flat_commercial",
}

func (k BuildingKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("BuildingKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k BuildingKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown building kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *BuildingKind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = BuildingKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown building kind %q", b)
}

// RoofType is the roof shape drawn on top of a building body.
type RoofType string

const (
	RoofGable RoofType = "gable"
	RoofFlat  RoofType = "flat"
)

// Roof returns the roof shape of the variant.
func (k BuildingKind) Roof() RoofType {
	if k == GableResidential {
		return RoofGable
	}
	return RoofFlat
}

// IsCommercial reports whether the variant is commercial. Commercial
// buildings are taller and carry a signage strip.
func (k BuildingKind) IsCommercial() bool {
	return k == FlatCommercial
}

// Side is the block edge a building sits on; the building faces the
// street beyond that edge.
type Side string

const (
	North Side = "north"
	South Side = "south"
	East  Side = "east"
	West  Side = "west"
)

// Building is a placed building.
type Building struct {
	ID          string       `json:"id"`
	Block       string       `json:"block"`
	Lot         int          `json:"lot"`
	Side        Side         `json:"side"`
	Position    geo.Point2D  `json:"position"`
	Width       float64      `json:"width"`
	Depth       float64      `json:"depth"`
	Height      float64      `json:"height"`
	RoofHeight  float64      `json:"roof_height"`
	Kind        BuildingKind `json:"kind"`
	BodyColor   string       `json:"body_color"`
	RoofColor   string       `json:"roof_color"`
	WindowColor string       `json:"window_color"`
	WindowRows  int          `json:"window_rows"`
	WindowCols  int          `json:"window_cols"`
	RotationY   float64      `json:"rotation_y"`
}

// RoofType returns the building's roof shape.
func (b Building) RoofType() RoofType { return b.Kind.Roof() }

// IsCommercial reports whether the building is commercial.
func (b Building) IsCommercial() bool { return b.Kind.IsCommercial() }

// Footprint returns the ground rectangle covered by the building body.
func (b Building) Footprint() geo.Rect {
	return geo.Rect{X: b.Position.X, Z: b.Position.Z, Width: b.Width, Depth: b.Depth}.Rotated(b.RotationY)
}

// Front returns the unit vector the building's entrance faces.
func (b Building) Front() geo.Point2D {
	return geo.Pt(0, 1).RotateY(b.RotationY)
}

// MarshalJSON adds the derived roof type and commercial flag so renderers
// need not know the variant names.
func (b Building) MarshalJSON() ([]byte, error) {
	type building Building
	return json.Marshal(struct {
		building
		RoofType     RoofType `json:"roof_type"`
		IsCommercial bool     `json:"is_commercial"`
	}{building(b), b.RoofType(), b.IsCommercial()})
}

// Axis names the direction a strip runs along.
type Axis string

const (
	AxisX Axis = "x"
	AxisZ Axis = "z"
)

// RoadStrip is one street, spanning the full layout.
type RoadStrip struct {
	ID   string `json:"id"`
	Axis Axis   `json:"axis"`
	Line int    `json:"line"`
	geo.Rect
}

// SidewalkStrip flanks a road on one side.
type SidewalkStrip struct {
	ID   string `json:"id"`
	Axis Axis   `json:"axis"`
	Line int    `json:"line"`
	geo.Rect
}

// ParkPatch is a green square centered in a block.
type ParkPatch struct {
	ID    string `json:"id"`
	Block string `json:"block"`
	geo.Rect
}

// Tree is a street tree near a block corner.
type Tree struct {
	ID     string  `json:"id"`
	Block  string  `json:"block"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Height float64 `json:"height"`
	Canopy float64 `json:"canopy"`
}

// Position returns the tree's ground position.
func (t Tree) Position() geo.Point2D { return geo.Pt(t.X, t.Z) }

// LightPole is a street lamp at the end of a grid line.
type LightPole struct {
	ID     string  `json:"id"`
	Line   int     `json:"line"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Height float64 `json:"height"`
}

// Position returns the lamp's ground position.
func (l LightPole) Position() geo.Point2D { return geo.Pt(l.X, l.Z) }
