package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/layout"
)

// Building detail proportions, relative to the body.
const (
	gableRadius   = 0.7 // cone radius per unit of width
	gableSegments = 4
	flatRoofInset = 0.9

	doorWidth  = 0.2 // of body width
	doorHeight = 0.4
	doorDepth  = 0.05
	doorOffset = 0.03 // in front of the facade

	signWidth  = 0.6 // of body width
	signHeight = 0.12
	signDepth  = 0.2
	signLevel  = 0.45 // of body height
	signOffset = 0.05

	windowSize   = 0.12 // of body width and height
	windowOffset = 0.01
)

// Street furniture proportions.
const (
	roadThickness     = 0.02
	sidewalkElevation = 0.005
	sidewalkThickness = 0.03
	parkElevation     = -0.01
	parkThickness     = 0.08

	trunkDiameter = 0.12
	canopyLift    = 0.35 // canopy center above the trunk top, per unit of canopy radius
	poleDiameter  = 0.08
	bulbRadius    = 0.12
	bulbLift      = 0.08
)

// Assemble converts a layout into a scene graph.
func Assemble(n *layout.Neighborhood) *Graph {
	g := NewGraph()

	assembleStreets(n, g)
	assembleParks(n.Parks, g)
	assembleBuildings(n.Buildings, g)
	assembleTrees(n.Trees, g)
	assembleLamps(n.Lamps, g)

	g.Metadata = Metadata{
		Config:      n.Config,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Span:        n.Span,
		Bounds:      computeBounds(g.Entities),
	}

	return g
}

func assembleStreets(n *layout.Neighborhood, g *Graph) {
	for _, r := range n.Roads {
		addEntity(g, Entity{
			ID:         r.ID,
			Type:       EntityRoad,
			Geometry:   GeometryBox,
			Position:   Vec3{X: r.X, Z: r.Z},
			Dimensions: Vec3{X: r.Width, Y: roadThickness, Z: r.Depth},
			Rotation:   identityQuat(),
			Material:   MaterialRoad,
			Batch:      BatchRoads,
			Metadata:   map[string]any{"axis": string(r.Axis), "line": r.Line},
		})
	}
	for _, s := range n.Sidewalks {
		addEntity(g, Entity{
			ID:         s.ID,
			Type:       EntitySidewalk,
			Geometry:   GeometryBox,
			Position:   Vec3{X: s.X, Y: sidewalkElevation, Z: s.Z},
			Dimensions: Vec3{X: s.Width, Y: sidewalkThickness, Z: s.Depth},
			Rotation:   identityQuat(),
			Material:   MaterialSidewalk,
			Batch:      BatchSidewalks,
			Metadata:   map[string]any{"axis": string(s.Axis), "line": s.Line},
		})
	}
}

func assembleParks(parks []layout.ParkPatch, g *Graph) {
	for _, p := range parks {
		addEntity(g, Entity{
			ID:         p.ID,
			Type:       EntityPark,
			Geometry:   GeometryBox,
			Position:   Vec3{X: p.X, Y: parkElevation, Z: p.Z},
			Dimensions: Vec3{X: p.Width, Y: parkThickness, Z: p.Depth},
			Rotation:   identityQuat(),
			Material:   MaterialPark,
			Block:      p.Block,
			Metadata:   map[string]any{"area": p.Area()},
		})
	}
}

func assembleBuildings(buildings []layout.Building, g *Graph) {
	for _, b := range buildings {
		rot := yawQuat(b.RotationY)
		// at places a point given in the building's frame, with +Z toward
		// the street.
		at := func(x, y, z float64) Vec3 {
			p := b.Position.Add(geo.Pt(x, z).RotateY(b.RotationY))
			return Vec3{X: p.X, Y: y, Z: p.Z}
		}
		part := func(suffix string) string { return b.ID + "_" + suffix }

		var children []string

		roof := Entity{
			ID:       part("roof"),
			Type:     EntityRoof,
			Position: at(0, b.Height, 0),
			Rotation: rot,
			Material: MaterialRoof,
			Color:    b.RoofColor,
			Block:    b.Block,
		}
		if b.RoofType() == layout.RoofGable {
			// A four-sided cone turned a quarter segment so its base
			// square lines up with the walls.
			side := 2 * gableRadius * b.Width / math.Sqrt2
			roof.Geometry = GeometryCone
			roof.Dimensions = Vec3{X: side, Y: b.RoofHeight, Z: side}
			roof.Metadata = map[string]any{
				"radius":          gableRadius * b.Width,
				"radial_segments": gableSegments,
				"twist":           math.Pi / gableSegments,
			}
		} else {
			roof.Geometry = GeometryBox
			roof.Dimensions = Vec3{X: b.Width * flatRoofInset, Y: b.RoofHeight, Z: b.Depth * flatRoofInset}
		}
		children = append(children, roof.ID)

		door := Entity{
			ID:         part("door"),
			Type:       EntityDoor,
			Geometry:   GeometryBox,
			Position:   at(0, 0, b.Depth/2+doorOffset),
			Dimensions: Vec3{X: b.Width * doorWidth, Y: doorHeight, Z: doorDepth},
			Rotation:   rot,
			Material:   MaterialDoor,
			Block:      b.Block,
		}
		children = append(children, door.ID)

		var sign *Entity
		if b.IsCommercial() {
			sign = &Entity{
				ID:         part("sign"),
				Type:       EntitySign,
				Geometry:   GeometryBox,
				Position:   at(0, b.Height*signLevel-signHeight/2, b.Depth/2+signOffset),
				Dimensions: Vec3{X: b.Width * signWidth, Y: signHeight, Z: signDepth},
				Rotation:   rot,
				Material:   MaterialSign,
				Block:      b.Block,
			}
			children = append(children, sign.ID)
		}

		// Windows are spread evenly over the street facade, top row first.
		windows := make([]Entity, 0, b.WindowRows*b.WindowCols)
		gapX := b.Width / float64(b.WindowCols+1)
		gapY := b.Height / float64(b.WindowRows+1)
		ww, wh := b.Width*windowSize, b.Height*windowSize
		for row := 0; row < b.WindowRows; row++ {
			for col := 0; col < b.WindowCols; col++ {
				w := Entity{
					ID:         part(fmt.Sprintf("window_%d_%d", row, col)),
					Type:       EntityWindow,
					Geometry:   GeometryPlane,
					Position:   at(-b.Width/2+gapX*float64(col+1), b.Height-gapY*float64(row+1)-wh/2, b.Depth/2+windowOffset),
					Dimensions: Vec3{X: ww, Y: wh},
					Rotation:   rot,
					Material:   MaterialWindow,
					Color:      b.WindowColor,
					Emissive:   b.WindowColor,
					Block:      b.Block,
				}
				windows = append(windows, w)
				children = append(children, w.ID)
			}
		}

		addEntity(g, Entity{
			ID:         b.ID,
			Type:       EntityBuilding,
			Geometry:   GeometryBox,
			Position:   at(0, 0, 0),
			Dimensions: Vec3{X: b.Width, Y: b.Height, Z: b.Depth},
			Rotation:   rot,
			Material:   MaterialBody,
			Color:      b.BodyColor,
			Block:      b.Block,
			Metadata: map[string]any{
				"kind":          b.Kind.String(),
				"roof_type":     string(b.RoofType()),
				"is_commercial": b.IsCommercial(),
				"side":          string(b.Side),
				"lot":           b.Lot,
			},
			Children: children,
		})
		addEntity(g, roof)
		addEntity(g, door)
		if sign != nil {
			addEntity(g, *sign)
		}
		for _, w := range windows {
			addEntity(g, w)
		}
	}
}

func assembleTrees(trees []layout.Tree, g *Graph) {
	for _, t := range trees {
		addEntity(g, Entity{
			ID:         t.ID + "_trunk",
			Type:       EntityTrunk,
			Geometry:   GeometryCylinder,
			Position:   Vec3{X: t.X, Z: t.Z},
			Dimensions: Vec3{X: trunkDiameter, Y: t.Height, Z: trunkDiameter},
			Rotation:   identityQuat(),
			Material:   MaterialTrunk,
			Batch:      BatchTrunks,
			Block:      t.Block,
		})
		addEntity(g, Entity{
			ID:         t.ID + "_canopy",
			Type:       EntityCanopy,
			Geometry:   GeometryIcosahedron,
			Position:   Vec3{X: t.X, Y: t.Height + canopyLift*t.Canopy - t.Canopy, Z: t.Z},
			Dimensions: Vec3{X: 2 * t.Canopy, Y: 2 * t.Canopy, Z: 2 * t.Canopy},
			Rotation:   identityQuat(),
			Material:   MaterialCanopy,
			Batch:      BatchCanopies,
			Block:      t.Block,
		})
	}
}

func assembleLamps(lamps []layout.LightPole, g *Graph) {
	for _, l := range lamps {
		addEntity(g, Entity{
			ID:         l.ID + "_pole",
			Type:       EntityPole,
			Geometry:   GeometryCylinder,
			Position:   Vec3{X: l.X, Z: l.Z},
			Dimensions: Vec3{X: poleDiameter, Y: l.Height, Z: poleDiameter},
			Rotation:   identityQuat(),
			Material:   MaterialPole,
			Batch:      BatchPoles,
			Metadata:   map[string]any{"line": l.Line},
		})
		addEntity(g, Entity{
			ID:         l.ID + "_bulb",
			Type:       EntityBulb,
			Geometry:   GeometrySphere,
			Position:   Vec3{X: l.X, Y: l.Height + bulbLift - bulbRadius, Z: l.Z},
			Dimensions: Vec3{X: 2 * bulbRadius, Y: 2 * bulbRadius, Z: 2 * bulbRadius},
			Rotation:   identityQuat(),
			Material:   MaterialBulb,
			Batch:      BatchBulbs,
		})
	}
}

// addEntity appends an entity and updates all group indices.
func addEntity(g *Graph, e Entity) {
	g.Entities = append(g.Entities, e)
	id := e.ID

	if e.Block != "" {
		g.Groups.Blocks[e.Block] = append(g.Groups.Blocks[e.Block], id)
	}
	if e.Batch != "" {
		g.Groups.Batches[e.Batch] = append(g.Groups.Batches[e.Batch], id)
	}
	g.Groups.EntityTypes[e.Type] = append(g.Groups.EntityTypes[e.Type], id)
}

// Footprint returns the ground rectangle covered by e after its yaw.
func (e Entity) Footprint() geo.Rect {
	r := geo.Rect{X: e.Position.X, Z: e.Position.Z, Width: e.Dimensions.X, Depth: e.Dimensions.Z}
	return r.Rotated(quatYaw(e.Rotation))
}

// computeBounds calculates the AABB of all entities, taking each entity's
// yaw into account.
func computeBounds(entities []Entity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}
	minV := Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	maxV := Vec3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}

	for _, e := range entities {
		fp := e.Footprint()
		lo, hi := fp.Min(), fp.Max()

		minV.X = math.Min(minV.X, lo.X)
		maxV.X = math.Max(maxV.X, hi.X)
		minV.Y = math.Min(minV.Y, e.Position.Y)
		maxV.Y = math.Max(maxV.Y, e.Position.Y+e.Dimensions.Y)
		minV.Z = math.Min(minV.Z, lo.Z)
		maxV.Z = math.Max(maxV.Z, hi.Z)
	}
	return BoundingBox{Min: minV, Max: maxV}
}

func identityQuat() [4]float64 {
	return [4]float64{0, 0, 0, 1}
}

func yawQuat(angle float64) [4]float64 {
	half := angle / 2
	return [4]float64{0, math.Sin(half), 0, math.Cos(half)}
}

// quatYaw recovers the Y rotation of a yaw-only quaternion.
func quatYaw(q [4]float64) float64 {
	return 2 * math.Atan2(q[1], q[3])
}
