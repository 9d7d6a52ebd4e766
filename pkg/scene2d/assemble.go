package scene2d

import (
	"time"

	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/layout"
)

// Plan markers are drawn at a fixed size regardless of their 3D extent.
const (
	lampRadius = 0.15
)

// Assemble2D converts a layout into a top-down plan suitable for SVG
// rendering. Building footprints keep their rotation; trees are drawn at
// their canopy radius.
func Assemble2D(n *layout.Neighborhood) *Scene2D {
	return &Scene2D{
		Metadata: Metadata{
			Config:      n.Config,
			Span:        n.Span,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Blocks:    assembleBlocks(n.Blocks),
		Streets:   assembleStreets(n.Roads),
		Sidewalks: assembleSidewalks(n.Sidewalks),
		Parks:     assembleParks(n.Parks),
		Buildings: assembleBuildings(n.Buildings),
		Trees:     assembleTrees(n.Trees),
		Lamps:     assembleLamps(n.Lamps),
		Summary:   assembleBuildingSummary(n.Buildings),
	}
}

func assembleBlocks(blocks []layout.Block) []Block2D {
	result := make([]Block2D, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, Block2D{
			ID:         b.ID,
			Center:     coord(b.Bounds.Center()),
			Polygon:    rectToCoords(b.Bounds),
			Core:       b.Core,
			MainStreet: b.MainStreet,
		})
	}
	return result
}

func assembleStreets(roads []layout.RoadStrip) []Street2D {
	result := make([]Street2D, 0, len(roads))
	for _, r := range roads {
		s := Street2D{ID: r.ID, Axis: string(r.Axis)}
		lo, hi := r.Min(), r.Max()
		if r.Axis == layout.AxisX {
			s.Start = [2]float64{lo.X, r.Z}
			s.End = [2]float64{hi.X, r.Z}
			s.Width = r.Depth
		} else {
			s.Start = [2]float64{r.X, lo.Z}
			s.End = [2]float64{r.X, hi.Z}
			s.Width = r.Width
		}
		result = append(result, s)
	}
	return result
}

func assembleSidewalks(sidewalks []layout.SidewalkStrip) []Strip2D {
	result := make([]Strip2D, 0, len(sidewalks))
	for _, s := range sidewalks {
		result = append(result, Strip2D{ID: s.ID, Polygon: rectToCoords(s.Rect)})
	}
	return result
}

func assembleParks(parks []layout.ParkPatch) []Park2D {
	result := make([]Park2D, 0, len(parks))
	for _, p := range parks {
		result = append(result, Park2D{
			ID:      p.ID,
			Block:   p.Block,
			Polygon: rectToCoords(p.Rect),
			Area:    p.Area(),
		})
	}
	return result
}

func assembleBuildings(buildings []layout.Building) []Building2D {
	result := make([]Building2D, 0, len(buildings))
	for _, b := range buildings {
		// Corners in the building frame, rotated onto the ground.
		hw, hd := b.Width/2, b.Depth/2
		local := [4]geo.Point2D{{X: -hw, Z: -hd}, {X: hw, Z: -hd}, {X: hw, Z: hd}, {X: -hw, Z: hd}}
		poly := make([][2]float64, len(local))
		for i, c := range local {
			poly[i] = coord(b.Position.Add(c.RotateY(b.RotationY)))
		}

		result = append(result, Building2D{
			ID:      b.ID,
			Block:   b.Block,
			Kind:    b.Kind.String(),
			Polygon: poly,
			Front:   coord(b.Front()),
			Height:  b.Height + b.RoofHeight,
			Color:   b.BodyColor,
		})
	}
	return result
}

func assembleTrees(trees []layout.Tree) []Marker2D {
	result := make([]Marker2D, 0, len(trees))
	for _, t := range trees {
		result = append(result, Marker2D{ID: t.ID, Position: coord(t.Position()), Radius: t.Canopy})
	}
	return result
}

func assembleLamps(lamps []layout.LightPole) []Marker2D {
	result := make([]Marker2D, 0, len(lamps))
	for _, l := range lamps {
		result = append(result, Marker2D{ID: l.ID, Position: coord(l.Position()), Radius: lampRadius})
	}
	return result
}

func assembleBuildingSummary(buildings []layout.Building) BuildingSummary {
	bs := BuildingSummary{
		ByKind:  make(map[string]int),
		ByBlock: make(map[string]BlockBuildingSum),
	}
	for _, b := range buildings {
		bs.TotalBuildings++
		bs.ByKind[b.Kind.String()]++

		sum := bs.ByBlock[b.Block]
		if b.IsCommercial() {
			sum.Commercial++
		} else {
			sum.Residential++
		}
		sum.Footprint += b.Width * b.Depth
		sum.MaxHeight = max(sum.MaxHeight, b.Height+b.RoofHeight)
		bs.ByBlock[b.Block] = sum
	}
	return bs
}

func coord(p geo.Point2D) [2]float64 {
	return [2]float64{p.X, p.Z}
}

// rectToCoords converts a geo.Rect to its corner list.
func rectToCoords(r geo.Rect) [][2]float64 {
	corners := r.Corners()
	coords := make([][2]float64, len(corners))
	for i, c := range corners {
		coords[i] = coord(c)
	}
	return coords
}
