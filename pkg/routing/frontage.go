package routing

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/neighborhood/pkg/geo"
	"github.com/ChicagoDave/neighborhood/pkg/layout"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

const frontTolerance = 1e-6

// Frontage records the street a building's entrance opens onto.
type Frontage struct {
	Building string  `json:"building"`
	Road     string  `json:"road"`
	Distance float64 `json:"distance"`
}

// CheckFrontage verifies that every building faces away from its block
// center, toward the block edge it sits on, and finds the road in front
// of it. Buildings that face inward or have no road ahead are reported as
// spatial errors.
func CheckFrontage(n *layout.Neighborhood) ([]Frontage, *validation.Report) {
	report := validation.NewReport()
	blocks := make(map[string]layout.Block, len(n.Blocks))
	for _, b := range n.Blocks {
		blocks[b.ID] = b
	}

	frontages := make([]Frontage, 0, len(n.Buildings))
	for _, b := range n.Buildings {
		block, ok := blocks[b.Block]
		if !ok {
			report.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("building %s references unknown block %s", b.ID, b.Block),
				Field:   "buildings." + b.ID + ".block",
			})
			continue
		}

		front := b.Front()
		outward := b.Position.Sub(block.Bounds.Center())
		if front.Dot(outward) <= frontTolerance || front.Dot(b.Side.Outward()) < 1-frontTolerance {
			report.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("building %s on the %s side faces into block %s", b.ID, b.Side, block.ID),
				Field:       "buildings." + b.ID + ".rotation_y",
				ActualValue: b.RotationY,
			})
			continue
		}

		road, dist, ok := roadAhead(n.Roads, b.Position, front)
		if !ok {
			report.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("no road in front of building %s", b.ID),
				Field:   "buildings." + b.ID,
			})
			continue
		}
		frontages = append(frontages, Frontage{Building: b.ID, Road: road, Distance: dist})
	}
	return frontages, report
}

// roadAhead returns the nearest road perpendicular to front that lies
// ahead of pt, with the distance to its near edge.
func roadAhead(roads []layout.RoadStrip, pt, front geo.Point2D) (string, float64, bool) {
	axis := layout.AxisZ
	if math.Abs(front.Z) > math.Abs(front.X) {
		axis = layout.AxisX
	}

	best, bestDist := "", math.Inf(1)
	for _, r := range roads {
		if r.Axis != axis {
			continue
		}
		half := r.Depth / 2
		if axis == layout.AxisZ {
			half = r.Width / 2
		}
		ahead := r.Center().Sub(pt).Dot(front)
		if ahead <= half {
			continue
		}
		if d := ahead - half; d < bestDist {
			best, bestDist = r.ID, d
		}
	}
	return best, bestDist, best != ""
}
