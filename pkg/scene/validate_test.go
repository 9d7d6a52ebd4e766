package scene

import (
	"math"
	"testing"
)

func validGraph() *Graph {
	g := NewGraph()
	g.Entities = []Entity{
		{
			ID:         "bld_000",
			Type:       EntityBuilding,
			Geometry:   GeometryBox,
			Position:   Vec3{X: 2, Y: 0, Z: 3},
			Dimensions: Vec3{X: 1.5, Y: 4, Z: 0.8},
			Rotation:   yawQuat(math.Pi / 2),
			Material:   MaterialBody,
			Block:      "block_0_0",
			Children:   []string{"bld_000_window_0_0"},
		},
		{
			ID:         "bld_000_window_0_0",
			Type:       EntityWindow,
			Geometry:   GeometryPlane,
			Position:   Vec3{X: 2.41, Y: 2, Z: 3},
			Dimensions: Vec3{X: 0.2, Y: 0.5},
			Rotation:   yawQuat(math.Pi / 2),
			Material:   MaterialWindow,
			Block:      "block_0_0",
		},
		{
			ID:         "road_x_0",
			Type:       EntityRoad,
			Geometry:   GeometryBox,
			Position:   Vec3{X: 0, Y: 0, Z: -5},
			Dimensions: Vec3{X: 18, Y: 0.02, Z: 2.4},
			Rotation:   identityQuat(),
			Material:   MaterialRoad,
			Batch:      BatchRoads,
		},
	}
	g.Groups.Blocks["block_0_0"] = []string{"bld_000", "bld_000_window_0_0"}
	g.Groups.Batches[BatchRoads] = []string{"road_x_0"}
	g.Groups.EntityTypes[EntityBuilding] = []string{"bld_000"}
	g.Groups.EntityTypes[EntityWindow] = []string{"bld_000_window_0_0"}
	g.Groups.EntityTypes[EntityRoad] = []string{"road_x_0"}
	g.Metadata = Metadata{
		Span:   18,
		Bounds: computeBounds(g.Entities),
	}
	return g
}

func logErrors(t *testing.T, g *Graph) {
	t.Helper()
	r := ValidateGraph(g)
	for _, e := range r.Errors {
		t.Logf("  error: %s", e.Message)
	}
}

func TestValidateGraph_Valid(t *testing.T) {
	g := validGraph()
	r := ValidateGraph(g)
	if !r.Valid || len(r.Warnings) > 0 {
		t.Errorf("expected clean graph, got %d errors and %d warnings", len(r.Errors), len(r.Warnings))
		logErrors(t, g)
	}
}

func TestValidateGraph_Nil(t *testing.T) {
	r := ValidateGraph(nil)
	if r.Valid {
		t.Error("expected invalid for nil graph")
	}
}

func TestValidateGraph_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Graph)
	}{
		{"duplicate ID", func(g *Graph) {
			dup := g.Entities[2]
			g.Entities = append(g.Entities, dup)
		}},
		{"empty ID", func(g *Graph) {
			g.Entities = append(g.Entities, Entity{
				Type:       EntityRoad,
				Geometry:   GeometryBox,
				Dimensions: Vec3{X: 1, Y: 1, Z: 1},
				Rotation:   identityQuat(),
				Material:   MaterialRoad,
			})
		}},
		{"orphaned group reference", func(g *Graph) {
			g.Groups.Blocks["block_0_0"] = append(g.Groups.Blocks["block_0_0"], "nonexistent")
		}},
		{"missing type membership", func(g *Graph) {
			g.Groups.EntityTypes[EntityRoad] = []string{}
		}},
		{"missing batch group", func(g *Graph) {
			delete(g.Groups.Batches, BatchRoads)
		}},
		{"missing child", func(g *Graph) {
			g.Entities[0].Children = append(g.Entities[0].Children, "bld_000_roof")
		}},
		{"mixed batch", func(g *Graph) {
			g.Entities = append(g.Entities, Entity{
				ID:         "road_z_0",
				Type:       EntityRoad,
				Geometry:   GeometryCylinder,
				Dimensions: Vec3{X: 2.4, Y: 0.02, Z: 18},
				Rotation:   identityQuat(),
				Material:   MaterialRoad,
				Batch:      BatchRoads,
			})
			g.Groups.Batches[BatchRoads] = append(g.Groups.Batches[BatchRoads], "road_z_0")
			g.Groups.EntityTypes[EntityRoad] = append(g.Groups.EntityTypes[EntityRoad], "road_z_0")
		}},
		{"unknown material", func(g *Graph) {
			g.Entities[2].Material = "marble"
		}},
		{"outside recorded bounds", func(g *Graph) {
			g.Entities[2].Position.X = 3
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGraph()
			tt.mutate(g)
			if ValidateGraph(g).Valid {
				t.Error("expected invalid graph")
			}
		})
	}
}

func TestValidateGraph_RotationAwareBounds(t *testing.T) {
	g := validGraph()
	// Unrotated, the building's 1.5 width would fit; turned a quarter it
	// reaches 0.75 along Z instead of X.
	g.Metadata.Bounds.Max.Z = 3.5
	if ValidateGraph(g).Valid {
		t.Error("expected rotated footprint to escape bounds")
	}
}

func TestValidateGraph_OutsideSpanWarning(t *testing.T) {
	g := validGraph()
	g.Metadata.Span = 10
	r := ValidateGraph(g)
	if !r.Valid {
		t.Fatalf("span overflow should only warn, got errors: %v", r.ErrorMessages())
	}
	if len(r.Warnings) == 0 {
		t.Error("expected warning for road wider than span")
	}
}

func TestValidateGraph_ZeroDimensionWarning(t *testing.T) {
	g := validGraph()
	g.Entities[0].Dimensions.Y = 0
	r := ValidateGraph(g)
	if len(r.Warnings) == 0 {
		t.Error("expected warning for zero dimension")
	}
}

func TestValidateGraph_RealGraph(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		g := assembleTestGraph(t, seed)
		r := ValidateGraph(g)
		if !r.Valid || len(r.Warnings) > 0 {
			t.Errorf("seed %d: %d errors, %d warnings", seed, len(r.Errors), len(r.Warnings))
			for _, e := range append(r.Errors, r.Warnings...) {
				t.Logf("  %s: %s", e.Severity, e.Message)
			}
		}
		t.Logf("validated %d entities: %s", len(g.Entities), r.Summary)
	}
}
