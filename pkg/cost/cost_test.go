package cost

import (
	"testing"

	"github.com/ChicagoDave/neighborhood/pkg/layout"
	"github.com/ChicagoDave/neighborhood/pkg/scene"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

func smallGraph() *scene.Graph {
	g := scene.NewGraph()
	for _, id := range []string{"road_x_0", "road_x_1", "road_z_0"} {
		g.Entities = append(g.Entities, scene.Entity{ID: id, Type: scene.EntityRoad, Geometry: scene.GeometryBox, Batch: scene.BatchRoads})
	}
	g.Entities = append(g.Entities,
		scene.Entity{ID: "bld_000", Type: scene.EntityBuilding, Geometry: scene.GeometryBox},
		scene.Entity{ID: "bld_001", Type: scene.EntityBuilding, Geometry: scene.GeometryBox},
		scene.Entity{ID: "bld_000_roof", Type: scene.EntityRoof, Geometry: scene.GeometryCone},
		scene.Entity{ID: "bld_001_roof", Type: scene.EntityRoof, Geometry: scene.GeometryBox},
	)
	return g
}

func TestEstimateSmallGraph(t *testing.T) {
	r := Estimate(smallGraph())

	if r.Summary.DrawCalls != 6 {
		t.Errorf("expected 6 draw calls, got %d", r.Summary.DrawCalls)
	}
	if r.Summary.InstancedDrawCalls != 1 {
		t.Errorf("expected 1 instanced draw call, got %d", r.Summary.InstancedDrawCalls)
	}
	// 3 roads, 2 bodies, cone + box roofs, ground.
	want := 3*BoxTriangles + 2*BoxTriangles + ConeTriangles + BoxTriangles + PlaneTriangles
	if r.Summary.Triangles != want {
		t.Errorf("expected %d triangles, got %d", want, r.Summary.Triangles)
	}

	roads, ok := r.Find("roads")
	if !ok || !roads.Instanced || roads.Meshes != 3 || roads.DrawCalls != 1 {
		t.Errorf("unexpected roads line %+v", roads)
	}
	roofs, ok := r.Find("roof")
	if !ok || roofs.Geometry != "" || roofs.TrianglesEach != 0 || roofs.DrawCalls != 2 {
		t.Errorf("unexpected roof line %+v", roofs)
	}
	if _, ok := r.Find("ground"); !ok {
		t.Error("missing ground line")
	}
}

func TestEstimateEmptyGraph(t *testing.T) {
	r := Estimate(scene.NewGraph())
	if r.Summary.DrawCalls != 1 || r.Summary.Triangles != PlaneTriangles {
		t.Errorf("empty scene should only draw the ground, got %+v", r.Summary)
	}
}

func TestEstimateGeneratedScene(t *testing.T) {
	n, err := layout.Generate(spec.Default())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	g := scene.Assemble(n)
	r := Estimate(g)

	batched := 0
	for _, e := range g.Entities {
		if e.Batch != "" {
			batched++
		}
	}
	if r.Summary.InstancedDrawCalls != len(scene.Batches) {
		t.Errorf("expected %d instanced draw calls, got %d", len(scene.Batches), r.Summary.InstancedDrawCalls)
	}
	wantCalls := len(scene.Batches) + (len(g.Entities) - batched) + 1
	if r.Summary.DrawCalls != wantCalls {
		t.Errorf("expected %d draw calls, got %d", wantCalls, r.Summary.DrawCalls)
	}
	if r.Summary.Meshes != len(g.Entities)+1 {
		t.Errorf("expected %d meshes, got %d", len(g.Entities)+1, r.Summary.Meshes)
	}

	bulbs, _ := r.Find("bulbs")
	if bulbs.Triangles != len(n.Lamps)*SphereTriangles {
		t.Errorf("bulbs: %d triangles for %d lamps", bulbs.Triangles, len(n.Lamps))
	}
	t.Logf("render budget: %d draw calls, %d triangles", r.Summary.DrawCalls, r.Summary.Triangles)
}

func TestTrianglesFor(t *testing.T) {
	tests := []struct {
		g    scene.Geometry
		want int
	}{
		{scene.GeometryBox, 12},
		{scene.GeometryCone, 8},
		{scene.GeometryCylinder, 24},
		{scene.GeometrySphere, 264},
		{scene.GeometryIcosahedron, 20},
		{scene.GeometryPlane, 2},
		{"torus", 0},
	}
	for _, tt := range tests {
		if got := TrianglesFor(tt.g); got != tt.want {
			t.Errorf("TrianglesFor(%s) = %d, want %d", tt.g, got, tt.want)
		}
	}
}
