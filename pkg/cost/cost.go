package cost

import (
	"sort"

	"github.com/ChicagoDave/neighborhood/pkg/scene"
)

// Line itemizes the render cost of one mesh group.
type Line struct {
	Name          string         `json:"name"`
	Geometry      scene.Geometry `json:"geometry"`
	Instanced     bool           `json:"instanced"`
	Meshes        int            `json:"meshes"`
	TrianglesEach int            `json:"triangles_each"`
	Triangles     int            `json:"triangles"`
	DrawCalls     int            `json:"draw_calls"`
}

// Report is the complete render budget for a scene.
type Report struct {
	Lines []Line `json:"lines"`

	Summary struct {
		DrawCalls          int `json:"draw_calls"`
		InstancedDrawCalls int `json:"instanced_draw_calls"`
		Triangles          int `json:"triangles"`
		Meshes             int `json:"meshes"`
	} `json:"summary"`
}

// Estimate computes the per-frame render budget of g. Each instanced batch
// costs one draw call however many instances it holds; every other entity
// is its own mesh and draw call. The ground plane is always drawn.
func Estimate(g *scene.Graph) *Report {
	report := &Report{}

	batched := make(map[scene.Batch]*Line, len(scene.Batches))
	single := make(map[scene.EntityType]*Line)
	var singleOrder []scene.EntityType

	for _, e := range g.Entities {
		tris := TrianglesFor(e.Geometry)
		if e.Batch != "" {
			l, ok := batched[e.Batch]
			if !ok {
				l = &Line{Name: string(e.Batch), Geometry: e.Geometry, Instanced: true, TrianglesEach: tris, DrawCalls: 1}
				batched[e.Batch] = l
			}
			l.Meshes++
			l.Triangles += tris
			continue
		}

		// Non-instanced entities are grouped by type for reporting only.
		l, ok := single[e.Type]
		if !ok {
			l = &Line{Name: string(e.Type), Geometry: e.Geometry, TrianglesEach: tris}
			single[e.Type] = l
			singleOrder = append(singleOrder, e.Type)
		}
		if l.Geometry != e.Geometry {
			// Mixed families (gable and flat roofs) have no single per-mesh count.
			l.Geometry = ""
			l.TrianglesEach = 0
		}
		l.Meshes++
		l.Triangles += tris
		l.DrawCalls++
	}

	for _, b := range scene.Batches {
		if l, ok := batched[b]; ok {
			report.Lines = append(report.Lines, *l)
		}
	}
	sort.SliceStable(singleOrder, func(i, j int) bool { return singleOrder[i] < singleOrder[j] })
	for _, et := range singleOrder {
		report.Lines = append(report.Lines, *single[et])
	}
	report.Lines = append(report.Lines, Line{
		Name:          "ground",
		Geometry:      scene.GeometryPlane,
		Meshes:        1,
		TrianglesEach: PlaneTriangles,
		Triangles:     PlaneTriangles,
		DrawCalls:     1,
	})

	for _, l := range report.Lines {
		report.Summary.DrawCalls += l.DrawCalls
		report.Summary.Triangles += l.Triangles
		report.Summary.Meshes += l.Meshes
		if l.Instanced {
			report.Summary.InstancedDrawCalls += l.DrawCalls
		}
	}
	return report
}

// Find returns the line with the given name.
func (r *Report) Find(name string) (Line, bool) {
	for _, l := range r.Lines {
		if l.Name == name {
			return l, true
		}
	}
	return Line{}, false
}
