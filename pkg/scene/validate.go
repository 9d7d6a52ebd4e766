package scene

import (
	"fmt"

	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

const boundsTolerance = 1e-6

// ValidateGraph performs structural validation on a scene graph output.
// It checks entity integrity, group index consistency, batch uniformity,
// bounds enclosure and dimensions.
func ValidateGraph(g *Graph) *validation.Report {
	r := validation.NewReport()

	if g == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene graph is nil",
		})
		return r
	}

	validateEntityIDs(g, r)
	validateGroupIndices(g, r)
	validateGroupMembership(g, r)
	validateChildren(g, r)
	validateBatches(g, r)
	validateMaterials(g, r)
	validateBoundsEnclosure(g, r)
	validateEntityDimensions(g, r)

	return r
}

func validateEntityIDs(g *Graph, r *validation.Report) {
	seen := make(map[string]int, len(g.Entities))

	for i, e := range g.Entities {
		if e.ID == "" {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity at index %d has empty ID", i),
				Field:       fmt.Sprintf("entities[%d].id", i),
				ActualValue: "",
				Expected:    "non-empty string",
			})
			continue
		}
		if prev, exists := seen[e.ID]; exists {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("duplicate entity ID %q at indices %d and %d", e.ID, prev, i),
				Field:       fmt.Sprintf("entities[%d].id", i),
				ActualValue: e.ID,
			})
		}
		seen[e.ID] = i
	}
}

func validateGroupIndices(g *Graph, r *validation.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}

	checkGroup := func(groupType, groupName string, ids []string) {
		for _, id := range ids {
			if !entityIDs[id] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("group %s.%s references non-existent entity %q", groupType, groupName, id),
					Field:       fmt.Sprintf("groups.%s.%s", groupType, groupName),
					ActualValue: id,
					Expected:    "existing entity ID",
				})
			}
		}
	}

	for name, ids := range g.Groups.Blocks {
		checkGroup("blocks", name, ids)
	}
	for name, ids := range g.Groups.Batches {
		checkGroup("batches", string(name), ids)
	}
	for name, ids := range g.Groups.EntityTypes {
		checkGroup("entity_types", string(name), ids)
	}
}

func memberSets[K ~string](groups map[K][]string) map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(groups))
	for name, ids := range groups {
		m := make(map[string]bool, len(ids))
		for _, id := range ids {
			m[id] = true
		}
		sets[string(name)] = m
	}
	return sets
}

func validateGroupMembership(g *Graph, r *validation.Report) {
	typeMembers := memberSets(g.Groups.EntityTypes)
	batchMembers := memberSets(g.Groups.Batches)
	blockMembers := memberSets(g.Groups.Blocks)

	check := func(e Entity, group, key string, members map[string]map[string]bool) {
		m, ok := members[key]
		switch {
		case !ok:
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q has %s %q but no such %s group exists", e.ID, group, key, group),
				Field:       "groups." + group,
				ActualValue: key,
			})
		case !m[e.ID]:
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q has %s %q but is not in that group", e.ID, group, key),
				Field:       fmt.Sprintf("groups.%s.%s", group, key),
				ActualValue: e.ID,
			})
		}
	}

	for _, e := range g.Entities {
		if e.ID == "" {
			continue
		}
		if e.Type != "" {
			check(e, "entity_types", string(e.Type), typeMembers)
		}
		if e.Batch != "" {
			check(e, "batches", string(e.Batch), batchMembers)
		}
		if e.Block != "" {
			check(e, "blocks", e.Block, blockMembers)
		}
	}
}

func validateChildren(g *Graph, r *validation.Report) {
	entityIDs := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		entityIDs[e.ID] = true
	}
	for _, e := range g.Entities {
		for _, c := range e.Children {
			if !entityIDs[c] {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("entity %q lists non-existent child %q", e.ID, c),
					Field:       fmt.Sprintf("entities.%s.children", e.ID),
					ActualValue: c,
				})
			}
		}
	}
}

// validateBatches checks that every instanced batch can be drawn as one
// mesh: a single geometry and material.
func validateBatches(g *Graph, r *validation.Report) {
	type shape struct {
		geometry Geometry
		material string
	}
	first := make(map[Batch]shape)
	for _, e := range g.Entities {
		if e.Batch == "" {
			continue
		}
		s := shape{e.Geometry, e.Material}
		want, ok := first[e.Batch]
		if !ok {
			first[e.Batch] = s
			continue
		}
		if s != want {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q in batch %s uses %s/%s, batch uses %s/%s", e.ID, e.Batch, s.geometry, s.material, want.geometry, want.material),
				Field:       fmt.Sprintf("groups.batches.%s", e.Batch),
				ActualValue: e.ID,
			})
		}
	}
}

func validateMaterials(g *Graph, r *validation.Report) {
	for _, e := range g.Entities {
		if _, ok := g.Materials[e.Material]; !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q uses unknown material %q", e.ID, e.Material),
				Field:       fmt.Sprintf("entities.%s.material", e.ID),
				ActualValue: e.Material,
			})
		}
	}
}

// validateBoundsEnclosure checks every entity against the recorded scene
// bounds and its ground footprint against the neighborhood span.
func validateBoundsEnclosure(g *Graph, r *validation.Report) {
	bounds := g.Metadata.Bounds
	half := g.Metadata.Span / 2

	for _, e := range g.Entities {
		fp := e.Footprint()
		lo, hi := fp.Min(), fp.Max()

		if lo.X < bounds.Min.X-boundsTolerance || hi.X > bounds.Max.X+boundsTolerance ||
			lo.Z < bounds.Min.Z-boundsTolerance || hi.Z > bounds.Max.Z+boundsTolerance ||
			e.Position.Y < bounds.Min.Y-boundsTolerance || e.Position.Y+e.Dimensions.Y > bounds.Max.Y+boundsTolerance {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q extent [%.2f, %.2f]x[%.2f, %.2f] outside scene bounds", e.ID, lo.X, hi.X, lo.Z, hi.Z),
				Field:       "metadata.bounds",
				ActualValue: e.ID,
			})
		}

		if half > 0 && (lo.X < -half-boundsTolerance || hi.X > half+boundsTolerance ||
			lo.Z < -half-boundsTolerance || hi.Z > half+boundsTolerance) {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q extent [%.2f, %.2f]x[%.2f, %.2f] outside span ±%.2f", e.ID, lo.X, hi.X, lo.Z, hi.Z, half),
				Field:       "metadata.span",
				ActualValue: e.ID,
			})
		}
	}
}

func validateEntityDimensions(g *Graph, r *validation.Report) {
	for _, e := range g.Entities {
		d := e.Dimensions
		bad := d.X <= 0 || d.Y <= 0 || d.Z <= 0
		if e.Geometry == GeometryPlane {
			// Planes are flat along their local Z.
			bad = d.X <= 0 || d.Y <= 0 || d.Z < 0
		}
		if bad {
			r.AddWarning(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("entity %q has zero or negative dimension (%.2f, %.2f, %.2f)", e.ID, d.X, d.Y, d.Z),
				Field:       fmt.Sprintf("entities.%s.dimensions", e.ID),
				ActualValue: fmt.Sprintf("%.2f x %.2f x %.2f", d.X, d.Y, d.Z),
				Expected:    "all dimensions > 0",
			})
		}
	}
}
