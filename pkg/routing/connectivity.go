package routing

import (
	"sort"

	"github.com/ChicagoDave/neighborhood/pkg/layout"
)

// BuildConnectivity builds the street graph of a layout. Two roads are
// connected when their strips overlap, which on the grid means every
// x-road crosses every z-road. Returns a map of road ID to connected road
// IDs, guaranteed bidirectional and sorted.
func BuildConnectivity(roads []layout.RoadStrip) map[string][]string {
	conn := make(map[string]map[string]bool, len(roads))
	for i, a := range roads {
		for _, b := range roads[i+1:] {
			if !a.Intersects(b.Rect) {
				continue
			}
			// Bidirectional: add both directions.
			if conn[a.ID] == nil {
				conn[a.ID] = make(map[string]bool)
			}
			conn[a.ID][b.ID] = true
			if conn[b.ID] == nil {
				conn[b.ID] = make(map[string]bool)
			}
			conn[b.ID][a.ID] = true
		}
	}

	// Convert sets to sorted slices for deterministic output.
	result := make(map[string][]string, len(conn))
	for id, neighbors := range conn {
		ids := make([]string, 0, len(neighbors))
		for nid := range neighbors {
			ids = append(ids, nid)
		}
		sort.Strings(ids)
		result[id] = ids
	}
	return result
}

// Connected reports whether every road can be reached from every other.
func Connected(roads []layout.RoadStrip, conn map[string][]string) bool {
	if len(roads) == 0 {
		return true
	}
	seen := map[string]bool{roads[0].ID: true}
	queue := []string{roads[0].ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range conn[id] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == len(roads)
}
