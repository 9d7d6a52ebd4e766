package routing

import (
	"math"
	"strings"
	"testing"

	"github.com/ChicagoDave/neighborhood/pkg/layout"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

func generate(t *testing.T, c spec.Config) *layout.Neighborhood {
	t.Helper()
	n, err := layout.Generate(c)
	if err != nil {
		t.Fatalf("generate %+v: %v", c, err)
	}
	return n
}

func TestEveryXRoadCrossesEveryZRoad(t *testing.T) {
	n := generate(t, spec.Default())
	conn := BuildConnectivity(n.Roads)

	if len(conn) != len(n.Roads) {
		t.Fatalf("connectivity has %d roads, want %d", len(conn), len(n.Roads))
	}
	for _, r := range n.Roads {
		neighbors := conn[r.ID]
		if len(neighbors) != 4 {
			t.Errorf("road %s has %d neighbors, want 4: %v", r.ID, len(neighbors), neighbors)
		}
		for _, nid := range neighbors {
			if strings.HasPrefix(nid, "road_"+string(r.Axis)) {
				t.Errorf("road %s connected to parallel road %s", r.ID, nid)
			}
		}
	}
}

func TestConnectivityIsBidirectional(t *testing.T) {
	n := generate(t, spec.Config{Count: 40, Spread: 27, MaxHeight: 6, Seed: 9})
	conn := BuildConnectivity(n.Roads)

	for id, neighbors := range conn {
		for i, nid := range neighbors {
			if i > 0 && neighbors[i-1] >= nid {
				t.Errorf("neighbors of %s not sorted: %v", id, neighbors)
			}
			found := false
			for _, back := range conn[nid] {
				if back == id {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s -> %s has no reverse edge", id, nid)
			}
		}
	}
}

func TestConnected(t *testing.T) {
	n := generate(t, spec.Default())
	if !Connected(n.Roads, BuildConnectivity(n.Roads)) {
		t.Error("street grid should be connected")
	}

	// Two parallel roads never meet.
	parallel := []layout.RoadStrip{n.Roads[0], n.Roads[2]}
	if Connected(parallel, BuildConnectivity(parallel)) {
		t.Error("parallel roads reported as connected")
	}
	if !Connected(nil, nil) {
		t.Error("empty grid should count as connected")
	}
}

func TestCheckFrontage(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		n := generate(t, spec.Config{Count: 144, Spread: 24, MaxHeight: 8, Seed: seed})
		frontages, report := CheckFrontage(n)
		if !report.Valid {
			t.Fatalf("seed %d: frontage errors: %v", seed, report.ErrorMessages())
		}
		if len(frontages) != len(n.Buildings) {
			t.Fatalf("seed %d: %d frontages for %d buildings", seed, len(frontages), len(n.Buildings))
		}
		for _, f := range frontages {
			if f.Distance <= 0 {
				t.Errorf("building %s: road %s at distance %.3f", f.Building, f.Road, f.Distance)
			}
		}
	}
}

func TestCheckFrontageNearestRoad(t *testing.T) {
	n := generate(t, spec.Default())
	frontages, _ := CheckFrontage(n)

	// bld_000 sits on the north edge of block_0_0, so it opens onto the
	// second x-road.
	if frontages[0].Road != "road_x_1" {
		t.Errorf("bld_000 fronts %s, want road_x_1", frontages[0].Road)
	}
}

func TestCheckFrontageFlagsInwardBuilding(t *testing.T) {
	n := generate(t, spec.Default())
	broken := *n
	broken.Buildings = append([]layout.Building(nil), n.Buildings...)
	broken.Buildings[0].RotationY += math.Pi

	_, report := CheckFrontage(&broken)
	if report.Valid {
		t.Fatal("expected an inward-facing building to be reported")
	}
	if len(report.Errors) != 1 {
		t.Errorf("got %d errors, want 1: %v", len(report.Errors), report.ErrorMessages())
	}
}
