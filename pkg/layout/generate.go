// Package layout builds neighborhood layouts: the street grid, parks,
// buildings and street furniture of a 3x3 block neighborhood.
//
// Generation consumes a single random stream in a fixed order, which is
// part of the output contract: lamps on even grid lines first, then the
// blocks with bx in the outer loop and bz in the inner one, and within
// each block the park, the lots and finally the corner trees. Reordering any of
// these changes every layout for a given seed.
package layout

import (
	"errors"
	"strings"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/rng"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

// ErrInvalidConfiguration is matched by errors returned for configs that
// fail validation.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError carries the validation report of a rejected config.
type ConfigError struct {
	Report *validation.Report
}

func (e *ConfigError) Error() string {
	return ErrInvalidConfiguration.Error() + ": " + strings.Join(e.Report.ErrorMessages(), "; ")
}

// Is makes errors.Is(err, ErrInvalidConfiguration) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Generate validates c and builds its layout. The same config always
// yields the same layout.
func Generate(c spec.Config) (*Neighborhood, error) {
	n, _, err := GenerateWithReport(c)
	return n, err
}

// GenerateWithReport is Generate that also returns the config and
// analytical findings. The report is returned even when err is non-nil.
func GenerateWithReport(c spec.Config) (*Neighborhood, *validation.Report, error) {
	report := validation.ValidateConfig(&c)
	if !report.Valid {
		return nil, report, &ConfigError{Report: report}
	}

	params, analyticsReport := analytics.Resolve(c)
	report.Merge(analyticsReport)

	return Build(params), report, nil
}

// Build runs the layout solver on already resolved parameters with a
// fresh random stream seeded from params.Config.Seed.
func Build(params *analytics.ResolvedParameters) *Neighborhood {
	r := rng.New(params.Config.Seed)
	blocks := analytics.BlockCount * analytics.BlockCount

	n := &Neighborhood{
		Config: params.Config,
		Span:   params.TotalSpan,
		Blocks: make([]Block, 0, blocks),
		Trees:  make([]Tree, 0, 4*blocks),
		Parks:  make([]ParkPatch, 0, blocks),
	}

	// 1. Streets, sidewalks and lamps.
	n.Roads, n.Sidewalks, n.Lamps = layoutStreets(params, r)

	// 2. Blocks: park, lots, corner trees.
	pl := newPlacer(params, r)
	for bx := 0; bx < analytics.BlockCount; bx++ {
		for bz := 0; bz < analytics.BlockCount; bz++ {
			b := newBlock(params, bx, bz)
			n.Blocks = append(n.Blocks, b)

			if park, ok := placePark(params, r, b); ok {
				n.Parks = append(n.Parks, park)
			}
			pl.placeBlock(b)
			n.Trees = append(n.Trees, scatterTrees(r, b, len(n.Trees))...)
		}
	}
	n.Buildings = pl.buildings

	return n
}
