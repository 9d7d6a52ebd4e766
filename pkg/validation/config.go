package validation

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

// ValidateConfig performs config-level validation before any generation
// work. Errors make the config unusable; info results flag values outside
// the configurator's control ranges, which still generate fine.
func ValidateConfig(c *spec.Config) *Report {
	r := NewReport()

	if c == nil {
		r.AddError(Result{
			Level:   LevelConfig,
			Message: "config is nil",
		})
		return r
	}

	validateCount(c, r)
	validateSpread(c, r)
	validateMaxHeight(c, r)
	validateSeed(c, r)

	return r
}

func validateCount(c *spec.Config, r *Report) {
	if c.Count < 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "count must be non-negative",
			Field:       "count",
			ActualValue: c.Count,
			Expected:    ">= 0",
		})
		return
	}
	if c.Count < spec.CountMin || c.Count > spec.CountMax {
		r.AddInfo(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("count %d is outside the configurator range [%d, %d]", c.Count, spec.CountMin, spec.CountMax),
			Field:       "count",
			ActualValue: c.Count,
		})
	}
}

func validateSpread(c *spec.Config, r *Report) {
	if !finite(c.Spread) || c.Spread <= 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "spread must be a finite number greater than 0",
			Field:       "spread",
			ActualValue: c.Spread,
			Expected:    "> 0",
		})
		return
	}
	if c.Spread > spec.SpreadLimit {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("spread must not exceed %g", spec.SpreadLimit),
			Field:       "spread",
			ActualValue: c.Spread,
			Expected:    fmt.Sprintf("<= %g", spec.SpreadLimit),
		})
		return
	}
	if c.Spread < spec.SpreadMin || c.Spread > spec.SpreadMax {
		r.AddInfo(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("spread %.1f is outside the configurator range [%.0f, %.0f]", c.Spread, spec.SpreadMin, spec.SpreadMax),
			Field:       "spread",
			ActualValue: c.Spread,
		})
	}
}

func validateMaxHeight(c *spec.Config, r *Report) {
	if !finite(c.MaxHeight) || c.MaxHeight <= 0 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "max_height must be a finite number greater than 0",
			Field:       "max_height",
			ActualValue: c.MaxHeight,
			Expected:    "> 0",
		})
		return
	}
	if c.MaxHeight > spec.MaxHeightLimit {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("max_height must not exceed %g", spec.MaxHeightLimit),
			Field:       "max_height",
			ActualValue: c.MaxHeight,
			Expected:    fmt.Sprintf("<= %g", spec.MaxHeightLimit),
		})
		return
	}
	if c.MaxHeight < spec.MaxHeightMin || c.MaxHeight > spec.MaxHeightMax {
		r.AddInfo(Result{
			Level:       LevelConfig,
			Message:     fmt.Sprintf("max_height %.1f is outside the configurator range [%.0f, %.0f]", c.MaxHeight, spec.MaxHeightMin, spec.MaxHeightMax),
			Field:       "max_height",
			ActualValue: c.MaxHeight,
		})
	}
}

func validateSeed(c *spec.Config, r *Report) {
	if c.Seed < math.MinInt32 || c.Seed > math.MaxUint32 {
		r.AddError(Result{
			Level:       LevelConfig,
			Message:     "seed must fit in 32 bits",
			Field:       "seed",
			ActualValue: c.Seed,
			Expected:    fmt.Sprintf("[%d, %d]", math.MinInt32, uint32(math.MaxUint32)),
			Suggestions: []string{"Use a seed between -2147483648 and 4294967295"},
		})
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
