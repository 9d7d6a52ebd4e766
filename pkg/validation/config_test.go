package validation

import (
	"math"
	"testing"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

func validConfig() *spec.Config {
	c := spec.Default()
	return &c
}

func TestValidateConfigValid(t *testing.T) {
	r := ValidateConfig(validConfig())
	if !r.Valid {
		t.Errorf("expected valid report, got %d errors: %v", len(r.Errors), r.Errors)
	}
	if len(r.Info) != 0 {
		t.Errorf("defaults should sit inside the control ranges, got %d info", len(r.Info))
	}
}

func TestValidateConfigNil(t *testing.T) {
	if ValidateConfig(nil).Valid {
		t.Error("expected invalid report for nil config")
	}
}

func TestValidateConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *spec.Config)
		field  string
	}{
		{"negative count", func(c *spec.Config) { c.Count = -1 }, "count"},
		{"zero spread", func(c *spec.Config) { c.Spread = 0 }, "spread"},
		{"negative spread", func(c *spec.Config) { c.Spread = -4 }, "spread"},
		{"NaN spread", func(c *spec.Config) { c.Spread = math.NaN() }, "spread"},
		{"zero max height", func(c *spec.Config) { c.MaxHeight = 0 }, "max_height"},
		{"infinite max height", func(c *spec.Config) { c.MaxHeight = math.Inf(1) }, "max_height"},
		{"huge max height", func(c *spec.Config) { c.MaxHeight = 1.5e308 }, "max_height"},
		{"huge spread", func(c *spec.Config) { c.Spread = 1e300 }, "spread"},
		{"seed too large", func(c *spec.Config) { c.Seed = math.MaxUint32 + 1 }, "seed"},
		{"seed too small", func(c *spec.Config) { c.Seed = math.MinInt32 - 1 }, "seed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			r := ValidateConfig(c)
			if r.Valid {
				t.Fatal("expected invalid report")
			}
			if len(r.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d", len(r.Errors))
			}
			if r.Errors[0].Field != tt.field {
				t.Errorf("field = %q, want %q", r.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidateConfigEdgeSeeds(t *testing.T) {
	for _, seed := range []int64{math.MinInt32, -1, 0, math.MaxUint32} {
		c := validConfig()
		c.Seed = seed
		if r := ValidateConfig(c); !r.Valid {
			t.Errorf("seed %d should be valid: %v", seed, r.ErrorMessages())
		}
	}
}

func TestValidateConfigOutOfRangeIsInfo(t *testing.T) {
	c := &spec.Config{Count: 0, Spread: 40, MaxHeight: 2, Seed: 1}
	r := ValidateConfig(c)
	if !r.Valid {
		t.Fatalf("out-of-range values should not be errors: %v", r.ErrorMessages())
	}
	if len(r.Info) != 3 {
		t.Errorf("expected 3 info results, got %d", len(r.Info))
	}
}

func TestValidateConfigAtLimits(t *testing.T) {
	c := &spec.Config{Count: 64, Spread: spec.SpreadLimit, MaxHeight: spec.MaxHeightLimit, Seed: 1}
	if r := ValidateConfig(c); !r.Valid {
		t.Errorf("limits themselves should be valid: %v", r.ErrorMessages())
	}
}
