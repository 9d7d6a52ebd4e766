package main

import (
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

// configFlags override individual fields of the project config. Only flags
// given on the command line are applied.
type configFlags struct {
	count     int
	spread    float64
	maxHeight float64
	seed      int64
}

func (f *configFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.count, "count", spec.DefaultCount, "target number of buildings")
	fs.Float64Var(&f.spread, "spread", spec.DefaultSpread, "side length of the neighborhood")
	fs.Float64Var(&f.maxHeight, "max-height", spec.DefaultMaxHeight, "building height scale")
	fs.Int64Var(&f.seed, "seed", spec.DefaultSeed, "random seed")
}

// overrides returns a function applying the changed flags of cmd to a
// config.
func (f *configFlags) overrides(cmd *cobra.Command) func(*spec.Config) {
	fs := cmd.Flags()
	return func(c *spec.Config) {
		if fs.Changed("count") {
			c.Count = f.count
		}
		if fs.Changed("spread") {
			c.Spread = f.spread
		}
		if fs.Changed("max-height") {
			c.MaxHeight = f.maxHeight
		}
		if fs.Changed("seed") {
			c.Seed = f.seed
		}
	}
}
