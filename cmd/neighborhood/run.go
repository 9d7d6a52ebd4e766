package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/neighborhood/pkg/analytics"
	"github.com/ChicagoDave/neighborhood/pkg/cost"
	"github.com/ChicagoDave/neighborhood/pkg/layout"
	"github.com/ChicagoDave/neighborhood/pkg/routing"
	"github.com/ChicagoDave/neighborhood/pkg/scene"
	"github.com/ChicagoDave/neighborhood/pkg/scene2d"
	"github.com/ChicagoDave/neighborhood/pkg/spec"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

var errValidation = errors.New("validation failed")

// loadAndValidate loads the project config, applies flag overrides and
// runs config validation.
func loadAndValidate(cmd *cobra.Command, projectPath string, flags *configFlags) (spec.Config, *validation.Report, error) {
	cfg, err := spec.LoadProject(projectPath)
	if err != nil {
		return spec.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	flags.overrides(cmd)(cfg)
	slog.Debug("config loaded", "project", projectPath, "count", cfg.Count, "spread", cfg.Spread, "max_height", cfg.MaxHeight, "seed", cfg.Seed)
	return *cfg, validation.ValidateConfig(cfg), nil
}

// generate runs config validation, analytics and the layout solver. The
// returned report carries every finding so far.
func generate(cmd *cobra.Command, projectPath string, flags *configFlags) (*analytics.ResolvedParameters, *layout.Neighborhood, *validation.Report, error) {
	cfg, report, err := loadAndValidate(cmd, projectPath, flags)
	if err != nil {
		return nil, nil, nil, err
	}
	if !report.Valid {
		printValidationReport(newReporter(cmd.ErrOrStderr()), report)
		return nil, nil, report, &layout.ConfigError{Report: report}
	}

	params, analyticsReport := analytics.Resolve(cfg)
	report.Merge(analyticsReport)

	n := layout.Build(params)
	slog.Debug("layout generated",
		"buildings", len(n.Buildings),
		"trees", len(n.Trees),
		"parks", len(n.Parks),
		"lamps", len(n.Lamps))
	return params, n, report, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runGenerate(cmd *cobra.Command, projectPath string, flags *configFlags) error {
	params, n, report, err := generate(cmd, projectPath, flags)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"parameters": params,
		"validation": report,
		"layout":     n,
	})
}

func runScene(cmd *cobra.Command, projectPath string, flags *configFlags) error {
	_, n, report, err := generate(cmd, projectPath, flags)
	if err != nil {
		return err
	}
	g := scene.Assemble(n)
	report.Merge(scene.ValidateGraph(g))
	if !report.Valid {
		printValidationReport(newReporter(cmd.ErrOrStderr()), report)
		return errValidation
	}
	return writeJSON(cmd.OutOrStdout(), map[string]any{
		"validation":  report,
		"scene_graph": g,
	})
}

func runPlan(cmd *cobra.Command, projectPath string, flags *configFlags) error {
	_, n, _, err := generate(cmd, projectPath, flags)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), scene2d.Assemble2D(n))
}

func runValidate(cmd *cobra.Command, projectPath string, flags *configFlags) error {
	cfg, report, err := loadAndValidate(cmd, projectPath, flags)
	if err != nil {
		return err
	}
	out := newReporter(cmd.OutOrStdout())

	if report.Valid {
		params, analyticsReport := analytics.Resolve(cfg)
		report.Merge(analyticsReport)

		// Spatial checks on the generated layout.
		n := layout.Build(params)
		report.Merge(scene.ValidateGraph(scene.Assemble(n)))
		_, frontageReport := routing.CheckFrontage(n)
		report.Merge(frontageReport)
		if !routing.Connected(n.Roads, routing.BuildConnectivity(n.Roads)) {
			report.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: "street grid is not connected",
				Field:   "roads",
			})
		}
	}

	printValidationReport(out, report)
	if !report.Valid {
		return errValidation
	}
	return nil
}

func runCost(cmd *cobra.Command, projectPath string, flags *configFlags) error {
	_, n, report, err := generate(cmd, projectPath, flags)
	if err != nil {
		return fmt.Errorf("config has validation errors; fix before computing cost: %w", err)
	}

	out := newReporter(cmd.OutOrStdout())
	printCostReport(out, cost.Estimate(scene.Assemble(n)))

	if len(report.Warnings) > 0 {
		out.println()
		printValidationReport(out, report)
	}
	return nil
}
