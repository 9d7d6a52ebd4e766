package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/ChicagoDave/neighborhood/pkg/cost"
	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

// reporter prints human-readable reports, colored when w is a terminal.
type reporter struct {
	out *termenv.Output
}

func newReporter(w io.Writer, opts ...termenv.OutputOption) *reporter {
	return &reporter{out: termenv.NewOutput(w, opts...)}
}

func (r *reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *reporter) println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

func (r *reporter) heading(s string, c termenv.Color) string {
	return r.out.String(s).Foreground(c).Bold().String()
}

func printValidationReport(out *reporter, r *validation.Report) {
	if len(r.Errors) > 0 {
		out.printf("%s (%d):\n", out.heading("ERRORS", termenv.ANSIRed), len(r.Errors))
		for _, e := range r.Errors {
			out.printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				out.printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				out.printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				out.printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				out.printf("    * %s\n", s)
			}
		}
		out.println()
	}

	if len(r.Warnings) > 0 {
		out.printf("%s (%d):\n", out.heading("WARNINGS", termenv.ANSIYellow), len(r.Warnings))
		for _, w := range r.Warnings {
			out.printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				out.printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				out.printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				out.printf("    * %s\n", s)
			}
		}
		out.println()
	}

	if len(r.Info) > 0 {
		out.printf("%s (%d):\n", out.heading("INFO", termenv.ANSICyan), len(r.Info))
		for _, i := range r.Info {
			out.printf("  [%s] %s\n", i.Level, i.Message)
		}
		out.println()
	}

	if r.Valid {
		out.printf("Result: %s (%s)\n", out.heading("VALID", termenv.ANSIGreen), r.Summary)
	} else {
		out.printf("Result: %s (%s)\n", out.heading("INVALID", termenv.ANSIRed), r.Summary)
	}
}

func printCostReport(out *reporter, r *cost.Report) {
	out.println("Render Budget")
	out.println("=============")
	out.println()

	out.printf("%-12s %-12s %9s %8s %10s %11s\n", "Group", "Geometry", "Instanced", "Meshes", "Draw calls", "Triangles")
	out.printf("%-12s %-12s %9s %8s %10s %11s\n", "------------", "------------", "---------", "--------", "----------", "-----------")
	for _, l := range r.Lines {
		geom := string(l.Geometry)
		if geom == "" {
			geom = "mixed"
		}
		instanced := ""
		if l.Instanced {
			instanced = "yes"
		}
		out.printf("%-12s %-12s %9s %8d %10d %11s\n", l.Name, geom, instanced, l.Meshes, l.DrawCalls, formatCount(l.Triangles))
	}

	out.println()
	out.println("Summary")
	out.println("-------")
	out.printf("  Draw calls:            %d (%d instanced)\n", r.Summary.DrawCalls, r.Summary.InstancedDrawCalls)
	out.printf("  Meshes:                %d\n", r.Summary.Meshes)
	out.printf("  Triangles:             %s\n", formatCount(r.Summary.Triangles))
}

func formatCount(v int) string {
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", float64(v)/1_000_000)
	}
	if v >= 10_000 {
		return fmt.Sprintf("%.1fK", float64(v)/1_000)
	}
	return fmt.Sprintf("%d", v)
}
