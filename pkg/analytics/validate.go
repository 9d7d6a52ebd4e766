package analytics

import (
	"fmt"

	"github.com/ChicagoDave/neighborhood/pkg/validation"
)

// validateAnalytical reports density findings for the resolved grid. None
// of them stop generation; the layout clamps silently.
func validateAnalytical(p *ResolvedParameters, report *validation.Report) {
	validateSpanClamp(p, report)
	validateCapacity(p, report)
	validateLotWidth(p, report)
	validateOpposingLots(p, report)
}

func validateSpanClamp(p *ResolvedParameters, report *validation.Report) {
	if p.Config.Spread < MinSpan {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("spread %.1f is below the minimum span; using %.0f", p.Config.Spread, MinSpan),
			Field:       "spread",
			ActualValue: p.Config.Spread,
		})
	}
}

func validateCapacity(p *ResolvedParameters, report *validation.Report) {
	if p.Config.Count > p.LotCapacity {
		report.AddInfo(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("count %d exceeds the %d lot placements available; layout holds at most %d buildings", p.Config.Count, p.LotCapacity, p.LotCapacity),
			Field:       "count",
			ActualValue: p.Config.Count,
			Suggestions: []string{"Increase spread to add lots per block"},
		})
	}
}

func validateLotWidth(p *ResolvedParameters, report *validation.Report) {
	if p.LotSpan < MinBuildingExtent {
		report.AddWarning(validation.Result{
			Level:        validation.LevelAnalytical,
			Message:      fmt.Sprintf("lot span %.2f is narrower than the minimum building width %.1f; neighbouring buildings overlap", p.LotSpan, MinBuildingExtent),
			Field:        "spread",
			ActualValue:  p.Config.Spread,
			ConflictWith: fmt.Sprintf("%d lots per block edge", p.Lots),
			Suggestions:  []string{"Increase spread"},
		})
	}
}

func validateOpposingLots(p *ResolvedParameters, report *validation.Report) {
	reach := 2 * (p.MaxBuildingDepth + SetbackBase)
	if reach > p.BlockSize {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("buildings on opposite block edges can reach %.2f into a %.2f block and may overlap near its center", reach, p.BlockSize),
			Field:       "spread",
			ActualValue: p.Config.Spread,
			Expected:    fmt.Sprintf("block size >= %.2f", reach),
		})
	}
}
