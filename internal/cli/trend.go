package cli

import (
	"github.com/vburojevic/stacksift/internal/analyze"
	"github.com/vburojevic/stacksift/internal/output"
)

// TrendCmd buckets errors into time windows without clustering.
type TrendCmd struct {
	analysisFlags
	trendFlags
}

// Run executes the trend command
func (c *TrendCmd) Run(globals *Globals) error {
	records, err := c.parseRecords(globals)
	if err != nil {
		return err
	}

	start, end, err := c.resolveRange(globals)
	if err != nil {
		return err
	}
	trend, err := analyze.Aggregate(records, c.Window, start, end)
	if err != nil {
		return outputErrorCommon(globals, codeBadWindow, err.Error())
	}

	w, closeOutput, err := c.openOutput(globals)
	if err != nil {
		return err
	}
	defer closeOutput()

	switch globals.Format {
	case "json":
		return output.NewIndentedJSONWriter(w).WriteTrend(trend, globals.Clock.Now())
	case "ndjson":
		return output.NewJSONWriter(w).WriteTrend(trend, globals.Clock.Now())
	default:
		styled := c.Output == "" && output.ShouldStyle(w)
		return output.NewTextRenderer(w, styled).RenderTrend(trend)
	}
}
