package cli

import (
	"fmt"
	"time"

	"github.com/vburojevic/stacksift/internal/analyze"
	"github.com/vburojevic/stacksift/internal/output"
)

// trendFlags are the time-window knobs shared by analyze and trend.
type trendFlags struct {
	Window time.Duration `default:"${config_window}" help:"Trend bucket width"`
	Since  string        `default:"${config_since}" help:"How far back the trend range reaches (duration, e.g. 24h)"`
	Until  string        `help:"Trend range end as RFC3339 (default: now)"`
}

// resolveRange computes the half-open [start, end) trend range from flags,
// anchored at the injected clock's now.
func (t *trendFlags) resolveRange(globals *Globals) (start, end time.Time, err error) {
	end = globals.Clock.Now()
	if t.Until != "" {
		end, err = time.Parse(time.RFC3339, t.Until)
		if err != nil {
			return start, end, outputErrorCommon(globals, codeBadRange, fmt.Sprintf("invalid --until: %s", err))
		}
	}

	span := analyze.DefaultRangeSpan
	if t.Since != "" {
		span, err = time.ParseDuration(t.Since)
		if err != nil {
			return start, end, outputErrorCommon(globals, codeBadRange, fmt.Sprintf("invalid --since: %s", err))
		}
	}
	return end.Add(-span), end, nil
}

// AnalyzeCmd runs the full pipeline: parse, cluster, trend, report.
type AnalyzeCmd struct {
	analysisFlags
	trendFlags
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	records, err := c.parseRecords(globals)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		// Valid empty report; distinct from unreadable input.
		emitWarning(globals, "no error records found in input")
	}

	engine, err := analyze.NewEngine(
		analyze.WithThreshold(c.Threshold),
		analyze.WithFrameLimit(c.FrameLimit),
		analyze.WithClusterWorkers(c.Workers),
	)
	if err != nil {
		return outputErrorCommon(globals, codeBadThreshold, err.Error())
	}

	clusters := engine.Cluster(records)

	start, end, err := c.resolveRange(globals)
	if err != nil {
		return err
	}
	trend, err := analyze.Aggregate(records, c.Window, start, end)
	if err != nil {
		return outputErrorCommon(globals, codeBadWindow, err.Error())
	}

	report := analyze.Assemble(records, clusters, trend)

	w, closeOutput, err := c.openOutput(globals)
	if err != nil {
		return err
	}
	defer closeOutput()

	switch globals.Format {
	case "json":
		return output.NewIndentedJSONWriter(w).WriteReport(report, globals.Clock.Now())
	case "ndjson":
		return output.NewJSONWriter(w).WriteReport(report, globals.Clock.Now())
	default:
		styled := c.Output == "" && output.ShouldStyle(w)
		return output.NewTextRenderer(w, styled).RenderReport(report)
	}
}
