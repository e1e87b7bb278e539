package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/stacksift/internal/analyze"
	"github.com/vburojevic/stacksift/internal/domain"
)

// TextRenderer produces human-facing terminal output from an
// AnalysisReport. It reads the report and never mutates it.
type TextRenderer struct {
	w      io.Writer
	styled bool
}

// NewTextRenderer creates a renderer. Styling should be enabled only when
// the writer is a terminal (see ShouldStyle).
func NewTextRenderer(w io.Writer, styled bool) *TextRenderer {
	return &TextRenderer{w: w, styled: styled}
}

// RenderReport writes the full analysis report: summary header, top error
// types, clusters table, and trend table.
func (r *TextRenderer) RenderReport(report *domain.AnalysisReport) error {
	r.header("Analysis Report")
	fmt.Fprintf(r.w, "%s %s\n", r.label("Status:"), StatusText(report.HasErrors, r.styled))
	fmt.Fprintf(r.w, "%s %d\n", r.label("Total errors:"), report.TotalErrors)
	fmt.Fprintf(r.w, "%s %d\n", r.label("Unique types:"), report.UniqueTypeCount)
	if report.ErrorRate > 0 {
		fmt.Fprintf(r.w, "%s %.2f/min\n", r.label("Error rate:"), report.ErrorRate)
	}
	fmt.Fprintln(r.w)

	if len(report.TopErrors) > 0 {
		r.header("Top Error Types")
		for _, tc := range report.TopErrors {
			fmt.Fprintf(r.w, "  %4dx %s\n", tc.Count, r.errType(tc.ErrorType))
		}
		fmt.Fprintln(r.w)
	}

	if err := r.RenderClusters(report.Clusters); err != nil {
		return err
	}
	return r.RenderTrend(report.Trend)
}

// RenderClusters writes the cluster table, largest clusters first.
func (r *TextRenderer) RenderClusters(clusters []domain.ErrorCluster) error {
	if len(clusters) == 0 {
		return nil
	}
	r.header("Clusters")

	table := tablewriter.NewWriter(r.w)
	table.Header("Count", "Type", "Message", "First Seen", "Last Seen")
	for _, c := range clusters {
		if err := table.Append([]string{
			strconv.Itoa(c.Count()),
			c.Representative.ErrorType,
			analyze.NormalizeMessage(c.Representative.Message),
			formatSeen(c.FirstSeen),
			formatSeen(c.LastSeen),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(r.w)
	return nil
}

// RenderTrend writes the trend table with one row per non-empty bucket.
func (r *TextRenderer) RenderTrend(trend domain.TrendSummary) error {
	if len(trend.Buckets) == 0 {
		return nil
	}
	r.header("Trend")

	table := tablewriter.NewWriter(r.w)
	table.Header("Bucket", "Count")
	for _, b := range trend.Buckets {
		if err := table.Append([]string{
			b.BucketStart.Format(time.RFC3339),
			strconv.Itoa(b.Count),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(r.w, "%s %.1f\n", r.label("Average per bucket:"), trend.AveragePerBucket)
	if trend.PeakBucket != nil {
		fmt.Fprintf(r.w, "%s %s (%d errors)\n", r.label("Peak:"),
			trend.PeakBucket.BucketStart.Format(time.RFC3339), trend.PeakBucket.Count)
	}
	fmt.Fprintln(r.w)
	return nil
}

func (r *TextRenderer) header(s string) {
	if r.styled {
		s = Styles.Header.Render(s)
	}
	fmt.Fprintln(r.w, s)
}

func (r *TextRenderer) label(s string) string {
	if r.styled {
		return Styles.Label.Render(s)
	}
	return s
}

func (r *TextRenderer) errType(s string) string {
	if r.styled {
		return Styles.ErrorType.Render(s)
	}
	return s
}

func formatSeen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
