package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vburojevic/stacksift/internal/domain"
)

// SchemaVersion is bumped when any output envelope changes shape.
const SchemaVersion = 1

// ReportOutput wraps an AnalysisReport for machine-readable output.
type ReportOutput struct {
	Type          string                 `json:"type"` // Always "report"
	SchemaVersion int                    `json:"schemaVersion"`
	GeneratedAt   time.Time              `json:"generatedAt"`
	Report        *domain.AnalysisReport `json:"report"`
}

// ErrorOutput represents a structured failure with a machine-readable code.
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
}

// WarningOutput represents a non-fatal notice.
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// FormatInfo describes one supported stack-trace format.
type FormatInfo struct {
	Name   string `json:"name"`
	Sample string `json:"sample"`
}

// FormatsOutput lists the supported stack-trace formats.
type FormatsOutput struct {
	Type          string       `json:"type"` // Always "formats"
	SchemaVersion int          `json:"schemaVersion"`
	Formats       []FormatInfo `json:"formats"`
}

// JSONWriter writes typed envelopes as JSON, one value per line in ndjson
// mode or indented in json mode.
type JSONWriter struct {
	encoder *json.Encoder
}

// NewJSONWriter creates a writer emitting compact single-line values.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep raw log text unescaped
	return &JSONWriter{encoder: enc}
}

// NewIndentedJSONWriter creates a writer emitting indented values.
func NewIndentedJSONWriter(w io.Writer) *JSONWriter {
	jw := NewJSONWriter(w)
	jw.encoder.SetIndent("", "  ")
	return jw
}

// WriteReport emits a report envelope stamped with the given time.
func (w *JSONWriter) WriteReport(report *domain.AnalysisReport, now time.Time) error {
	return w.encoder.Encode(&ReportOutput{
		Type:          "report",
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now,
		Report:        report,
	})
}

// WriteError emits an error envelope.
func (w *JSONWriter) WriteError(code, message string) error {
	return w.encoder.Encode(&ErrorOutput{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
	})
}

// WriteWarning emits a warning envelope.
func (w *JSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// ClustersOutput wraps a clustering-only result.
type ClustersOutput struct {
	Type          string                `json:"type"` // Always "clusters"
	SchemaVersion int                   `json:"schemaVersion"`
	GeneratedAt   time.Time             `json:"generatedAt"`
	Clusters      []domain.ErrorCluster `json:"clusters"`
}

// TrendOutput wraps a trend-only result.
type TrendOutput struct {
	Type          string              `json:"type"` // Always "trend"
	SchemaVersion int                 `json:"schemaVersion"`
	GeneratedAt   time.Time           `json:"generatedAt"`
	Trend         domain.TrendSummary `json:"trend"`
}

// WriteClusters emits a clusters envelope.
func (w *JSONWriter) WriteClusters(clusters []domain.ErrorCluster, now time.Time) error {
	return w.encoder.Encode(&ClustersOutput{
		Type:          "clusters",
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now,
		Clusters:      clusters,
	})
}

// WriteTrend emits a trend envelope.
func (w *JSONWriter) WriteTrend(trend domain.TrendSummary, now time.Time) error {
	return w.encoder.Encode(&TrendOutput{
		Type:          "trend",
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now,
		Trend:         trend,
	})
}

// WriteFormats emits the supported-formats envelope.
func (w *JSONWriter) WriteFormats(formats []FormatInfo) error {
	return w.encoder.Encode(&FormatsOutput{
		Type:          "formats",
		SchemaVersion: SchemaVersion,
		Formats:       formats,
	})
}
