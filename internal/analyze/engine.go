package analyze

import (
	"fmt"
	"strings"

	"github.com/vburojevic/stacksift/internal/domain"
)

const (
	// DefaultThreshold is the similarity a record must reach against a
	// cluster representative to join the cluster.
	DefaultThreshold = 0.8

	// DefaultFrameLimit is how many outermost frames feed the signature.
	DefaultFrameLimit = 5

	frameSeparator = " > "
)

// Engine computes signatures, pairwise similarity, and clusters over parsed
// error records. It holds only configuration; every method is a pure
// function over its inputs.
type Engine struct {
	threshold  float64
	frameLimit int
	workers    int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithThreshold sets the clustering similarity threshold.
func WithThreshold(t float64) EngineOption {
	return func(e *Engine) { e.threshold = t }
}

// WithFrameLimit sets how many top frames contribute to a signature.
func WithFrameLimit(n int) EngineOption {
	return func(e *Engine) { e.frameLimit = n }
}

// WithClusterWorkers enables per-type sharded clustering across n workers.
// Output is identical to sequential clustering because cross-type
// similarity is always zero.
func WithClusterWorkers(n int) EngineOption {
	return func(e *Engine) { e.workers = n }
}

// NewEngine validates the configuration and returns an Engine. A threshold
// outside [0, 1] or a frame limit below 1 is a contract violation.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		threshold:  DefaultThreshold,
		frameLimit: DefaultFrameLimit,
		workers:    1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.threshold < 0 || e.threshold > 1 {
		return nil, fmt.Errorf("similarity threshold must be in [0, 1], got %v", e.threshold)
	}
	if e.frameLimit < 1 {
		return nil, fmt.Errorf("frame limit must be at least 1, got %d", e.frameLimit)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	return e, nil
}

// Threshold returns the configured similarity threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Signature derives the normalized fingerprint used for structural
// similarity: up to frameLimit outermost frames, each rendered as
// module.function with digits stripped from the function name, joined in
// frame order. Records with no frames yield an empty signature.
func (e *Engine) Signature(rec domain.ErrorRecord) string {
	frames := rec.Frames
	if len(frames) > e.frameLimit {
		frames = frames[:e.frameLimit]
	}

	parts := make([]string, 0, len(frames))
	for _, f := range frames {
		fn := stripDigits(f.Function)
		if f.Module != "" {
			parts = append(parts, f.Module+"."+fn)
		} else {
			parts = append(parts, fn)
		}
	}
	return strings.Join(parts, frameSeparator)
}

// Similarity scores two records in [0, 1]. Records of different declared
// error types never match. Stack-trace-bearing records compare on their
// signatures; message-only records fall back to message text.
func (e *Engine) Similarity(a, b domain.ErrorRecord) float64 {
	if a.ErrorType != b.ErrorType {
		return 0
	}

	sigA := e.Signature(a)
	sigB := e.Signature(b)
	if sigA != "" && sigB != "" {
		return matchRatio(sigA, sigB)
	}

	if a.Message != "" && b.Message != "" {
		return matchRatio(a.Message, b.Message)
	}

	return 0
}

// stripDigits removes decimal digits so generated symbols like handler123
// and handler456 normalize identically.
func stripDigits(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
