package parse

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vburojevic/stacksift/internal/domain"
)

// Pipeline parses independent raw-text blocks, fanning the work out across
// workers. Blocks share no mutable state, so parsing is embarrassingly
// parallel; results keep input order.
type Pipeline struct {
	logger  *zap.Logger
	workers int
	hint    Format
	hintSet bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithWorkers sets the parse worker count. Values below 1 fall back to the
// CPU count.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithFormatHint skips per-block detection and forces one format.
func WithFormatHint(f Format) PipelineOption {
	return func(p *Pipeline) {
		p.hint = f
		p.hintSet = true
	}
}

// NewPipeline creates a parse pipeline. The logger is required; pass
// zap.NewNop() to silence it.
func NewPipeline(logger *zap.Logger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		logger:  logger,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseBlocks parses every block into an ErrorRecord. No block is dropped:
// blocks that match no specialized grammar land in the generic parser.
// Output order matches input order regardless of worker scheduling.
func (p *Pipeline) ParseBlocks(blocks []Block) []domain.ErrorRecord {
	if len(blocks) == 0 {
		return nil
	}

	results := make([]*domain.ErrorRecord, len(blocks))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, block := range blocks {
		g.Go(func() error {
			results[i] = p.parseOne(block)
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	records := make([]domain.ErrorRecord, 0, len(blocks))
	for _, rec := range results {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

func (p *Pipeline) parseOne(block Block) *domain.ErrorRecord {
	format := p.hint
	if !p.hintSet {
		format = Detect(block.Text)
	}

	rec := Parse(format, block.Text, block.Source)
	if rec == nil && format != FormatGeneric {
		p.logger.Debug("block did not match detected format, falling back to generic",
			zap.String("format", string(format)),
			zap.String("source", block.Source))
		rec = Parse(FormatGeneric, block.Text, block.Source)
	}
	if rec != nil {
		p.logger.Debug("parsed block",
			zap.String("format", string(format)),
			zap.String("errorType", rec.ErrorType),
			zap.Int("frames", len(rec.Frames)))
	}
	return rec
}
