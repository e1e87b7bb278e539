package cli

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/vburojevic/stacksift/internal/domain"
	"github.com/vburojevic/stacksift/internal/parse"
)

// analysisFlags are the knobs shared by analyze, cluster, and trend.
type analysisFlags struct {
	Files      []string `arg:"" optional:"" help:"Log files to analyze ('-' for stdin)"`
	FormatHint string   `default:"${config_format_hint}" help:"Force a stack-trace format (python, java, javascript, go, generic); empty = auto-detect"`
	Threshold  float64  `default:"${config_threshold}" help:"Similarity threshold for clustering, in [0,1]"`
	FrameLimit int      `default:"${config_frame_limit}" help:"Stack frames contributing to the signature"`
	Workers    int      `default:"${config_workers}" help:"Worker count for parsing and per-type clustering (0 = CPU count)"`
	Output     string   `short:"o" help:"Write output to file instead of stdout"`
}

// collectBlocks reads all inputs and splits them into parseable blocks.
// NDJSON inputs are split per line with message/timestamp extraction; plain
// text is split on blank lines.
func (f *analysisFlags) collectBlocks(globals *Globals) ([]parse.Block, error) {
	paths := f.Files
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var blocks []parse.Block
	for _, path := range paths {
		var (
			data   []byte
			err    error
			source = path
		)
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
			source = "stdin"
			if err != nil {
				return nil, outputErrorCommon(globals, codeReadError, fmt.Sprintf("error reading stdin: %s", err))
			}
		} else {
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, outputErrorCommon(globals, codeFileNotFound, fmt.Sprintf("cannot open file: %s", err))
			}
		}

		text := string(data)
		if parse.LooksLikeNDJSON(text) {
			globals.Logger.Debug("splitting input as NDJSON", zap.String("source", source))
			blocks = append(blocks, parse.SplitNDJSON(text, source)...)
		} else {
			blocks = append(blocks, parse.SplitBlocks(text, source)...)
		}
	}
	return blocks, nil
}

// parseRecords runs the parallel parse pipeline over the collected blocks.
func (f *analysisFlags) parseRecords(globals *Globals) ([]domain.ErrorRecord, error) {
	blocks, err := f.collectBlocks(globals)
	if err != nil {
		return nil, err
	}

	opts := []parse.PipelineOption{parse.WithWorkers(f.Workers)}
	if f.FormatHint != "" {
		opts = append(opts, parse.WithFormatHint(parse.ParseFormat(f.FormatHint)))
	}
	pipeline := parse.NewPipeline(globals.Logger, opts...)
	return pipeline.ParseBlocks(blocks), nil
}

// openOutput returns the destination writer and a close function. An empty
// path means the command's stdout.
func (f *analysisFlags) openOutput(globals *Globals) (io.Writer, func(), error) {
	if f.Output == "" {
		return globals.Stdout, func() {}, nil
	}
	file, err := os.Create(f.Output)
	if err != nil {
		return nil, nil, outputErrorCommon(globals, codeWriteError, fmt.Sprintf("cannot create output file: %s", err))
	}
	return file, func() {
		if err := file.Close(); err != nil {
			globals.Logger.Debug("failed to close output file", zap.Error(err))
		}
	}, nil
}
