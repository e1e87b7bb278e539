package parse

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Block is one delimited unit of raw input text paired with the identifier
// of the file or stream it came from.
type Block struct {
	Text   string
	Source string
}

// SplitBlocks splits raw log text into blank-line separated blocks. Empty
// blocks are dropped.
func SplitBlocks(text, source string) []Block {
	var blocks []Block
	for _, chunk := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		blocks = append(blocks, Block{Text: chunk, Source: source})
	}
	return blocks
}

// SplitNDJSON treats each line of the input as a JSON log entry and
// extracts a text block from its message field, carrying the entry's
// timestamp along so the extractor can find it. Lines that are not valid
// JSON are passed through as raw one-line blocks.
func SplitNDJSON(text, source string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			blocks = append(blocks, Block{Text: line, Source: source})
			continue
		}
		msg := gjson.Get(line, "message")
		if !msg.Exists() {
			msg = gjson.Get(line, "eventMessage")
		}
		if !msg.Exists() {
			continue
		}
		block := msg.String()
		if ts := gjson.Get(line, "timestamp"); ts.Exists() && !strings.Contains(block, ts.String()) {
			block = ts.String() + " " + block
		}
		if src := gjson.Get(line, "source"); src.Exists() && src.String() != "" {
			blocks = append(blocks, Block{Text: block, Source: src.String()})
			continue
		}
		blocks = append(blocks, Block{Text: block, Source: source})
	}
	return blocks
}

// LooksLikeNDJSON reports whether the input's first non-empty line is a
// JSON object, which selects NDJSON splitting over blank-line splitting.
func LooksLikeNDJSON(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, "{") && gjson.Valid(line)
	}
	return false
}
