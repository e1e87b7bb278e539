package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// MaxMessageLength bounds the stored message for display purposes.
const MaxMessageLength = 200

// StackFrame is one frame of a parsed stack trace, normalized across
// ecosystems into a common shape.
type StackFrame struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Function    string `json:"function"`
	CodeSnippet string `json:"codeSnippet,omitempty"`
	Module      string `json:"module,omitempty"`
}

// ErrorRecord is a structured, parsed representation of one raw error or
// crash text block. Records are immutable after construction.
type ErrorRecord struct {
	Timestamp   time.Time    `json:"timestamp,omitzero"`
	ErrorType   string       `json:"errorType"`
	Message     string       `json:"message"`
	Frames      []StackFrame `json:"frames,omitempty"`
	Source      string       `json:"source,omitempty"`
	RawText     string       `json:"rawText,omitempty"`
	ContentHash string       `json:"contentHash"`
}

// NewErrorRecord constructs a record and computes its content hash from the
// raw text. The message is truncated to MaxMessageLength. A zero timestamp
// means no timestamp was found in the input.
func NewErrorRecord(ts time.Time, errorType, message string, frames []StackFrame, source, rawText string) ErrorRecord {
	message = strings.TrimSpace(message)
	if len(message) > MaxMessageLength {
		message = message[:MaxMessageLength]
	}
	return ErrorRecord{
		Timestamp:   ts,
		ErrorType:   errorType,
		Message:     message,
		Frames:      frames,
		Source:      source,
		RawText:     rawText,
		ContentHash: ContentHash(rawText),
	}
}

// HasTimestamp reports whether a timestamp was found in the source text.
func (r *ErrorRecord) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}

// ContentHash returns a short deterministic digest of raw error text, used
// as a stable identity key distinct from clustering identity.
func ContentHash(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:6])
}
