package cli

import (
	"errors"
	"fmt"

	"github.com/vburojevic/stacksift/internal/output"
)

// Machine-readable error codes surfaced on the output envelope.
const (
	codeFileNotFound = "FILE_NOT_FOUND"
	codeReadError    = "READ_ERROR"
	codeBadThreshold = "BAD_THRESHOLD"
	codeBadWindow    = "BAD_WINDOW"
	codeBadRange     = "BAD_RANGE"
	codeWriteError   = "WRITE_ERROR"
)

// outputErrorCommon normalizes error emission across commands, respecting
// structured vs text formats so agents always get machine-readable failures.
func outputErrorCommon(globals *Globals, code, message string) error {
	if globals != nil && globals.Format != "text" {
		output.NewJSONWriter(globals.Stdout).WriteError(code, message)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}

// emitWarning respects format/quiet.
func emitWarning(globals *Globals, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format != "text" {
		output.NewJSONWriter(globals.Stdout).WriteWarning(msg)
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}
