package parse

import "regexp"

// Format identifies the stack-trace convention a text block follows.
type Format string

const (
	FormatPython     Format = "python"
	FormatJava       Format = "java"
	FormatJavaScript Format = "javascript"
	FormatGo         Format = "go"
	FormatGeneric    Format = "generic"
)

// Formats lists the supported formats in detection priority order.
var Formats = []Format{FormatPython, FormatJava, FormatJavaScript, FormatGo, FormatGeneric}

// ParseFormat converts a string to a Format, falling back to generic.
func ParseFormat(s string) Format {
	switch s {
	case "python", "py":
		return FormatPython
	case "java", "jvm":
		return FormatJava
	case "javascript", "js", "node":
		return FormatJavaScript
	case "go", "golang":
		return FormatGo
	default:
		return FormatGeneric
	}
}

var (
	pythonHeaderRegex = regexp.MustCompile(`(?m)^Traceback \(most recent call last\):`)
	// Java frame lines carry file:line inside parens with no column part.
	javaTraceRegex = regexp.MustCompile(`(?m)^[^\n]*(?:Exception|Error)[^\n]*\n(?:[ \t]+at [\w$.<>/]+\([^):]*(?::\d+)?\))`)
	// JS frame lines carry file:line:col, optionally wrapped in parens.
	jsTraceRegex = regexp.MustCompile(`(?m)^[^\n]*Error[^\n]*\n(?:[ \t]+at [^\n]*:\d+:\d+\)?)`)
	goPanicRegex = regexp.MustCompile(`(?m)^panic: [^\n]+\n(?:[^\n]*\n)*?goroutine \d+ \[`)
)

// Detect inspects a raw text block and selects the parsing strategy.
// Unrecognized input always resolves to FormatGeneric; Detect never fails.
func Detect(sample string) Format {
	switch {
	case pythonHeaderRegex.MatchString(sample):
		return FormatPython
	case javaTraceRegex.MatchString(sample):
		return FormatJava
	case jsTraceRegex.MatchString(sample):
		return FormatJavaScript
	case goPanicRegex.MatchString(sample):
		return FormatGo
	default:
		return FormatGeneric
	}
}
