package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vburojevic/stacksift/internal/domain"
)

// UnknownErrorType is the sentinel type assigned by the generic parser when
// no error type can be extracted from the input.
const UnknownErrorType = "UnknownError"

// Parse converts one raw text block into an ErrorRecord using the parser for
// the given format. A nil result means the format's grammar did not match;
// callers fall through to the generic parser, which always succeeds on
// non-empty input.
func Parse(format Format, text, source string) *domain.ErrorRecord {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch format {
	case FormatPython:
		return parsePython(text, source)
	case FormatJava:
		return parseJava(text, source)
	case FormatJavaScript:
		return parseJavaScript(text, source)
	case FormatGo:
		return parseGo(text, source)
	default:
		return parseGeneric(text, source)
	}
}

// ParseAuto detects the format and parses, falling back to the generic
// parser so no non-empty block is ever dropped.
func ParseAuto(text, source string) *domain.ErrorRecord {
	rec := Parse(Detect(text), text, source)
	if rec == nil {
		rec = parseGeneric(text, source)
	}
	return rec
}

var (
	pythonFrameRegex   = regexp.MustCompile(`^\s+File "([^"]+)", line (\d+), in (\S+)`)
	pythonErrLineRegex = regexp.MustCompile(`^([A-Za-z_][\w.]*)(?::\s*(.*))?$`)

	javaHeaderRegex = regexp.MustCompile(`(?m)^(?:Exception in thread "[^"]*"\s*)?([\w$.]+(?:Exception|Error))(?::\s*(.*))?$`)
	javaFrameRegex  = regexp.MustCompile(`(?m)^[ \t]+at ([\w$.<>/]+)\(([^():]*?)(?::(\d+))?\)`)

	jsHeaderRegex = regexp.MustCompile(`(?m)^([\w$]*Error):\s*(.*)$`)
	jsFrameRegex  = regexp.MustCompile(`(?m)^[ \t]+at (?:([^\s(][^\n(]*?) \()?([^()\n]+?):(\d+):(\d+)\)?$`)

	goHeaderRegex = regexp.MustCompile(`(?m)^panic: (.+)$`)
	// The greedy first group pins the argument list to the last paren pair,
	// so methods like main.(*Server).handle split correctly.
	goFrameRegex = regexp.MustCompile(`(?m)^([^\s][^\n]*)\(([^()\n]*)\)\n[ \t]+([^\s:]+):(\d+)`)

	genericHeaderRegex = regexp.MustCompile(`(?m)^\s*([A-Za-z_][\w.$]*(?:Error|Exception|Failure|Fault))\s*:\s*(.+)$`)
)

// parsePython handles CPython tracebacks: a header line, File/line/in frame
// lines each optionally followed by a code snippet line, and a final
// "ErrorType: message" line.
func parsePython(text, source string) *domain.ErrorRecord {
	loc := pythonHeaderRegex.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	lines := strings.Split(text[loc[1]:], "\n")
	var frames []domain.StackFrame
	errorType := UnknownErrorType
	message := ""

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if m := pythonFrameRegex.FindStringSubmatch(line); m != nil {
			lineNum, _ := strconv.Atoi(m[2])
			frame := domain.StackFrame{
				File:     m[1],
				Line:     lineNum,
				Function: m[3],
				Module:   moduleFromPath(m[1]),
			}
			// The frame line may be followed by an indented source snippet.
			if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    ") && !pythonFrameRegex.MatchString(lines[i+1]) {
				frame.CodeSnippet = strings.TrimSpace(lines[i+1])
				i++
			}
			frames = append(frames, frame)
			continue
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, " ") {
			continue
		}
		if m := pythonErrLineRegex.FindStringSubmatch(line); m != nil {
			errorType = m[1]
			message = m[2]
			break
		}
	}

	ts := ExtractTimestamp(text)
	rec := domain.NewErrorRecord(ts, errorType, message, frames, source, text)
	return &rec
}

// parseJava handles JVM stack traces: an exception header with optional
// "Exception in thread" prefix, then "at Class.method(File.java:123)" lines.
func parseJava(text, source string) *domain.ErrorRecord {
	header := javaHeaderRegex.FindStringSubmatch(text)
	if header == nil {
		return nil
	}

	var frames []domain.StackFrame
	for _, m := range javaFrameRegex.FindAllStringSubmatch(text, -1) {
		module, function := splitQualifiedName(m[1])
		lineNum := 0
		if m[3] != "" {
			lineNum, _ = strconv.Atoi(m[3])
		}
		frames = append(frames, domain.StackFrame{
			File:     m[2],
			Line:     lineNum,
			Function: function,
			Module:   module,
		})
	}
	if len(frames) == 0 {
		return nil
	}

	ts := ExtractTimestamp(text)
	rec := domain.NewErrorRecord(ts, header[1], header[2], frames, source, text)
	return &rec
}

// parseJavaScript handles V8-style traces: "TypeError: message" followed by
// "at func (file:line:col)" or bare "at file:line:col" lines.
func parseJavaScript(text, source string) *domain.ErrorRecord {
	header := jsHeaderRegex.FindStringSubmatch(text)
	if header == nil {
		return nil
	}

	var frames []domain.StackFrame
	for _, m := range jsFrameRegex.FindAllStringSubmatch(text, -1) {
		lineNum, _ := strconv.Atoi(m[3])
		frames = append(frames, domain.StackFrame{
			File:     m[2],
			Line:     lineNum,
			Function: m[1],
			Module:   moduleFromPath(m[2]),
		})
	}
	if len(frames) == 0 {
		return nil
	}

	ts := ExtractTimestamp(text)
	rec := domain.NewErrorRecord(ts, header[1], header[2], frames, source, text)
	return &rec
}

// parseGo handles runtime panics: a "panic:" header, a goroutine header,
// then function/location line pairs.
func parseGo(text, source string) *domain.ErrorRecord {
	header := goHeaderRegex.FindStringSubmatch(text)
	if header == nil || !strings.Contains(text, "goroutine ") {
		return nil
	}

	var frames []domain.StackFrame
	for _, m := range goFrameRegex.FindAllStringSubmatch(text, -1) {
		fn := strings.TrimPrefix(m[1], "created by ")
		module, function := splitGoFunc(fn)
		lineNum, _ := strconv.Atoi(m[4])
		frames = append(frames, domain.StackFrame{
			File:     m[3],
			Line:     lineNum,
			Function: function,
			Module:   module,
		})
	}

	ts := ExtractTimestamp(text)
	rec := domain.NewErrorRecord(ts, "panic", header[1], frames, source, text)
	return &rec
}

// parseGeneric is the universal fallback: it extracts an error type when a
// "SomethingError: message" line is present, otherwise assigns the
// UnknownError sentinel with the first non-empty line as message. It always
// succeeds on non-empty input.
func parseGeneric(text, source string) *domain.ErrorRecord {
	errorType := UnknownErrorType
	message := ""

	if m := genericHeaderRegex.FindStringSubmatch(text); m != nil {
		errorType = m[1]
		message = m[2]
	} else {
		for _, line := range strings.Split(text, "\n") {
			if s := strings.TrimSpace(line); s != "" {
				message = s
				break
			}
		}
	}

	ts := ExtractTimestamp(text)
	rec := domain.NewErrorRecord(ts, errorType, message, nil, source, text)
	return &rec
}

// moduleFromPath derives a module name from a file path: base name without
// extension.
func moduleFromPath(path string) string {
	base := path
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// splitQualifiedName splits "com.example.Service.process" into module
// "com.example.Service" and function "process".
func splitQualifiedName(qualified string) (module, function string) {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[:i], qualified[i+1:]
	}
	return "", qualified
}

// splitGoFunc splits a Go symbol like "github.com/acme/pkg.(*Server).handle"
// into its package path and function part. The package boundary is the first
// dot after the last slash.
func splitGoFunc(symbol string) (module, function string) {
	slash := strings.LastIndex(symbol, "/")
	dot := strings.Index(symbol[slash+1:], ".")
	if dot < 0 {
		return "", symbol
	}
	dot += slash + 1
	return symbol[:dot], symbol[dot+1:]
}
