package cli

import (
	"fmt"

	"github.com/vburojevic/stacksift/internal/output"
	"github.com/vburojevic/stacksift/internal/parse"
)

// FormatsCmd lists the supported stack-trace formats with a sample header
// line for each, in detection priority order.
type FormatsCmd struct{}

var formatSamples = map[parse.Format]string{
	parse.FormatPython:     `Traceback (most recent call last):`,
	parse.FormatJava:       `java.lang.NullPointerException: ... followed by "at Class.method(File.java:42)"`,
	parse.FormatJavaScript: `TypeError: ... followed by "at fn (file.js:10:5)"`,
	parse.FormatGo:         `panic: ... followed by "goroutine 1 [running]:"`,
	parse.FormatGeneric:    `any other text (fallback, always matches)`,
}

// Run executes the formats command
func (c *FormatsCmd) Run(globals *Globals) error {
	infos := make([]output.FormatInfo, 0, len(parse.Formats))
	for _, f := range parse.Formats {
		infos = append(infos, output.FormatInfo{Name: string(f), Sample: formatSamples[f]})
	}

	if globals.Format != "text" {
		return output.NewJSONWriter(globals.Stdout).WriteFormats(infos)
	}

	fmt.Fprintln(globals.Stdout, "Supported formats (detection priority order):")
	for _, info := range infos {
		fmt.Fprintf(globals.Stdout, "  %-12s %s\n", info.Name, info.Sample)
	}
	return nil
}
