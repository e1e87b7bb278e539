package parse

import (
	"regexp"
	"strings"
	"time"
)

// timestampCandidate pairs a locator regex with the layouts tried against
// the matched text, in order. Layouts with a zone are retried against the
// plain layout when zone normalization fails.
type timestampCandidate struct {
	regex   *regexp.Regexp
	layouts []string
}

var timestampCandidates = []timestampCandidate{
	// ISO-8601, with optional fractional seconds and zone
	{
		regex: regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`),
		layouts: []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02T15:04:05.999999",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05.999999-07:00",
			"2006-01-02 15:04:05.999999-0700",
			"2006-01-02 15:04:05-0700",
			"2006-01-02 15:04:05.999999",
			"2006-01-02 15:04:05",
		},
	},
	// syslog style: "Jan  2 15:04:05"
	{
		regex:   regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{1,2} \d{2}:\d{2}:\d{2}`),
		layouts: []string{"Jan _2 15:04:05", "Jan 2 15:04:05"},
	},
	// access-log style: "02/Jan/2006:15:04:05 -0700"
	{
		regex:   regexp.MustCompile(`\d{2}/[A-Z][a-z]{2}/\d{4}:\d{2}:\d{2}:\d{2}(?: [+-]\d{4})?`),
		layouts: []string{"02/Jan/2006:15:04:05 -0700", "02/Jan/2006:15:04:05"},
	},
}

// ExtractTimestamp best-effort locates and parses a timestamp within an
// error block. It tries each candidate grammar in order and returns the
// first successful parse. A zero time means no timestamp was found; callers
// must treat that as a valid outcome, never defaulting to now or epoch.
func ExtractTimestamp(text string) time.Time {
	for _, cand := range timestampCandidates {
		match := cand.regex.FindString(text)
		if match == "" {
			continue
		}
		for _, layout := range cand.layouts {
			if t, err := time.Parse(layout, match); err == nil {
				return t
			}
		}
		// Zone normalization failed; retry without the trailing zone
		// before giving up on this candidate.
		if plain := stripZoneSuffix(match); plain != match {
			for _, layout := range cand.layouts {
				if t, err := time.Parse(layout, plain); err == nil {
					return t
				}
			}
		}
	}
	return time.Time{}
}

var zoneSuffixRegex = regexp.MustCompile(`(?:Z|\s?[+-]\d{2}:?\d{2}|\s[+-]\d{4})$`)

func stripZoneSuffix(s string) string {
	return strings.TrimSpace(zoneSuffixRegex.ReplaceAllString(s, ""))
}
