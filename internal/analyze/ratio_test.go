package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "identical strings", a: "abcdef", b: "abcdef", expected: 1},
		{name: "both empty", a: "", b: "", expected: 1},
		{name: "one empty", a: "abc", b: "", expected: 0},
		{name: "disjoint", a: "abc", b: "xyz", expected: 0},
		// 2 * 6 / (9 + 7): "abcd" plus "ef" match between "abcdzzzef" and "abcdyef"
		{name: "partial overlap", a: "abcdzzzef", b: "abcdyef", expected: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matchRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMatchRatio_Bounds(t *testing.T) {
	inputs := []struct{ a, b string }{
		{"handler.process", "handler.retry"},
		{"x", "xxxxxxxxxxxxxxxx"},
		{"connection timed out after 30s", "connection timed out after 60s"},
	}
	for _, in := range inputs {
		r := matchRatio(in.a, in.b)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		// symmetric
		assert.InDelta(t, r, matchRatio(in.b, in.a), 1e-9)
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	ai, bi, n := longestCommonSubstring("xxhelloyy", "zzhellow")
	assert.Equal(t, 2, ai)
	assert.Equal(t, 2, bi)
	assert.Equal(t, 5, n) // "hello"

	_, _, n = longestCommonSubstring("abc", "xyz")
	assert.Equal(t, 0, n)
}
