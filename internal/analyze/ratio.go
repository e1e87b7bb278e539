package analyze

// matchRatio computes the Ratcliff/Obershelp similarity between two strings:
// 2 * matched / (len(a) + len(b)), in [0, 1]. Matched characters are found
// by locating the longest common substring and recursing on the pieces to
// its left and right.
func matchRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := matchingChars(a, b)
	return 2 * float64(matched) / float64(len(a)+len(b))
}

func matchingChars(a, b string) int {
	ai, bi, n := longestCommonSubstring(a, b)
	if n == 0 {
		return 0
	}
	return n + matchingChars(a[:ai], b[:bi]) + matchingChars(a[ai+n:], b[bi+n:])
}

// longestCommonSubstring returns the start offsets and length of the longest
// run of bytes common to a and b. Ties go to the earliest block in a.
func longestCommonSubstring(a, b string) (ai, bi, n int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] != b[j-1] {
				cur[j] = 0
				continue
			}
			cur[j] = prev[j-1] + 1
			if cur[j] > n {
				n = cur[j]
				ai = i - n
				bi = j - n
			}
		}
		prev, cur = cur, prev
		clear(cur)
	}
	return ai, bi, n
}
