package cluster

import (
	"math"
	"strings"
)

// Cosine returns the cosine similarity of two vectors, or 0 when the
// dimensions differ or either norm is zero.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// sharedKeywords counts case-insensitive overlap between two keyword
// lists.
func sharedKeywords(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, k := range a {
		set[strings.ToLower(k)] = struct{}{}
	}
	n := 0
	for _, k := range b {
		if _, ok := set[strings.ToLower(k)]; ok {
			n++
			delete(set, strings.ToLower(k))
		}
	}
	return n
}
