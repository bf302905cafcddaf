// Package match provides the fuzzy string scoring primitive used to route
// user input through the dialogue graph.
package match

import "strings"

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions, or substitutions
// needed to transform one into the other.
//
// Both inputs are upper-cased before comparison, so the distance is
// case-insensitive. The function is total and pure; it is safe to call
// concurrently.
func Distance(a, b string) int {
	s1 := []rune(strings.ToUpper(a))
	s2 := []rune(strings.ToUpper(b))

	m, n := len(s1), len(s2)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Rolling cost row: only the previous row's values are needed, carried
	// through costs[j+1] (upper) and corner (upper-left).
	costs := make([]int, n+1)
	for k := 0; k <= n; k++ {
		costs[k] = k
	}

	for i, r1 := range s1 {
		costs[0] = i + 1
		corner := i

		for j, r2 := range s2 {
			upper := costs[j+1]
			if r1 == r2 {
				costs[j+1] = corner
			} else {
				t := upper
				if corner < t {
					t = corner
				}
				if costs[j] < t {
					t = costs[j]
				}
				costs[j+1] = t + 1
			}
			corner = upper
		}
	}

	return costs[n]
}
