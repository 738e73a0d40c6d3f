package keyword

import (
	"sort"
	"strings"
)

// matchLongest walks candidates from longest to shortest (ties keep
// their original order) and returns the first one that occurs as a
// substring of s. Longest-first guarantees "intel-19" is preferred
// over "intel" when both would match.
func matchLongest(s string, candidates []string) (string, bool) {
	ordered := append([]string(nil), candidates...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	for _, c := range ordered {
		if c != "" && strings.Contains(s, c) {
			return c, true
		}
	}
	return "", false
}
