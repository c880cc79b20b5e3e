package service

import "strings"

// NameSimilarityThreshold is the normalized edit distance below which two
// template names are considered similar.
const NameSimilarityThreshold = 0.30

// Levenshtein returns the edit distance between a and b, counted in runes
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// NormalizedDistance is the case-insensitive edit distance divided by the
// rune length of the longer string. Two empty strings have distance 0.
func NormalizedDistance(a, b string) float64 {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	longest := max(len([]rune(la)), len([]rune(lb)))
	if longest == 0 {
		return 0
	}
	return float64(Levenshtein(la, lb)) / float64(longest)
}

// GroupSimilarNames clusters names greedily: each ungrouped name seeds a
// group and collects every later ungrouped name within threshold of the
// seed. Members are only compared against the seed, never each other.
// Only groups with at least two members are returned, in seed order.
func GroupSimilarNames(names []string, threshold float64) [][]string {
	grouped := make([]bool, len(names))
	var groups [][]string

	for i, seed := range names {
		if grouped[i] {
			continue
		}
		grouped[i] = true
		group := []string{seed}

		for j := i + 1; j < len(names); j++ {
			if grouped[j] {
				continue
			}
			if NormalizedDistance(seed, names[j]) < threshold {
				grouped[j] = true
				group = append(group, names[j])
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}

// ClosestName returns the candidate with the smallest normalized distance to
// name. Ties go to the earlier candidate. ok is false when candidates is empty.
func ClosestName(name string, candidates []string) (closest string, distance float64, ok bool) {
	for _, c := range candidates {
		d := NormalizedDistance(name, c)
		if !ok || d < distance {
			closest, distance, ok = c, d, true
		}
	}
	return closest, distance, ok
}
