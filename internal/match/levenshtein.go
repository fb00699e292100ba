package match

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
// Strings are compared rune by rune, so multi-byte letters count as one edit.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(len(a) * len(b)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	table := make([][]int, len(rb)+1)
	for j := range table {
		table[j] = make([]int, len(ra)+1)
		table[j][0] = j
	}

	for i := range table[0] {
		table[0][i] = i
	}

	for j := 1; j <= len(rb); j++ {
		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			table[j][i] = min(
				table[j-1][i]+1,      // deletion
				table[j][i-1]+1,      // insertion
				table[j-1][i-1]+cost, // substitution
			)
		}
	}

	return table[len(rb)][len(ra)]
}

// LevenshteinNormalized computes a normalized similarity score between 0 and 1.
// 1.0 means identical strings, 0.0 means completely different.
// The score is: 1 - (distance / max(len(a), len(b))), lengths in runes.
func LevenshteinNormalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 1.0
	}

	maxLen := max(la, lb)

	distance := Levenshtein(a, b)

	return 1.0 - float64(distance)/float64(maxLen)
}

// Similarity computes the similarity score between two names after
// normalizing them. This is the score used to rank suggestions.
func Similarity(a, b string) float64 {
	return LevenshteinNormalized(Normalize(a), Normalize(b))
}
