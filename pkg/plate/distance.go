package plate

import "strings"

//EditDistance returns the Levenshtein distance between given strings, ignoring case.
//Insertion, deletion and substitution all cost 1. Computed iteratively with two rolling rows.
func EditDistance(s1, s2 string) int {
	s1 = strings.ToUpper(s1)
	s2 = strings.ToUpper(s2)

	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}

	if len(s2) == 0 {
		return len(s1)
	}

	previousRow := make([]int, len(s2)+1)
	currentRow := make([]int, len(s2)+1)
	for j := range previousRow {
		previousRow[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		currentRow[0] = i
		for j := 1; j <= len(s2); j++ {
			insertions := previousRow[j] + 1
			deletions := currentRow[j-1] + 1
			substitutions := previousRow[j-1]
			if s1[i-1] != s2[j-1] {
				substitutions++
			}

			currentRow[j] = minOf(insertions, deletions, substitutions)
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(s2)]
}

func minOf(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
