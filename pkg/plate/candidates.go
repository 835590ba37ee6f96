package plate

import "math"

//DefaultMaxCandidates is the expansion cap applied when no explicit limit is configured
const DefaultMaxCandidates = 1000

//maxCandidateProduct saturates the per-position product. Raw OCR strings can be
//arbitrarily long, so the product must not be allowed to overflow past any sane cap
const maxCandidateProduct = math.MaxInt32

//confusableAlternatives maps a character to the set of characters an OCR engine commonly
//mistakes it for, itself included. Characters without an entry map to themselves only.
var confusableAlternatives = map[byte][]byte{
	'O': {'D', '0', 'O'},
	'I': {'1', 'I'},
	'J': {'3', 'J'},
	'A': {'4', 'A'},
	'G': {'6', 'G'},
	'S': {'5', 'S'},
	'B': {'8', 'B'},
	'Z': {'2', 'Z'},
	'0': {'D', '0', 'O'},
	'1': {'1', 'I', 'l'},
	'3': {'3', 'J'},
	'4': {'4', 'A'},
	'6': {'6', 'G'},
	'5': {'5', 'S'},
	'8': {'8', 'B'},
	'2': {'2', 'Z'},
	'D': {'O', 'D'},
	'T': {'T', '1'},
	'N': {'N'},
	'K': {'K'},
	'R': {'R'},
	'V': {'V'},
}

//alternativesFor returns the confusable set for given character, falling back to the
//character itself when it has no table entry
func alternativesFor(c byte) []byte {
	if alts, ok := confusableAlternatives[c]; ok {
		return alts
	}

	return []byte{c}
}

//CandidateCount returns the number of candidates Candidates would yield for given raw
//text: the product of per-position alternative-set sizes, saturated at
//maxCandidateProduct so it stays positive for arbitrarily long inputs
func CandidateCount(raw string) int {
	count := 1
	for i := 0; i < len(raw); i++ {
		size := len(alternativesFor(raw[i]))
		if count > maxCandidateProduct/size {
			return maxCandidateProduct
		}

		count *= size
	}

	return count
}

//Candidates enumerates every same-length string formed by picking one alternative per
//position of given raw text (Cartesian product, rightmost position varies fastest).
//It stops early once 'yield' returns false.
func Candidates(raw string, yield func(candidate string) bool) {
	if len(raw) == 0 {
		yield("")
		return
	}

	alternatives := make([][]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		alternatives[i] = alternativesFor(raw[i])
	}

	indexes := make([]int, len(raw))
	current := make([]byte, len(raw))

	for {
		for i := range current {
			current[i] = alternatives[i][indexes[i]]
		}

		if !yield(string(current)) {
			return
		}

		//advance the odometer, rightmost position first
		pos := len(indexes) - 1
		for pos >= 0 {
			indexes[pos]++
			if indexes[pos] < len(alternatives[pos]) {
				break
			}

			indexes[pos] = 0
			pos--
		}

		if pos < 0 { //wrapped around, all combinations yielded
			return
		}
	}
}

//Correct expands given raw OCR text into it's confusable candidates and returns the one
//closest (by edit distance) to the raw text among those matching the strict grammar.
//If no candidate matches, or the expansion would exceed maxCandidates, the raw text is
//returned unchanged
func Correct(raw string, maxCandidates int) string {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}

	if CandidateCount(raw) > maxCandidates {
		return raw
	}

	best := ""
	bestDistance := -1

	Candidates(raw, func(candidate string) bool {
		if !CheckFormatStrict(candidate) {
			return true
		}

		if d := EditDistance(raw, candidate); bestDistance == -1 || d < bestDistance {
			best = candidate
			bestDistance = d
		}

		return true
	})

	if bestDistance == -1 {
		return raw
	}

	return best
}
