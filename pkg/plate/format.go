package plate

import (
	"regexp"
	"strings"
)

//strictPattern is the fixed-shape plate grammar: 2 digits, 1-3 letters, 2-4 digits
var strictPattern = regexp.MustCompile(`^\d{2}[A-Z]{1,3}\d{2,4}$`)

//leadingDigitSubstitutions remaps digit-look-alike letters on the first two positions only,
//since a plate always starts with the two-digit province code
var leadingDigitSubstitutions = map[byte]byte{
	'O': '0',
	'I': '1',
	'J': '3',
	'A': '4',
	'G': '6',
	'S': '5',
}

//CheckFormatStrict returns true if given text matches the strict plate grammar
func CheckFormatStrict(text string) bool {
	return strictPattern.MatchString(text)
}

//CheckFormatFlexible returns true if given text starts with two digits and it's remainder
//(length 5-7) is a leading run of letters followed by a trailing run of digits.
//Allowed splits depend on the remainder's length only: 5 -> 1/2/3 letters, 6 -> 2/3 letters, 7 -> 3 letters.
func CheckFormatFlexible(text string) bool {
	text = strings.ReplaceAll(text, " ", "")
	if len(text) < 2 || !isDigits(text[:2]) {
		return false
	}

	rest := text[2:]
	switch len(rest) {
	case 5:
		return splitsLettersDigits(rest, 1) || splitsLettersDigits(rest, 2) || splitsLettersDigits(rest, 3)
	case 6:
		return splitsLettersDigits(rest, 2) || splitsLettersDigits(rest, 3)
	case 7:
		return splitsLettersDigits(rest, 3)
	default:
		return false
	}
}

//NormalizeLeadingDigits upper-cases given raw OCR text, strips spaces and remaps the
//first two characters through the digit-look-alike table
func NormalizeLeadingDigits(text string) string {
	text = strings.ToUpper(strings.ReplaceAll(text, " ", ""))

	corrected := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		if sub, ok := leadingDigitSubstitutions[text[i]]; ok && i < 2 {
			corrected[i] = sub
		} else {
			corrected[i] = text[i]
		}
	}

	return string(corrected)
}

//splitsLettersDigits returns true if s is exactly 'letters' leading letters followed by digits only
func splitsLettersDigits(s string, letters int) bool {
	if len(s) <= letters {
		return false
	}

	return isLetters(s[:letters]) && isDigits(s[letters:])
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return len(s) > 0
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return len(s) > 0
}
