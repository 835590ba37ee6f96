package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFormatStrict(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"two letters four digits", "34AB1234", true},
		{"one letter two digits", "06A12", true},
		{"three letters three digits", "07ABC123", true},
		{"empty", "", false},
		{"letters first", "AB341234", false},
		{"no letters", "341234", false},
		{"four letters", "34ABCD123", false},
		{"one trailing digit", "34ABC1", false},
		{"five trailing digits", "34A12345", false},
		{"lowercase letters", "34abc123", false},
		{"embedded space", "34 ABC123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CheckFormatStrict(tt.text))
		})
	}
}

func TestCheckFormatFlexible(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"remainder 5 one letter", "34A1234", true},
		{"remainder 5 two letters", "34AB123", true},
		{"remainder 5 three letters", "34ABC12", true},
		{"remainder 6 two letters", "34AB1234", true},
		{"remainder 6 three letters", "34ABC123", true},
		{"remainder 7 three letters", "34ABC1234", true},
		{"remainder 7 two letters", "34AB12345", false},
		{"remainder 6 one letter", "34A12345", false},
		{"remainder 4", "34AB12", false},
		{"remainder 8", "34ABC12345", false},
		{"letters first", "AB34123", false},
		{"empty", "", false},
		{"single char", "3", false},
		{"spaces stripped before checking", "34 ABC 123", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CheckFormatFlexible(tt.text))
		})
	}
}

func TestNormalizeLeadingDigits(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"confusable O in first position", "O7ABC123", "07ABC123"},
		{"confusables in both leading positions", "OSABC123", "05ABC123"},
		{"letters past position two untouched", "34OIJAGS", "34OIJAGS"},
		{"upper-cases and strips spaces", "o7 abc 123", "07ABC123"},
		{"already clean", "34ABC123", "34ABC123"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLeadingDigits(tt.text))
		})
	}
}

//format checks are pure, running them twice on the same input must match
func TestFormatChecksAreIdempotent(t *testing.T) {
	for _, text := range []string{"34ABC123", "O7ABC123", "", "garbage"} {
		assert.Equal(t, CheckFormatStrict(text), CheckFormatStrict(text))
		assert.Equal(t, CheckFormatFlexible(text), CheckFormatFlexible(text))
		assert.Equal(t, NormalizeLeadingDigits(text), NormalizeLeadingDigits(text))
	}
}

//full correction path for a single noisy reading: leading remap, candidate expansion,
//strict validation, then the flexible acceptance check
func TestEndToEndCorrection(t *testing.T) {
	raw := "O7ABC123"

	normalized := NormalizeLeadingDigits(raw)
	assert.Equal(t, "07ABC123", normalized)

	corrected := Correct(normalized, 0)
	assert.Equal(t, "07ABC123", corrected)

	assert.True(t, CheckFormatStrict(corrected))
	assert.True(t, CheckFormatFlexible(corrected))
}
