package lexer

import "testing"

func TestXIDClasses(t *testing.T) {
	tests := []struct {
		r             rune
		start, contin bool
	}{
		{'\u00C5', true, true},
		{'\u00B7', false, true},  // Other_ID_Continue
		{'\u0301', false, true},  // Mn
		{'\u0663', false, true},  // Nd
		{'\u2118', true, true},   // Other_ID_Start
		{'\u037A', false, false}, // NFKC: пробел + iota
		{'\u0E33', false, true},  // NFKC раскладывает на continue + start
		{'\uFF9E', false, true},
		{'\uFC5E', false, false},
		{'\u2E2F', false, false}, // Lm, но Pattern_Syntax
		{'\u00A0', false, false},
		{'\u2028', false, false},
	}
	for _, tt := range tests {
		if got := isIdentStartRune(tt.r); got != tt.start {
			t.Errorf("isIdentStartRune(%U) = %v, want %v", tt.r, got, tt.start)
		}
		if got := isIdentContinueRune(tt.r); got != tt.contin {
			t.Errorf("isIdentContinueRune(%U) = %v, want %v", tt.r, got, tt.contin)
		}
	}
}
