package rewrite

import (
	"strings"
	"testing"
)

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"three sentences", "One. Two! Three?", 3},
		{"no terminal punctuation counts as one", "no terminal punctuation", 1},
		{"punctuation runs collapse", "Dots... everywhere...", 2},
		{"only punctuation", "!!!", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sentenceCount(tt.text); got != tt.want {
				t.Errorf("sentenceCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreComplexity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single plain sentence", "Plain sentence.", 10},
		{"analytical verb adds fifteen", "Analyze this.", 25},
		{"case insensitive match", "EVALUATE and COMPARE.", 40},
		{"pathological input clamps", strings.Repeat("Analyze. ", 50), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreComplexity(tt.text); got != tt.want {
				t.Errorf("scoreComplexity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreClarity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty baseline", "", 80},
		{"assertive words add", "You must do this. Please hurry.", 90},
		{"hedging subtracts", "Maybe, perhaps, possibly.", 65},
		{"clamped below", strings.Repeat("maybe ", 20), 0},
		{"clamped above", strings.Repeat("You must. ", 10), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreClarity(tt.text); got != tt.want {
				t.Errorf("scoreClarity() = %d, want %d", got, tt.want)
			}
		})
	}
}
