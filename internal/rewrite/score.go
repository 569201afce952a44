package rewrite

import (
	"regexp"
	"strings"
)

var (
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	analyticalTerm = regexp.MustCompile(`(?i)\b(analyze|synthesize|evaluate|compare|contrast)\b`)
	assertiveTerm  = regexp.MustCompile(`(?i)\b(must|should|will|please)\b`)
	hedgingTerm    = regexp.MustCompile(`(?i)\b(maybe|perhaps|possibly|might)\b`)
)

// sentenceCount splits on runs of terminal punctuation and counts the
// segments that still hold text after trimming.
func sentenceCount(text string) int {
	n := 0
	for _, segment := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			n++
		}
	}
	return n
}

// scoreComplexity rates structural density: ten points per sentence plus
// fifteen per analytical verb, clamped to [0,100]. Illustrative only, not a
// correctness measure.
func scoreComplexity(text string) int {
	return clampScore(10*sentenceCount(text) + 15*len(analyticalTerm.FindAllString(text, -1)))
}

// scoreClarity starts at 80, rewards assertive wording, and docks hedging,
// clamped to [0,100].
func scoreClarity(text string) int {
	return clampScore(80 + 5*len(assertiveTerm.FindAllString(text, -1)) - 5*len(hedgingTerm.FindAllString(text, -1)))
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
