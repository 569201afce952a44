package web

import (
	"strings"
	"testing"

	"promptforge/internal/rewrite"
)

func TestShareCodeRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		opts   rewrite.Options
	}{
		{
			name:   "full options",
			prompt: "Summarize this article",
			opts: rewrite.Options{
				Language:       "fr-FR",
				Objective:      rewrite.ObjectiveBrevity,
				ReasoningLevel: rewrite.ReasoningHigh,
				Role:           "Patient tutor",
				ContentType:    rewrite.ContentVideo,
			},
		},
		{
			name:   "zero options",
			prompt: "",
			opts:   rewrite.Options{},
		},
		{
			name:   "unicode prompt",
			prompt: "Résumé ça, s'il te plaît / 要約してください",
			opts:   rewrite.Options{Language: "ja-JP"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code := EncodeShare(tc.prompt, tc.opts)
			if code == "" {
				t.Fatal("EncodeShare returned an empty code")
			}
			if strings.ContainsAny(code, "+/=") {
				t.Errorf("code %q is not URL-safe", code)
			}

			prompt, opts, err := DecodeShare(code)
			if err != nil {
				t.Fatalf("DecodeShare: %v", err)
			}
			if prompt != tc.prompt {
				t.Errorf("prompt round-trip: got %q, want %q", prompt, tc.prompt)
			}
			if opts != tc.opts {
				t.Errorf("options round-trip: got %+v, want %+v", opts, tc.opts)
			}
		})
	}
}

func TestDecodeShareRejectsGarbage(t *testing.T) {
	for _, code := range []string{"!!!", "not base64", "aGVsbG8"} {
		if _, _, err := DecodeShare(code); err == nil {
			t.Errorf("DecodeShare(%q) accepted invalid input", code)
		}
	}
}
