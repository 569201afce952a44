package rewrite

import (
	"reflect"
	"testing"
)

func TestBuildConstraints(t *testing.T) {
	tests := []struct {
		name        string
		objective   Objective
		contentType ContentType
		want        []string
	}{
		{
			name:        "precision text has only the objective items",
			objective:   ObjectivePrecision,
			contentType: ContentText,
			want: []string{
				"Cite specific facts and figures where relevant",
				"Avoid vague or ambiguous phrasing",
				"State assumptions explicitly",
			},
		},
		{
			name:        "video appends its two items after the objective items",
			objective:   ObjectiveBrevity,
			contentType: ContentVideo,
			want: []string{
				"Keep the response under three short paragraphs",
				"No filler phrases or repetition",
				"Lead with the conclusion",
				"Include scene markers with approximate timestamps",
				"Keep each scene under thirty seconds of narration",
			},
		},
		{
			name:        "presentation extras",
			objective:   ObjectiveSafety,
			contentType: ContentPresentation,
			want: []string{
				"Do not include harmful or dangerous instructions",
				"Flag uncertain claims as uncertain",
				"Use neutral, inclusive language",
				"One idea per slide",
				"No more than five bullets per slide",
			},
		},
		{
			name:        "image adds nothing",
			objective:   ObjectiveSpeed,
			contentType: ContentImage,
			want: []string{
				"Answer the core question in the first sentence",
				"Skip background unless essential",
				"Prefer bullet points over prose",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildConstraints(tt.objective, tt.contentType)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildConstraints(%s, %s) = %q, want %q", tt.objective, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestBuildExamples(t *testing.T) {
	tests := []struct {
		name      string
		intent    Intent
		requested bool
		objective Objective
		wantLen   int
		wantNil   bool
	}{
		{"precision triggers without a request", IntentSummarization, false, ObjectivePrecision, 2, false},
		{"request triggers without precision", IntentSummarization, true, ObjectiveBrevity, 2, false},
		{"no trigger means nil", IntentSummarization, false, ObjectiveBrevity, 0, true},
		{"unmapped intent stays nil even when requested", IntentGeneralTask, true, ObjectivePrecision, 0, true},
		{"code generation is mapped", IntentCodeGeneration, false, ObjectivePrecision, 2, false},
		{"translation is not mapped", IntentTranslation, true, ObjectiveSpeed, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildExamples(tt.intent, tt.requested, tt.objective)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("buildExamples(%s, %v, %s) = %q, want nil", tt.intent, tt.requested, tt.objective, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("buildExamples(%s, %v, %s) = nil, want %d entries", tt.intent, tt.requested, tt.objective, tt.wantLen)
			}
			if len(got) != tt.wantLen {
				t.Errorf("buildExamples(%s, %v, %s) returned %d entries, want %d", tt.intent, tt.requested, tt.objective, len(got), tt.wantLen)
			}
		})
	}
}

func TestWantsExamples(t *testing.T) {
	tests := []struct {
		prompt string
		want   bool
	}{
		{"show me an example", true},
		{"a SAMPLE would help", true},
		{"give one instance of this", true},
		{"no trigger here", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := wantsExamples(tt.prompt); got != tt.want {
			t.Errorf("wantsExamples(%q) = %v, want %v", tt.prompt, got, tt.want)
		}
	}
}
