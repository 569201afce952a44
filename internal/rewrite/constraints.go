package rewrite

import "strings"

// objectiveConstraints lists the rules attached for each objective, in
// display order.
var objectiveConstraints = map[Objective][]string{
	ObjectivePrecision: {
		"Cite specific facts and figures where relevant",
		"Avoid vague or ambiguous phrasing",
		"State assumptions explicitly",
	},
	ObjectiveBrevity: {
		"Keep the response under three short paragraphs",
		"No filler phrases or repetition",
		"Lead with the conclusion",
	},
	ObjectiveCreativity: {
		"Avoid clichés and stock phrasing",
		"Offer at least one unexpected angle",
		"Vary sentence rhythm and structure",
	},
	ObjectiveSafety: {
		"Do not include harmful or dangerous instructions",
		"Flag uncertain claims as uncertain",
		"Use neutral, inclusive language",
	},
	ObjectiveSpeed: {
		"Answer the core question in the first sentence",
		"Skip background unless essential",
		"Prefer bullet points over prose",
	},
}

// contentConstraints carries the extra rules for content types that need
// them. Only video and presentation contribute; the rest add nothing.
var contentConstraints = map[ContentType][]string{
	ContentVideo: {
		"Include scene markers with approximate timestamps",
		"Keep each scene under thirty seconds of narration",
	},
	ContentPresentation: {
		"One idea per slide",
		"No more than five bullets per slide",
	},
}

// buildConstraints concatenates the objective list with the content-type
// list. Order is fixed and duplicates, if the tables ever held any, would be
// kept as-is.
func buildConstraints(objective Objective, contentType ContentType) []string {
	out := make([]string, 0, len(objectiveConstraints[objective])+len(contentConstraints[contentType]))
	out = append(out, objectiveConstraints[objective]...)
	return append(out, contentConstraints[contentType]...)
}

// intentExamples holds illustrative input/output pairs for the intents that
// benefit from them. Intents absent here never produce examples.
var intentExamples = map[Intent][]string{
	IntentSummarization: {
		"Input: a 2,000-word market report. Output: five bullet points covering findings, risks, and outlook.",
		"Input: a research abstract. Output: a two-sentence plain-language summary.",
	},
	IntentCodeGeneration: {
		"Input: 'a function that deduplicates a slice'. Output: the function, a doc comment, and one usage example.",
		"Input: 'validate an email address'. Output: the implementation plus representative test cases.",
	},
	IntentAnalysis: {
		"Input: quarterly sales figures. Output: three observed trends, each backed by a number.",
		"Input: two competing designs. Output: a strengths and weaknesses breakdown with a recommendation.",
	},
	IntentContentCreation: {
		"Input: 'announcement for a product launch'. Output: a headline, a lead paragraph, and a call to action.",
		"Input: 'welcome email for new users'. Output: a subject line plus a three-paragraph body.",
	},
}

// wantsExamples reports whether the raw prompt asks to see examples.
func wantsExamples(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "example") ||
		strings.Contains(lower, "sample") ||
		strings.Contains(lower, "instance")
}

// buildExamples returns the example list for an intent, or nil. Examples are
// attached only when the prompt asked for them or the objective is precision,
// and only for intents the table covers. nil keeps the field out of the JSON
// form entirely; an empty non-nil slice is never produced.
func buildExamples(intent Intent, requested bool, objective Objective) []string {
	if !requested && objective != ObjectivePrecision {
		return nil
	}
	examples, ok := intentExamples[intent]
	if !ok {
		return nil
	}
	out := make([]string, len(examples))
	copy(out, examples)
	return out
}
