package rewrite

import "strings"

// Directive sentences are appended after the rewritten instruction in a fixed
// order: format, language, reasoning, objective.

var formatDirectives = map[ContentType]string{
	ContentText:         "Provide a clear, well-structured text response.",
	ContentVideo:        "Structure the response as a video script with scene directions and narration cues.",
	ContentImage:        "Describe the desired image in precise visual detail, including style, composition, and lighting.",
	ContentAudio:        "Write the response as a natural-sounding audio narration script.",
	ContentPresentation: "Organize the response as a slide deck outline with a title and bullet points per slide.",
}

// briefTextDirective replaces the text directive when the objective is
// brevity.
const briefTextDirective = "Provide a short, direct text response."

var reasoningDirectives = map[ReasoningLevel]string{
	ReasoningHigh:   "Think through the problem step by step before giving the final answer.",
	ReasoningMedium: "Briefly explain the reasoning behind the response.",
	// low adds nothing
}

var objectiveDirectives = map[Objective]string{
	ObjectivePrecision:  "Prioritize factual accuracy over speed or style.",
	ObjectiveBrevity:    "Keep the response as short as it can be without losing meaning.",
	ObjectiveCreativity: "Favor original ideas and vivid language over convention.",
	ObjectiveSafety:     "Avoid harmful, speculative, or biased content.",
	ObjectiveSpeed:      "Give the most direct useful answer first.",
}

// languageNames maps a locale tag's primary subtag to the English name used
// in the language directive. en is listed for the locale collaborators; the
// directive itself is skipped for en-prefixed tags before this table is
// consulted.
var languageNames = map[string]string{
	"en": "English", "es": "Spanish", "fr": "French", "de": "German",
	"it": "Italian", "pt": "Portuguese", "nl": "Dutch", "sv": "Swedish",
	"no": "Norwegian", "da": "Danish", "fi": "Finnish", "pl": "Polish",
	"cs": "Czech", "sk": "Slovak", "hu": "Hungarian", "ro": "Romanian",
	"bg": "Bulgarian", "el": "Greek", "ru": "Russian", "uk": "Ukrainian",
	"tr": "Turkish", "ar": "Arabic", "he": "Hebrew", "fa": "Persian",
	"hi": "Hindi", "bn": "Bengali", "ur": "Urdu", "th": "Thai",
	"vi": "Vietnamese", "id": "Indonesian", "ms": "Malay", "zh": "Chinese",
	"ja": "Japanese", "ko": "Korean", "sw": "Swahili", "fil": "Filipino",
}

// unresolvedLanguageDirective is used for non-English tags the table does not
// cover. The directive degrades to a generic form instead of being dropped,
// so the caller's language choice is never silently ignored.
const unresolvedLanguageDirective = "Respond in the specified language."

// LanguageName resolves a locale tag such as "pt-BR" to the English name of
// its language. The second return reports whether the tag was recognized.
func LanguageName(tag string) (string, bool) {
	primary := strings.ToLower(tag)
	if i := strings.Index(primary, "-"); i >= 0 {
		primary = primary[:i]
	}
	name, ok := languageNames[primary]
	return name, ok
}

// assembleDirectives builds the trailing sentences for a resolved option set.
func assembleDirectives(opts Options) []string {
	out := make([]string, 0, 4)

	if opts.ContentType == ContentText && opts.Objective == ObjectiveBrevity {
		out = append(out, briefTextDirective)
	} else {
		out = append(out, formatDirectives[opts.ContentType])
	}

	if !strings.HasPrefix(strings.ToLower(opts.Language), "en") {
		if name, ok := LanguageName(opts.Language); ok {
			out = append(out, "Respond in "+name+".")
		} else {
			out = append(out, unresolvedLanguageDirective)
		}
	}

	if directive, ok := reasoningDirectives[opts.ReasoningLevel]; ok {
		out = append(out, directive)
	}

	return append(out, objectiveDirectives[opts.Objective])
}
