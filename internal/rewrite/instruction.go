package rewrite

import "regexp"

// substitution swaps one verb for an objective-flavored phrase. The pattern
// is compiled once at package init as a case-insensitive whole-word match, so
// "summarize" never fires inside "summarized".
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func sub(word, replacement string) substitution {
	return substitution{
		pattern:     regexp.MustCompile(`(?i)\b` + word + `\b`),
		replacement: replacement,
	}
}

// substitutions keyed by objective, applied in slice order over the whole
// string. Slices rather than maps: the application order is part of the
// contract.
var substitutions = map[Objective][]substitution{
	ObjectivePrecision: {
		sub("summarize", "create a precise summary of"),
		sub("explain", "provide a detailed explanation of"),
		sub("describe", "give a comprehensive description of"),
		sub("write", "carefully compose"),
		sub("analyze", "conduct a thorough analysis of"),
		sub("list", "enumerate precisely"),
	},
	ObjectiveBrevity: {
		sub("summarize", "briefly summarize"),
		sub("explain", "concisely explain"),
		sub("describe", "briefly describe"),
		sub("write", "briefly write"),
		sub("analyze", "briefly analyze"),
		sub("list", "concisely list"),
	},
	ObjectiveCreativity: {
		sub("write", "creatively craft"),
		sub("create", "dream up"),
		sub("describe", "paint a vivid picture of"),
		sub("explain", "tell the story of"),
		sub("design", "envision"),
	},
	ObjectiveSafety: {
		sub("write", "responsibly write"),
		sub("explain", "carefully explain"),
		sub("describe", "objectively describe"),
		sub("analyze", "cautiously analyze"),
	},
	ObjectiveSpeed: {
		sub("summarize", "quickly summarize"),
		sub("explain", "quickly explain"),
		sub("write", "quickly draft"),
		sub("analyze", "rapidly assess"),
		sub("describe", "briefly outline"),
	},
}

// rewriteInstruction applies the objective's whole-word substitutions to the
// raw prompt. This is heuristic text surgery, not parsing: matched verbs are
// swapped for a fuller phrase and everything else passes through untouched.
func rewriteInstruction(original string, objective Objective) string {
	out := original
	for _, s := range substitutions[objective] {
		out = s.pattern.ReplaceAllString(out, s.replacement)
	}
	return out
}
