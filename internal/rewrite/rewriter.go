// Package rewrite turns a free-form prompt into a structured, directive-rich
// version. The pipeline is deterministic keyword matching and string
// assembly: classify the intent, swap key verbs for objective-flavored
// phrasing, append directive sentences, attach constraints and examples, and
// score the outcome with fixed heuristics. It performs no I/O, keeps no
// state, and never fails on any input string.
package rewrite

import (
	"strings"
	"unicode/utf8"
)

// Metadata carries the numeric measurements attached to a result.
type Metadata struct {
	OriginalLength  int `json:"originalLength"`  // rune count of the raw prompt
	RewrittenLength int `json:"rewrittenLength"` // rune count of the rewritten prompt
	ComplexityScore int `json:"complexityScore"` // 0-100
	ClarityScore    int `json:"clarityScore"`    // 0-100
}

// Result is the immutable outcome of one rewrite. It serializes losslessly
// to JSON; Examples disappears from the JSON form when no examples apply.
type Result struct {
	Intent          Intent     `json:"intent"`
	RewrittenPrompt string     `json:"rewrittenPrompt"`
	Parameters      Parameters `json:"parameters"`
	Constraints     []string   `json:"constraints"`
	Examples        []string   `json:"examples,omitempty"`
	Metadata        Metadata   `json:"metadata"`
}

// Optimize rewrites a raw prompt under the given options. It is total: any
// string and any options value, including zero values and enum values
// outside the documented sets, produce a well-formed Result. Two calls with
// equal inputs return equal results.
func Optimize(rawPrompt string, opts Options) Result {
	opts = opts.resolve()

	intent := ClassifyIntent(rawPrompt)

	segments := []string{"You are a " + strings.ToLower(opts.Role) + "."}
	if instruction := strings.TrimSpace(rewriteInstruction(rawPrompt, opts.Objective)); instruction != "" {
		segments = append(segments, ensureTerminated(instruction))
	}
	segments = append(segments, assembleDirectives(opts)...)
	rewritten := strings.Join(segments, " ")

	return Result{
		Intent:          intent,
		RewrittenPrompt: rewritten,
		Parameters: Parameters{
			Role:           opts.Role,
			Objective:      opts.Objective,
			ReasoningLevel: opts.ReasoningLevel,
			Language:       opts.Language,
			ContentType:    opts.ContentType,
			Format:         detectFormat(rawPrompt),
		},
		Constraints: buildConstraints(opts.Objective, opts.ContentType),
		Examples:    buildExamples(intent, wantsExamples(rawPrompt), opts.Objective),
		Metadata: Metadata{
			OriginalLength:  utf8.RuneCountInString(rawPrompt),
			RewrittenLength: utf8.RuneCountInString(rewritten),
			ComplexityScore: scoreComplexity(rewritten),
			ClarityScore:    scoreClarity(rewritten),
		},
	}
}

// ensureTerminated closes an instruction with a period when it does not
// already end in terminal punctuation, so the directives that follow read as
// separate sentences.
func ensureTerminated(s string) string {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}
