package rewrite

import "strings"

// Intent is the closed set of task labels the classifier can produce.
type Intent string

const (
	IntentSummarization   Intent = "Summarization"
	IntentTranslation     Intent = "Translation"
	IntentExplanation     Intent = "Explanation"
	IntentCodeGeneration  Intent = "Code Generation"
	IntentCodeDebugging   Intent = "Code Debugging"
	IntentAnalysis        Intent = "Analysis"
	IntentContentCreation Intent = "Content Creation"
	IntentPlanning        Intent = "Planning"
	IntentDataExtraction  Intent = "Data Extraction"
	IntentComparison      Intent = "Comparison"
	IntentGeneralTask     Intent = "General Task"
)

// intentRules are scanned top to bottom and the first substring found in the
// lower-cased prompt decides the label. The order carries meaning: "summar"
// sits above "analy" so a prompt like "summarize and analyze" resolves to
// Summarization, and "explain" sits above "plan" so it cannot reach Planning
// through its embedded "plan".
var intentRules = []struct {
	keyword string
	label   Intent
}{
	{"summar", IntentSummarization},
	{"tl;dr", IntentSummarization},
	{"translat", IntentTranslation},
	{"debug", IntentCodeDebugging},
	{"fix this", IntentCodeDebugging},
	{"error", IntentCodeDebugging},
	{"not working", IntentCodeDebugging},
	{"explain", IntentExplanation},
	{"what is", IntentExplanation},
	{"what are", IntentExplanation},
	{"how does", IntentExplanation},
	{"why does", IntentExplanation},
	{"implement", IntentCodeGeneration},
	{"write a function", IntentCodeGeneration},
	{"write code", IntentCodeGeneration},
	{"code", IntentCodeGeneration},
	{"function", IntentCodeGeneration},
	{"script", IntentCodeGeneration},
	{"algorithm", IntentCodeGeneration},
	{"analy", IntentAnalysis},
	{"evaluate", IntentAnalysis},
	{"assess", IntentAnalysis},
	{"compar", IntentComparison},
	{"versus", IntentComparison},
	{"difference between", IntentComparison},
	{"extract", IntentDataExtraction},
	{"parse", IntentDataExtraction},
	{"list all", IntentDataExtraction},
	{"plan", IntentPlanning},
	{"schedule", IntentPlanning},
	{"roadmap", IntentPlanning},
	{"strategy", IntentPlanning},
	{"write", IntentContentCreation},
	{"draft", IntentContentCreation},
	{"compose", IntentContentCreation},
	{"story", IntentContentCreation},
	{"poem", IntentContentCreation},
	{"article", IntentContentCreation},
	{"blog", IntentContentCreation},
	{"email", IntentContentCreation},
}

// ClassifyIntent labels a raw prompt with the task it appears to ask for.
// It always returns a label; prompts matching no rule are a General Task.
func ClassifyIntent(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.label
		}
	}
	return IntentGeneralTask
}

// detectFormat scans the raw prompt for an explicitly requested output shape.
func detectFormat(text string) Format {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "json"):
		return FormatJSON
	case strings.Contains(lower, "markdown"):
		return FormatMarkdown
	case strings.Contains(lower, "bullet"):
		return FormatBulletPoints
	default:
		return FormatText
	}
}
