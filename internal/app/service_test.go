package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"promptforge/internal/rewrite"
)

func TestDirectExecuteWritesText(t *testing.T) {
	var buf bytes.Buffer
	logger := newMemLogger()
	service := NewDirectRewriteService(logger, &buf)

	err := service.Execute("Summarize this article", rewrite.Options{Objective: rewrite.ObjectivePrecision}, false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Intent: Summarization",
		"create a precise summary of this article",
		"Constraints:",
		"Examples:",
		"Complexity: 50/100",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(logger.metrics) != 1 {
		t.Fatalf("logged %d metrics, want 1", len(logger.metrics))
	}
	if logger.metrics[0].Intent != "Summarization" || logger.metrics[0].Explored {
		t.Errorf("metric recorded wrong: %+v", logger.metrics[0])
	}
}

func TestDirectExecuteWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	service := NewDirectRewriteService(newMemLogger(), &buf)

	if err := service.Execute("Explain quantum computing", rewrite.Options{}, true); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var res rewrite.Result
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("output is not a Result: %v", err)
	}
	if res.Intent != rewrite.IntentExplanation {
		t.Errorf("intent = %q, want Explanation", res.Intent)
	}
	if !strings.Contains(buf.String(), `"rewrittenPrompt"`) {
		t.Errorf("JSON output missing camelCase field names:\n%s", buf.String())
	}
}

func TestWriteResultSkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	res := rewrite.Optimize("Translate this to German", rewrite.Options{Objective: rewrite.ObjectiveSpeed})

	if err := WriteResult(&buf, res); err != nil {
		t.Fatalf("WriteResult: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Examples:") {
		t.Errorf("examples section rendered for a result without examples:\n%s", out)
	}
	if !strings.Contains(out, "Constraints:") {
		t.Errorf("constraints section missing:\n%s", out)
	}
}
