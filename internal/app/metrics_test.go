package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUsageLogLifecycle(t *testing.T) {
	dir := t.TempDir()

	usageLog, err := NewUsageLog(dir, "cli_test", "cli")
	if err != nil {
		t.Fatalf("NewUsageLog: %v", err)
	}

	usageLog.LogRewrite(RewriteMetric{Intent: "Summarization", Objective: "precision", ComplexityScore: 40, ClarityScore: 80})
	usageLog.LogRewrite(RewriteMetric{Intent: "Summarization", Objective: "brevity", ComplexityScore: 20, ClarityScore: 90, Explored: true})
	usageLog.LogRewrite(RewriteMetric{Intent: "Analysis", Objective: "precision", ComplexityScore: 60, ClarityScore: 70})

	summary := usageLog.Summary()
	if summary.TotalRewrites != 3 {
		t.Errorf("TotalRewrites = %d, want 3", summary.TotalRewrites)
	}
	if summary.Explorations != 1 {
		t.Errorf("Explorations = %d, want 1", summary.Explorations)
	}
	if summary.TopIntent != "Summarization" {
		t.Errorf("TopIntent = %q, want Summarization", summary.TopIntent)
	}
	if summary.AvgComplexity != 40 || summary.AvgClarity != 80 {
		t.Errorf("averages = %d/%d, want 40/80", summary.AvgComplexity, summary.AvgClarity)
	}
	if summary.Mode != "cli" {
		t.Errorf("Mode = %q, want cli", summary.Mode)
	}

	breakdown := usageLog.IntentBreakdown()
	if breakdown["Summarization"] != 2 || breakdown["Analysis"] != 1 {
		t.Errorf("IntentBreakdown = %v", breakdown)
	}
	breakdown["Summarization"] = 99
	if usageLog.IntentBreakdown()["Summarization"] != 2 {
		t.Error("IntentBreakdown exposed internal state")
	}

	if err := usageLog.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("log dir holds %d files, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "session_") || !strings.HasSuffix(name, "_cli_test.jsonl") {
		t.Errorf("unexpected log file name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("log has %d lines, want 3 metrics plus summary", len(lines))
	}

	var metric RewriteMetric
	if err := json.Unmarshal([]byte(lines[0]), &metric); err != nil {
		t.Fatalf("first line is not a metric: %v", err)
	}
	if metric.Timestamp.IsZero() {
		t.Error("timestamp not defaulted on log")
	}
	if metric.Intent != "Summarization" {
		t.Errorf("first metric intent = %q", metric.Intent)
	}

	if !strings.HasPrefix(lines[3], "SESSION_SUMMARY: ") {
		t.Fatalf("last line is not the session summary: %q", lines[3])
	}
	var usage SessionUsage
	if err := json.Unmarshal([]byte(strings.TrimPrefix(lines[3], "SESSION_SUMMARY: ")), &usage); err != nil {
		t.Fatalf("summary line does not parse: %v", err)
	}
	if usage.TotalRewrites != 3 || usage.Explorations != 1 {
		t.Errorf("summary totals wrong: %+v", usage)
	}
	if usage.EndTime == nil {
		t.Error("summary missing end time")
	}
}

func TestTopKeyTieBreak(t *testing.T) {
	counts := map[string]int{"Planning": 2, "Analysis": 2, "Translation": 1}
	if got := topKey(counts); got != "Analysis" {
		t.Errorf("topKey = %q, want alphabetical winner Analysis", got)
	}
	if got := topKey(nil); got != "" {
		t.Errorf("topKey(nil) = %q, want empty", got)
	}
}
