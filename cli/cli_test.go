package cli

import (
	"bytes"
	"strings"
	"testing"

	"promptforge/internal/rewrite"
)

func runScript(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer
	err := Run(Config{
		Defaults: rewrite.Options{Objective: rewrite.ObjectivePrecision},
		LogDir:   t.TempDir(),
		In:       strings.NewReader(script),
		Out:      &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestRunRewritesAndExits(t *testing.T) {
	script := "Summarize this article for me\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "Intent: Summarization") {
		t.Errorf("output missing intent line:\n%s", out)
	}
	if !strings.Contains(out, "create a precise summary of this article") {
		t.Errorf("output missing rewritten prompt:\n%s", out)
	}
	if !strings.Contains(out, "Session Summary: 1 rewrites, 0 explorations") {
		t.Errorf("output missing session summary:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output missing goodbye:\n%s", out)
	}
}

func TestRunOptionCommands(t *testing.T) {
	script := "/objective brevity\n" +
		"\n" +
		"Summarize this article for me\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "Objective: brevity") {
		t.Errorf("objective change not reflected:\n%s", out)
	}
}

func TestRunOptionHelp(t *testing.T) {
	script := "/objective\n" +
		"\n" +
		"/language\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "precision, brevity, creativity, safety, speed") {
		t.Errorf("objective choices not shown:\n%s", out)
	}
	if !strings.Contains(out, "fr-FR") {
		t.Errorf("locale list not shown:\n%s", out)
	}
}

func TestRunHistoryAndStats(t *testing.T) {
	script := "Summarize this article for me\n" +
		"\n" +
		"Write a poem about rain\n" +
		"\n" +
		"/history\n" +
		"\n" +
		"/stats\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "Recent rewrites (newest first):") {
		t.Errorf("history header missing:\n%s", out)
	}
	if !strings.Contains(out, "Write a poem about rain") {
		t.Errorf("history missing second prompt:\n%s", out)
	}
	if !strings.Contains(out, "Rewrites: 2 total (0 explorations)") {
		t.Errorf("stats totals missing:\n%s", out)
	}
	if !strings.Contains(out, "- Summarization: 1") {
		t.Errorf("intent breakdown missing:\n%s", out)
	}
}

func TestRunExplore(t *testing.T) {
	script := "/explore Compare solar and wind energy\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "Exploration paths:") {
		t.Errorf("exploration header missing:\n%s", out)
	}
	for _, label := range []string{"direct", "structured", "exploratory"} {
		if !strings.Contains(out, label) {
			t.Errorf("path label %q missing:\n%s", label, out)
		}
	}
	if !strings.Contains(out, " * 1. ") {
		t.Errorf("selected path marker missing:\n%s", out)
	}
	if !strings.Contains(out, "Session Summary: 1 rewrites, 1 explorations") {
		t.Errorf("exploration not counted:\n%s", out)
	}
}

func TestRunJSONToggle(t *testing.T) {
	script := "/json\n" +
		"\n" +
		"Write a poem about rain\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, "JSON output enabled.") {
		t.Errorf("toggle confirmation missing:\n%s", out)
	}
	if !strings.Contains(out, `"rewrittenPrompt"`) {
		t.Errorf("JSON body missing:\n%s", out)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	script := "/frobnicate\n" +
		"\n" +
		"exit\n"

	out := runScript(t, script)

	if !strings.Contains(out, `Unknown command "/frobnicate"`) {
		t.Errorf("unknown command message missing:\n%s", out)
	}
}

func TestRunEOFEndsSession(t *testing.T) {
	out := runScript(t, "")

	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("EOF should end the session cleanly:\n%s", out)
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input   string
		command string
		rest    string
	}{
		{"/role Patent attorney", "/role", "Patent attorney"},
		{"/stats", "/stats", ""},
		{"/explore  Compare A and B", "/explore", "Compare A and B"},
		{"", "", ""},
	}

	for _, tt := range tests {
		command, rest := splitCommand(tt.input)
		if command != tt.command || rest != tt.rest {
			t.Errorf("splitCommand(%q) = %q, %q, want %q, %q",
				tt.input, command, rest, tt.command, tt.rest)
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short", 10); got != "short" {
		t.Errorf("preview = %q, want %q", got, "short")
	}
	long := strings.Repeat("résumé ", 20)
	got := preview(long, 12)
	if len([]rune(got)) != 15 {
		t.Errorf("preview length = %d runes, want 15", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("preview = %q, want ... suffix", got)
	}
}
