// Package templates holds the templ components for the web UI. Pages wrap
// their content in a shared layout; fragments are returned bare for htmx
// swaps.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"promptforge/internal/history"
	"promptforge/internal/locale"
	"promptforge/internal/rewrite"
)

// FormState carries everything the prompt form needs to render.
type FormState struct {
	Prompt  string
	Options rewrite.Options
	Locales []locale.Locale
}

// ResultView pairs a result with its presentation extras.
type ResultView struct {
	RawPrompt   string
	Result      rewrite.Result
	RecordID    string
	PreviewHTML string
	ShareCode   string
	Warning     string
}

var objectiveChoices = [][2]string{
	{"precision", "Precision"},
	{"brevity", "Brevity"},
	{"creativity", "Creativity"},
	{"safety", "Safety"},
	{"speed", "Speed"},
}

var reasoningChoices = [][2]string{
	{"low", "Low"},
	{"medium", "Medium"},
	{"high", "High"},
}

var contentChoices = [][2]string{
	{"text", "Text"},
	{"video", "Video"},
	{"image", "Image"},
	{"audio", "Audio"},
	{"presentation", "Presentation"},
}

// HomePage renders the main form page.
func HomePage(state FormState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card">`)
		writeForm(&b, state)
		b.WriteString(`</section><section id="result"></section>`)
		return layout("PromptForge", templ.Raw(b.String())).Render(ctx, w)
	})
}

// ResultComponent renders one rewrite outcome as an HTML fragment.
func ResultComponent(view ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeResult(&b, view)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ExplorationComponent renders the multi-path view with the selected result.
func ExplorationComponent(exp rewrite.Exploration, view ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="exploration"><div class="paths">`)
		for i, path := range exp.Paths {
			b.WriteString(`<div class="card path`)
			if i == exp.Selected {
				b.WriteString(` selected`)
			}
			b.WriteString(`"><h3>`)
			b.WriteString(templ.EscapeString(path.Label))
			b.WriteString(`</h3><p>`)
			b.WriteString(templ.EscapeString(path.Description))
			b.WriteString(`</p><span class="confidence">`)
			b.WriteString(templ.EscapeString(fmt.Sprintf("confidence %.2f", path.Confidence)))
			b.WriteString(`</span>`)
			if i == exp.Selected {
				b.WriteString(`<span class="badge">selected</span>`)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		writeResult(&b, view)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HistoryPage renders the session's stored records, newest first.
func HistoryPage(records []history.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card"><h2>History</h2>`)
		if len(records) == 0 {
			b.WriteString(`<p class="empty">No rewrites saved yet. <a href="/">Start with a prompt.</a></p>`)
		} else {
			b.WriteString(`<table class="history"><thead><tr><th>When</th><th>Intent</th><th>Prompt</th><th></th></tr></thead><tbody>`)
			for _, rec := range records {
				b.WriteString(`<tr><td>`)
				b.WriteString(rec.CreatedAt.Format("2006-01-02 15:04"))
				b.WriteString(`</td><td>`)
				b.WriteString(templ.EscapeString(string(rec.Result.Intent)))
				if rec.Explored {
					b.WriteString(` <span class="badge">explored</span>`)
				}
				b.WriteString(`</td><td>`)
				b.WriteString(templ.EscapeString(snippet(rec.RawPrompt, 80)))
				b.WriteString(`</td><td><a href="/history/`)
				b.WriteString(templ.EscapeString(rec.ID))
				b.WriteString(`">view</a></td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)
		return layout("History - PromptForge", templ.Raw(b.String())).Render(ctx, w)
	})
}

// RecordPage renders a single stored record as a full page.
func RecordPage(view ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="card"><h2>Original prompt</h2><pre class="prompt">`)
		b.WriteString(templ.EscapeString(view.RawPrompt))
		b.WriteString(`</pre></section>`)
		writeResult(&b, view)
		return layout("Record - PromptForge", templ.Raw(b.String())).Render(ctx, w)
	})
}

// layout wraps body in the shared page chrome.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!doctype html><html lang="en"><head><meta charset="utf-8"/>` +
			`<meta name="viewport" content="width=device-width, initial-scale=1"/>` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>` +
			`<style>` + pageStyle + `</style></head><body>` +
			`<header><h1><a href="/">PromptForge</a></h1>` +
			`<nav><a href="/">Rewrite</a><a href="/history">History</a></nav></header><main>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeForm(b *strings.Builder, state FormState) {
	b.WriteString(`<form id="prompt-form" method="post" action="/rewrite" hx-post="/rewrite" hx-target="#result" hx-swap="innerHTML">`)
	b.WriteString(`<label for="prompt">Prompt</label>`)
	b.WriteString(`<textarea id="prompt" name="prompt" rows="5" placeholder="Paste the prompt to rewrite" required>`)
	b.WriteString(templ.EscapeString(state.Prompt))
	b.WriteString(`</textarea><div class="options">`)

	writeSelect(b, "objective", "Objective", string(state.Options.Objective), objectiveChoices)
	writeSelect(b, "reasoning", "Reasoning", string(state.Options.ReasoningLevel), reasoningChoices)
	writeSelect(b, "contentType", "Content type", string(state.Options.ContentType), contentChoices)
	writeLocaleSelect(b, state)

	b.WriteString(`<label for="role">Role</label><input id="role" name="role" type="text" value="`)
	b.WriteString(templ.EscapeString(state.Options.Role))
	b.WriteString(`" placeholder="Subject-matter expert"/>`)
	b.WriteString(`</div><div class="actions">`)
	b.WriteString(`<button type="submit">Rewrite</button>`)
	b.WriteString(`<button type="submit" formaction="/explore" hx-post="/explore" hx-target="#result" hx-swap="innerHTML">Explore 3 paths</button>`)
	b.WriteString(`</div></form>`)
}

func writeSelect(b *strings.Builder, name, label, selected string, choices [][2]string) {
	b.WriteString(`<label for="` + name + `">` + label + `</label>`)
	b.WriteString(`<select id="` + name + `" name="` + name + `">`)
	for _, choice := range choices {
		b.WriteString(`<option value="` + choice[0] + `"`)
		if choice[0] == selected {
			b.WriteString(` selected`)
		}
		b.WriteString(`>` + choice[1] + `</option>`)
	}
	b.WriteString(`</select>`)
}

func writeLocaleSelect(b *strings.Builder, state FormState) {
	b.WriteString(`<label for="language">Language</label><select id="language" name="language">`)
	for _, loc := range state.Locales {
		b.WriteString(`<option value="` + loc.Code + `"`)
		if strings.EqualFold(loc.Code, state.Options.Language) {
			b.WriteString(` selected`)
		}
		label := loc.Native
		if label == "" {
			label = loc.Name
		} else if !strings.Contains(strings.ToLower(label), strings.ToLower(loc.Name)) {
			b.WriteString(` title="` + templ.EscapeString(loc.Name) + `"`)
		}
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(label))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)
}

func writeResult(b *strings.Builder, view ResultView) {
	res := view.Result

	b.WriteString(`<article class="card result">`)
	if view.Warning != "" {
		b.WriteString(`<div class="warning">`)
		b.WriteString(templ.EscapeString(view.Warning))
		b.WriteString(`</div>`)
	}
	b.WriteString(`<header class="result-head"><span class="badge">`)
	b.WriteString(templ.EscapeString(string(res.Intent)))
	b.WriteString(`</span><span class="params">`)
	b.WriteString(templ.EscapeString(fmt.Sprintf("%s | %s | %s | %s",
		res.Parameters.Format, res.Parameters.Objective, res.Parameters.ReasoningLevel, res.Parameters.ContentType)))
	b.WriteString(`</span></header><pre class="prompt">`)
	b.WriteString(templ.EscapeString(res.RewrittenPrompt))
	b.WriteString(`</pre>`)

	if len(res.Constraints) > 0 {
		b.WriteString(`<h3>Constraints</h3><ul>`)
		for _, item := range res.Constraints {
			b.WriteString(`<li>` + templ.EscapeString(item) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}
	if len(res.Examples) > 0 {
		b.WriteString(`<h3>Examples</h3><ul>`)
		for _, item := range res.Examples {
			b.WriteString(`<li>` + templ.EscapeString(item) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`<footer class="scores">`)
	b.WriteString(fmt.Sprintf(`<span>Complexity %d/100</span><span>Clarity %d/100</span><span>%d to %d chars</span>`,
		res.Metadata.ComplexityScore, res.Metadata.ClarityScore,
		res.Metadata.OriginalLength, res.Metadata.RewrittenLength))
	b.WriteString(`</footer>`)

	if view.PreviewHTML != "" {
		b.WriteString(`<details class="preview"><summary>Markdown preview</summary><div class="preview-body">`)
		b.WriteString(view.PreviewHTML)
		b.WriteString(`</div></details>`)
	}

	if view.RecordID != "" || view.ShareCode != "" {
		b.WriteString(`<nav class="result-links">`)
		if view.RecordID != "" {
			id := templ.EscapeString(view.RecordID)
			b.WriteString(`<a href="/history/` + id + `">Permalink</a>`)
			b.WriteString(`<a href="/download/` + id + `?format=txt">txt</a>`)
			b.WriteString(`<a href="/download/` + id + `?format=md">md</a>`)
			b.WriteString(`<a href="/download/` + id + `?format=json">json</a>`)
		}
		if view.ShareCode != "" {
			b.WriteString(`<a href="/share/` + templ.EscapeString(view.ShareCode) + `">Share link</a>`)
		}
		b.WriteString(`</nav>`)
	}

	b.WriteString(`</article>`)
}

// snippet truncates s to max runes for list display.
func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

const pageStyle = `
:root { color-scheme: light; }
* { box-sizing: border-box; }
body { font-family: system-ui, sans-serif; margin: 0; background: #f6f7f9; color: #1f2430; }
header { display: flex; justify-content: space-between; align-items: center; padding: 1rem 2rem; background: #1f2430; color: #fff; }
header h1 { font-size: 1.2rem; margin: 0; }
header a { color: inherit; text-decoration: none; }
header nav a { margin-left: 1rem; opacity: 0.85; }
main { max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
.card { background: #fff; border-radius: 8px; padding: 1.5rem; margin-bottom: 1.5rem; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
label { display: block; margin: 0.75rem 0 0.25rem; font-size: 0.85rem; font-weight: 600; }
textarea, select, input[type=text] { width: 100%; padding: 0.5rem; border: 1px solid #ccd2dc; border-radius: 6px; font: inherit; }
.options { display: grid; grid-template-columns: repeat(auto-fit, minmax(12rem, 1fr)); gap: 0 1rem; }
.actions { margin-top: 1rem; display: flex; gap: 0.75rem; }
button { padding: 0.5rem 1.25rem; border: 0; border-radius: 6px; background: #3457d5; color: #fff; font: inherit; cursor: pointer; }
button:hover { background: #2a46ad; }
.result-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: 0.75rem; }
.badge { background: #3457d5; color: #fff; border-radius: 999px; padding: 0.15rem 0.75rem; font-size: 0.8rem; }
.params { color: #5b6472; font-size: 0.85rem; }
pre.prompt { white-space: pre-wrap; background: #f0f2f6; border-radius: 6px; padding: 1rem; }
.scores { display: flex; gap: 1.5rem; color: #5b6472; font-size: 0.85rem; margin-top: 0.75rem; }
.warning { background: #fff3cd; border: 1px solid #e3d08f; border-radius: 6px; padding: 0.5rem 0.75rem; margin-bottom: 0.75rem; }
.result-links { margin-top: 0.75rem; display: flex; gap: 0.9rem; font-size: 0.9rem; }
.paths { display: grid; grid-template-columns: repeat(auto-fit, minmax(14rem, 1fr)); gap: 1rem; margin-bottom: 1rem; }
.path.selected { outline: 2px solid #3457d5; }
.confidence { display: block; color: #5b6472; font-size: 0.85rem; margin-bottom: 0.5rem; }
table.history { width: 100%; border-collapse: collapse; }
table.history th, table.history td { text-align: left; padding: 0.5rem; border-bottom: 1px solid #e4e7ee; }
.preview-body { border: 1px solid #e4e7ee; border-radius: 6px; padding: 0 1rem; margin-top: 0.5rem; }
.empty { color: #5b6472; }
`
