package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"

	"promptforge/internal/app"
	"promptforge/internal/history"
	"promptforge/internal/rewrite"
)

// ExportRecord serializes a record for download in the requested format.
func ExportRecord(rec history.Record, format string) ([]byte, string, error) {
	switch format {
	case "txt":
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Original: %s\n\n", rec.RawPrompt)
		if err := app.WriteResult(&buf, rec.Result); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "text/plain; charset=utf-8", nil
	case "json":
		data, err := json.MarshalIndent(rec.Result, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	case "md":
		return []byte(MarkdownExport(rec.RawPrompt, rec.Result)), "text/markdown; charset=utf-8", nil
	default:
		return nil, "", fmt.Errorf("unsupported format %q", format)
	}
}

// MarkdownExport renders a result as a markdown document.
func MarkdownExport(rawPrompt string, res rewrite.Result) string {
	var b strings.Builder

	b.WriteString("# Rewritten prompt\n\n")
	fmt.Fprintf(&b, "**Intent:** %s\n\n", res.Intent)
	fmt.Fprintf(&b, "**Parameters:** format %s, objective %s, reasoning %s, content %s\n\n",
		res.Parameters.Format, res.Parameters.Objective, res.Parameters.ReasoningLevel, res.Parameters.ContentType)

	if rawPrompt != "" {
		fmt.Fprintf(&b, "## Original\n\n%s\n\n", rawPrompt)
	}

	fmt.Fprintf(&b, "## Prompt\n\n%s\n", res.RewrittenPrompt)

	if len(res.Constraints) > 0 {
		b.WriteString("\n## Constraints\n\n")
		for _, c := range res.Constraints {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if len(res.Examples) > 0 {
		b.WriteString("\n## Examples\n\n")
		for _, e := range res.Examples {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	fmt.Fprintf(&b, "\n## Scores\n\n- Complexity: %d/100\n- Clarity: %d/100\n- Length: %d to %d characters\n",
		res.Metadata.ComplexityScore, res.Metadata.ClarityScore,
		res.Metadata.OriginalLength, res.Metadata.RewrittenLength)

	return b.String()
}

// PreviewHTML renders the markdown view of a result to HTML for the inline
// preview. Raw HTML in the prompt text is dropped, not passed through.
func PreviewHTML(res rewrite.Result) string {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
	})
	md := MarkdownExport("", res)
	return string(blackfriday.Run([]byte(md), blackfriday.WithRenderer(renderer)))
}
