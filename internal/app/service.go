package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"promptforge/internal/history"
	"promptforge/internal/rewrite"
)

// RewriteLogger handles logging of individual rewrites
type RewriteLogger interface {
	LogRewrite(m RewriteMetric)
}

// UsageReporter provides session usage summaries and breakdowns
type UsageReporter interface {
	Summary() UsageSummary
	IntentBreakdown() map[string]int
}

// Closer handles resource cleanup
type Closer interface {
	Close() error
}

// Logger combines the logging interfaces the session layer depends on
type Logger interface {
	RewriteLogger
	UsageReporter
	Closer
}

// Recorder persists rewrite outcomes keyed by session for later listing.
// The history store satisfies it; sessions that should not persist run
// without one.
type Recorder interface {
	SaveRecord(sessionID, rawPrompt string, explored bool, res rewrite.Result) (history.Record, error)
}

// DirectRewriteService handles one-shot rewrites for the direct CLI mode.
// It runs the pipeline, logs the usage metric, and writes the outcome to the
// configured writer.
type DirectRewriteService struct {
	logger Logger
	writer io.Writer
}

// NewDirectRewriteService creates a new direct rewrite service with the
// specified dependencies.
func NewDirectRewriteService(logger Logger, writer io.Writer) *DirectRewriteService {
	return &DirectRewriteService{
		logger: logger,
		writer: writer,
	}
}

// Execute rewrites a single prompt and prints the result, as JSON when
// asJSON is set.
func (s *DirectRewriteService) Execute(prompt string, opts rewrite.Options, asJSON bool) error {
	start := time.Now()
	res := rewrite.Optimize(prompt, opts)
	elapsed := time.Since(start)

	s.logger.LogRewrite(MetricFor(res, elapsed, false))

	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(s.writer, string(data))
		return err
	}

	return WriteResult(s.writer, res)
}

// MetricFor builds the usage metric for one pipeline outcome.
func MetricFor(res rewrite.Result, elapsed time.Duration, explored bool) RewriteMetric {
	return RewriteMetric{
		Timestamp:       time.Now(),
		Intent:          string(res.Intent),
		Objective:       string(res.Parameters.Objective),
		ContentType:     string(res.Parameters.ContentType),
		OriginalLength:  res.Metadata.OriginalLength,
		RewrittenLength: res.Metadata.RewrittenLength,
		ComplexityScore: res.Metadata.ComplexityScore,
		ClarityScore:    res.Metadata.ClarityScore,
		Explored:        explored,
		DurationMicros:  elapsed.Microseconds(),
	}
}

// WriteResult renders a result as plain text, shared by the direct mode and
// the interactive CLI.
func WriteResult(w io.Writer, res rewrite.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Intent: %s\n", res.Intent)
	fmt.Fprintf(&b, "Format: %s | Objective: %s | Reasoning: %s | Content: %s\n",
		res.Parameters.Format, res.Parameters.Objective, res.Parameters.ReasoningLevel, res.Parameters.ContentType)
	b.WriteString("\n")
	b.WriteString(res.RewrittenPrompt)
	b.WriteString("\n")

	if len(res.Constraints) > 0 {
		b.WriteString("\nConstraints:\n")
		for _, c := range res.Constraints {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}
	if len(res.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, e := range res.Examples {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	fmt.Fprintf(&b, "\nComplexity: %d/100 | Clarity: %d/100 | %d -> %d chars\n",
		res.Metadata.ComplexityScore, res.Metadata.ClarityScore,
		res.Metadata.OriginalLength, res.Metadata.RewrittenLength)

	_, err := io.WriteString(w, b.String())
	return err
}
