package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// SessionUsage tracks metrics for a single rewrite session
type SessionUsage struct {
	SessionID     string          `json:"session_id"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       *time.Time      `json:"end_time,omitempty"`
	Mode          string          `json:"mode"` // "web", "cli", "direct"
	TotalRewrites int             `json:"total_rewrites"`
	Explorations  int             `json:"explorations"`
	Intents       map[string]int  `json:"intents"`
	Objectives    map[string]int  `json:"objectives"`
	Rewrites      []RewriteMetric `json:"rewrites"`
}

// RewriteMetric records a single rewrite invocation
type RewriteMetric struct {
	Timestamp       time.Time `json:"timestamp"`
	Intent          string    `json:"intent"`
	Objective       string    `json:"objective"`
	ContentType     string    `json:"content_type"`
	OriginalLength  int       `json:"original_length"`
	RewrittenLength int       `json:"rewritten_length"`
	ComplexityScore int       `json:"complexity_score"`
	ClarityScore    int       `json:"clarity_score"`
	Explored        bool      `json:"explored,omitempty"`
	DurationMicros  int64     `json:"duration_us"`
}

// UsageLog appends per-rewrite metrics to a session JSONL file and keeps
// running totals for summaries. Callers serialize access; the session that
// owns a log is the only writer.
type UsageLog struct {
	session *SessionUsage
	logFile *os.File
}

// NewUsageLog opens a JSONL log for one session under dir, creating the
// directory as needed.
func NewUsageLog(dir, sessionID, mode string) (*UsageLog, error) {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFileName := filepath.Join(dir, fmt.Sprintf("session_%s_%s.jsonl",
		time.Now().Format("2006-01-02"), sessionID))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &UsageLog{
		session: &SessionUsage{
			SessionID:  sessionID,
			StartTime:  time.Now(),
			Mode:       mode,
			Intents:    make(map[string]int),
			Objectives: make(map[string]int),
			Rewrites:   make([]RewriteMetric, 0),
		},
		logFile: logFile,
	}, nil
}

// LogRewrite records one rewrite and appends it to the log file.
func (ul *UsageLog) LogRewrite(m RewriteMetric) {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}

	ul.session.TotalRewrites++
	if m.Explored {
		ul.session.Explorations++
	}
	ul.session.Intents[m.Intent]++
	ul.session.Objectives[m.Objective]++
	ul.session.Rewrites = append(ul.session.Rewrites, m)

	if line, err := json.Marshal(m); err == nil {
		ul.logFile.WriteString(string(line) + "\n")
		ul.logFile.Sync()
	}
}

// IntentBreakdown returns a copy of the per-intent counters.
func (ul *UsageLog) IntentBreakdown() map[string]int {
	out := make(map[string]int, len(ul.session.Intents))
	for intent, n := range ul.session.Intents {
		out[intent] = n
	}
	return out
}

// Summary condenses the session so far.
func (ul *UsageLog) Summary() UsageSummary {
	summary := UsageSummary{
		Duration:      time.Since(ul.session.StartTime),
		TotalRewrites: ul.session.TotalRewrites,
		Explorations:  ul.session.Explorations,
		Mode:          ul.session.Mode,
		TopIntent:     topKey(ul.session.Intents),
	}

	if len(ul.session.Rewrites) > 0 {
		var complexity, clarity int
		for _, m := range ul.session.Rewrites {
			complexity += m.ComplexityScore
			clarity += m.ClarityScore
		}
		summary.AvgComplexity = complexity / len(ul.session.Rewrites)
		summary.AvgClarity = clarity / len(ul.session.Rewrites)
	}

	return summary
}

// Close finalizes the session and closes the log file.
func (ul *UsageLog) Close() error {
	now := time.Now()
	ul.session.EndTime = &now

	if sessionData, err := json.Marshal(ul.session); err == nil {
		ul.logFile.WriteString("SESSION_SUMMARY: " + string(sessionData) + "\n")
	}

	return ul.logFile.Close()
}

// UsageSummary provides a condensed view of session metrics
type UsageSummary struct {
	Duration      time.Duration
	TotalRewrites int
	Explorations  int
	AvgComplexity int
	AvgClarity    int
	TopIntent     string
	Mode          string
}

// topKey picks the highest-count key, breaking ties alphabetically so the
// summary is stable.
func topKey(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	top := ""
	best := 0
	for _, k := range keys {
		if counts[k] > best {
			top = k
			best = counts[k]
		}
	}
	return top
}
