package app

import (
	"time"

	"promptforge/internal/rewrite"
)

// defaultKeepRecent bounds the in-memory result history per session.
const defaultKeepRecent = 20

// RewriteSession holds the per-user state shared by the CLI and Web modes:
// the current option set, a bounded window of recent results, and usage
// logging. Persistence is delegated to an optional Recorder.
type RewriteSession struct {
	ID   string
	Mode string

	options    rewrite.Options
	defaults   rewrite.Options
	recent     []SessionResult
	keepRecent int

	logger   Logger
	recorder Recorder
}

// SessionResult pairs a stored result with the prompt that produced it.
type SessionResult struct {
	RecordID  string
	RawPrompt string
	Explored  bool
	Result    rewrite.Result
	CreatedAt time.Time
}

// SessionConfig holds configuration for creating a new session
type SessionConfig struct {
	ID         string
	Mode       string
	Defaults   rewrite.Options
	LogDir     string
	KeepRecent int
	Recorder   Recorder // optional, nil disables persistence
	Logger     Logger   // optional, defaults to a file-backed UsageLog
}

// NewRewriteSession creates a new session with its usage log opened.
func NewRewriteSession(config SessionConfig) (*RewriteSession, error) {
	logger := config.Logger
	if logger == nil {
		usageLog, err := NewUsageLog(config.LogDir, config.ID, config.Mode)
		if err != nil {
			return nil, err
		}
		logger = usageLog
	}

	keepRecent := config.KeepRecent
	if keepRecent <= 0 {
		keepRecent = defaultKeepRecent
	}

	return &RewriteSession{
		ID:         config.ID,
		Mode:       config.Mode,
		options:    config.Defaults,
		defaults:   config.Defaults,
		keepRecent: keepRecent,
		logger:     logger,
		recorder:   config.Recorder,
	}, nil
}

// Process rewrites a prompt with the session's current options.
func (s *RewriteSession) Process(rawPrompt string) (rewrite.Result, error) {
	return s.ProcessWith(rawPrompt, s.options)
}

// ProcessWith rewrites a prompt with an explicit option set, keeping the
// session options untouched. The result is always valid; the error reports a
// persistence failure only.
func (s *RewriteSession) ProcessWith(rawPrompt string, opts rewrite.Options) (rewrite.Result, error) {
	start := time.Now()
	res := rewrite.Optimize(rawPrompt, opts)
	elapsed := time.Since(start)

	s.logger.LogRewrite(MetricFor(res, elapsed, false))
	return res, s.remember(rawPrompt, false, res)
}

// ExploreWith runs the decorative multi-path view over the same pipeline.
func (s *RewriteSession) ExploreWith(rawPrompt string, opts rewrite.Options) (rewrite.Exploration, error) {
	start := time.Now()
	exp := rewrite.Explore(rawPrompt, opts)
	elapsed := time.Since(start)

	s.logger.LogRewrite(MetricFor(exp.Result, elapsed, true))
	return exp, s.remember(rawPrompt, true, exp.Result)
}

// remember appends to the bounded recent window and persists when a recorder
// is attached.
func (s *RewriteSession) remember(rawPrompt string, explored bool, res rewrite.Result) error {
	entry := SessionResult{
		RawPrompt: rawPrompt,
		Explored:  explored,
		Result:    res,
		CreatedAt: time.Now(),
	}

	if s.recorder != nil {
		record, err := s.recorder.SaveRecord(s.ID, rawPrompt, explored, res)
		if err != nil {
			return NewSessionError(s.ID, "save record", err)
		}
		entry.RecordID = record.ID
		entry.CreatedAt = record.CreatedAt
	}

	s.recent = append(s.recent, entry)
	if len(s.recent) > s.keepRecent {
		s.recent = s.recent[len(s.recent)-s.keepRecent:]
	}
	return nil
}

// SetOptions replaces the session's current options.
func (s *RewriteSession) SetOptions(opts rewrite.Options) {
	s.options = opts
}

// CurrentOptions returns the session's current options.
func (s *RewriteSession) CurrentOptions() rewrite.Options {
	return s.options
}

// Recent returns the recent results, newest first.
func (s *RewriteSession) Recent() []SessionResult {
	out := make([]SessionResult, len(s.recent))
	for i, r := range s.recent {
		out[len(s.recent)-1-i] = r
	}
	return out
}

// Reset clears the recent window and restores the default options.
func (s *RewriteSession) Reset() {
	s.recent = nil
	s.options = s.defaults
}

// IntentBreakdown returns per-intent counts for this session.
func (s *RewriteSession) IntentBreakdown() map[string]int {
	return s.logger.IntentBreakdown()
}

// Summary returns the session's usage summary.
func (s *RewriteSession) Summary() UsageSummary {
	return s.logger.Summary()
}

// Close properly closes the session
func (s *RewriteSession) Close() error {
	return s.logger.Close()
}
