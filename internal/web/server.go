package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"promptforge/internal/app"
	"promptforge/internal/history"
	"promptforge/internal/locale"
	"promptforge/internal/rewrite"
	"promptforge/internal/web/templates"
)

const (
	defaultAddress    = ":3000"
	htmlContentType   = "text/html; charset=utf-8"
	sessionCookieName = "promptforge_session_id"
	sessionMaxAge     = 24 * time.Hour
	optionsPrefKey    = "options"
	historyPageSize   = 50
)

// Server represents the web server with session management
type Server struct {
	app            *fiber.App
	sessionManager app.SessionManager
	store          *history.Store
}

// ServerConfig carries the collaborators and defaults the server needs.
type ServerConfig struct {
	Defaults   rewrite.Options
	LogDir     string
	KeepRecent int
	Store      *history.Store // optional, nil disables history
}

// WebRunner handles web server mode with consistent signature
type WebRunner struct {
	address string
}

// NewWebRunner creates a new web runner for the specified address
func NewWebRunner(address string) *WebRunner {
	return &WebRunner{address: address}
}

// Run starts the web server with the provided configuration
func (w *WebRunner) Run(cfg ServerConfig) error {
	server := NewServer(cfg)
	return server.Run(w.address)
}

// NewServer creates a new web server instance with session management
func NewServer(cfg ServerConfig) *Server {
	fiberApp := fiber.New(fiber.Config{
		DisableStartupMessage: false,
	})

	// Middleware
	fiberApp.Use(logger.New())
	fiberApp.Use(recover.New())

	managerCfg := app.ManagerConfig{
		Defaults:   cfg.Defaults,
		LogDir:     cfg.LogDir,
		KeepRecent: cfg.KeepRecent,
		MaxAge:     sessionMaxAge,
	}
	if cfg.Store != nil {
		managerCfg.Recorder = cfg.Store
	}

	server := &Server{
		app:            fiberApp,
		sessionManager: app.NewInMemorySessionManager(managerCfg),
		store:          cfg.Store,
	}

	server.setupRoutes()

	// Start cleanup routine for expired sessions
	go server.startSessionCleanup()

	return server
}

// startSessionCleanup runs a background cleanup routine for expired sessions
func (s *Server) startSessionCleanup() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cleaned := s.sessionManager.CleanupExpiredSessions()
		if cleaned > 0 {
			log.Printf("Cleaned up %d expired sessions", cleaned)
		}
	}
}

// getOrCreateSession gets an existing session or creates a new one for the user
func (s *Server) getOrCreateSession(c *fiber.Ctx) (*app.RewriteSession, error) {
	sessionID := c.Cookies(sessionCookieName)

	if sessionID != "" {
		if session, err := s.sessionManager.GetSession(sessionID); err == nil {
			return session, nil
		}
	}

	// Create new session
	session, err := s.sessionManager.CreateSession("web")
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Set session cookie
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		MaxAge:   int(sessionMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return session, nil
}

func (s *Server) setupRoutes() {
	// Favicon handler
	s.app.Get("/favicon.ico", s.handleFavicon)

	// Main form page
	s.app.Get("/", s.handleHome)

	// Form endpoints
	s.app.Post("/rewrite", s.handleRewrite)
	s.app.Post("/explore", s.handleExplore)

	// History
	s.app.Get("/history", s.handleHistory)
	s.app.Get("/history/:id", s.handleRecord)
	s.app.Get("/download/:id", s.handleDownload)

	// Prefilled form via share code
	s.app.Get("/share/:code", s.handleShare)

	// API endpoints
	s.app.Post("/api/rewrite", s.handleAPIRewrite)
	s.app.Get("/status", s.handleStatus)
}

// renderComponent is a helper to render templ components
func (s *Server) renderComponent(c *fiber.Ctx, component templ.Component) error {
	return component.Render(c.Context(), c.Response().BodyWriter())
}

func (s *Server) handleFavicon(c *fiber.Ctx) error {
	// Return a simple 204 No Content for favicon requests
	return c.SendStatus(204)
}

func (s *Server) handleHome(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	opts := s.restoreOptions(session)
	if opts.Language == "" {
		opts.Language = s.negotiateLocale(c)
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.HomePage(templates.FormState{
		Options: opts,
		Locales: locale.Supported(),
	}))
}

// negotiateLocale picks the best supported locale from Accept-Language.
func (s *Server) negotiateLocale(c *fiber.Ctx) string {
	if match := c.AcceptsLanguages(locale.Codes()...); match != "" {
		return match
	}
	return locale.DefaultCode
}

func (s *Server) handleRewrite(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	prompt := c.FormValue("prompt")
	if prompt == "" {
		return c.Status(400).SendString("Prompt is required")
	}

	opts := optionsFromForm(c)
	res, saveErr := session.ProcessWith(prompt, opts)
	s.persistOptions(session, opts)

	view := templates.ResultView{
		RawPrompt:   prompt,
		Result:      res,
		PreviewHTML: PreviewHTML(res),
		ShareCode:   EncodeShare(prompt, opts),
	}
	if saveErr != nil {
		log.Printf("History save failed: %v", saveErr)
		view.Warning = "Result was not saved to history"
	} else if recent := session.Recent(); len(recent) > 0 {
		view.RecordID = recent[0].RecordID
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.ResultComponent(view))
}

func (s *Server) handleExplore(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	prompt := c.FormValue("prompt")
	if prompt == "" {
		return c.Status(400).SendString("Prompt is required")
	}

	opts := optionsFromForm(c)
	exp, saveErr := session.ExploreWith(prompt, opts)
	s.persistOptions(session, opts)

	view := templates.ResultView{
		RawPrompt:   prompt,
		Result:      exp.Result,
		PreviewHTML: PreviewHTML(exp.Result),
		ShareCode:   EncodeShare(prompt, opts),
	}
	if saveErr != nil {
		log.Printf("History save failed: %v", saveErr)
		view.Warning = "Result was not saved to history"
	} else if recent := session.Recent(); len(recent) > 0 {
		view.RecordID = recent[0].RecordID
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.ExplorationComponent(exp, view))
}

func (s *Server) handleHistory(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).SendString("Failed to get session: " + err.Error())
	}

	var records []history.Record
	if s.store != nil {
		records, err = s.store.ListRecords(session.ID, historyPageSize)
		if err != nil {
			return c.Status(500).SendString("Failed to load history: " + err.Error())
		}
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.HistoryPage(records))
}

func (s *Server) handleRecord(c *fiber.Ctx) error {
	rec, status, err := s.loadRecord(c.Params("id"))
	if err != nil {
		return c.Status(status).SendString(err.Error())
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.RecordPage(templates.ResultView{
		RawPrompt:   rec.RawPrompt,
		Result:      rec.Result,
		RecordID:    rec.ID,
		PreviewHTML: PreviewHTML(rec.Result),
	}))
}

func (s *Server) handleDownload(c *fiber.Ctx) error {
	rec, status, err := s.loadRecord(c.Params("id"))
	if err != nil {
		return c.Status(status).SendString(err.Error())
	}

	format := c.Query("format", "txt")
	body, contentType, err := ExportRecord(rec, format)
	if err != nil {
		return c.Status(400).SendString(err.Error())
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "prompt-"+rec.ID+"."+format))
	return c.Send(body)
}

// loadRecord fetches a stored record, mapping store errors to HTTP statuses.
func (s *Server) loadRecord(id string) (history.Record, int, error) {
	if s.store == nil {
		return history.Record{}, 404, errors.New("history is disabled")
	}

	rec, err := s.store.GetRecord(id)
	if errors.Is(err, history.ErrRecordNotFound) {
		return history.Record{}, 404, errors.New("record not found")
	}
	if err != nil {
		return history.Record{}, 500, fmt.Errorf("failed to load record: %w", err)
	}
	return rec, 200, nil
}

func (s *Server) handleShare(c *fiber.Ctx) error {
	prompt, opts, err := DecodeShare(c.Params("code"))
	if err != nil {
		return c.Status(400).SendString("Invalid share code")
	}

	c.Set("Content-Type", htmlContentType)
	return s.renderComponent(c, templates.HomePage(templates.FormState{
		Prompt:  prompt,
		Options: opts,
		Locales: locale.Supported(),
	}))
}

// apiRewriteRequest is the JSON body accepted by the rewrite API.
type apiRewriteRequest struct {
	Prompt  string          `json:"prompt"`
	Options rewrite.Options `json:"options"`
}

func (s *Server) handleAPIRewrite(c *fiber.Ctx) error {
	var req apiRewriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Prompt == "" {
		return c.Status(400).JSON(fiber.Map{"error": "prompt is required"})
	}

	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := session.ProcessWith(req.Prompt, req.Options)
	if err != nil {
		log.Printf("History save failed: %v", err)
	}

	return c.JSON(res)
}

// handleStatus returns session and server stats as JSON
func (s *Server) handleStatus(c *fiber.Ctx) error {
	session, err := s.getOrCreateSession(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to get session: " + err.Error()})
	}

	summary := session.Summary()

	status := fiber.Map{
		"session": fiber.Map{
			"id":               session.ID,
			"total_rewrites":   summary.TotalRewrites,
			"explorations":     summary.Explorations,
			"avg_complexity":   summary.AvgComplexity,
			"avg_clarity":      summary.AvgClarity,
			"top_intent":       summary.TopIntent,
			"duration_seconds": summary.Duration.Seconds(),
		},
		"intents":         session.IntentBreakdown(),
		"active_sessions": s.sessionManager.ActiveSessions(),
	}
	if s.store != nil {
		if n, err := s.store.CountRecords(); err == nil {
			status["stored_records"] = n
		}
	}

	return c.JSON(status)
}

// optionsFromForm reads the rewrite options off a form submission. Unknown
// values are left as-is; the pipeline defaults them.
func optionsFromForm(c *fiber.Ctx) rewrite.Options {
	return rewrite.Options{
		Language:       c.FormValue("language"),
		Objective:      rewrite.Objective(c.FormValue("objective")),
		ReasoningLevel: rewrite.ReasoningLevel(c.FormValue("reasoning")),
		Role:           c.FormValue("role"),
		ContentType:    rewrite.ContentType(c.FormValue("contentType")),
	}
}

// persistOptions saves the session's last-used options for form prefill.
func (s *Server) persistOptions(session *app.RewriteSession, opts rewrite.Options) {
	session.SetOptions(opts)
	if s.store == nil {
		return
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return
	}
	if err := s.store.SetPreference(session.ID, optionsPrefKey, string(data)); err != nil {
		log.Printf("Preference save failed: %v", err)
	}
}

// restoreOptions loads persisted options, falling back to the live session.
func (s *Server) restoreOptions(session *app.RewriteSession) rewrite.Options {
	opts := session.CurrentOptions()
	if s.store == nil {
		return opts
	}
	value, ok, err := s.store.GetPreference(session.ID, optionsPrefKey)
	if err != nil || !ok {
		return opts
	}
	var saved rewrite.Options
	if err := json.Unmarshal([]byte(value), &saved); err != nil {
		return opts
	}
	return saved
}

// Run starts the web server
func (s *Server) Run(address string) error {
	if address == "" {
		address = defaultAddress
	}

	log.Printf("Starting web server on http://localhost%s", address)
	log.Printf("Session management: enabled with %v max age", sessionMaxAge)

	return s.app.Listen(address)
}
