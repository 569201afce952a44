package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"promptforge/internal/app"
	"promptforge/internal/locale"
	"promptforge/internal/rewrite"
)

const (
	cmdExit      = "exit"
	cmdReset     = "/reset"
	cmdRole      = "/role"
	cmdObjective = "/objective"
	cmdReasoning = "/reasoning"
	cmdLanguage  = "/language"
	cmdType      = "/type"
	cmdExplore   = "/explore"
	cmdHistory   = "/history"
	cmdStats     = "/stats"
	cmdJSON      = "/json"
	cmdHelp      = "/help"
)

// Config carries everything the interactive mode needs from main.
type Config struct {
	Defaults   rewrite.Options
	LogDir     string
	KeepRecent int
	Recorder   app.Recorder // optional, nil disables persistence

	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
}

// Interactive CLI session wrapping a rewrite session with terminal I/O
type CLISession struct {
	session *app.RewriteSession
	reader  *bufio.Reader
	out     io.Writer
	asJSON  bool
}

// printMOTD displays the PromptForge ASCII art banner
func printMOTD(w io.Writer) {
	fmt.Fprint(w, `
███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
█████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝

        🔧 PromptForge: Deterministic Prompt Rewriting
        ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
`)
}

// readMultilineInput reads user input until an empty line is entered
func (s *CLISession) readMultilineInput(label string) (string, error) {
	fmt.Fprintln(s.out, label)
	var userLines []string
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			switch err.Error() {
			case "EOF":
				if len(userLines) == 0 {
					return "", err
				}
				// If we have some input, treat it as end of input
				return strings.TrimSpace(strings.Join(userLines, "\n")), nil
			default:
				return "", err
			}
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		userLines = append(userLines, line)
	}
	return strings.TrimSpace(strings.Join(userLines, "\n")), nil
}

// splitCommand separates the leading command word from its argument text.
func splitCommand(input string) (string, string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", ""
	}
	rest := strings.TrimSpace(strings.TrimPrefix(input, fields[0]))
	return fields[0], rest
}

// handleCommand dispatches a slash command
func (s *CLISession) handleCommand(input string) {
	command, rest := splitCommand(input)

	switch command {
	case cmdReset:
		s.session.Reset()
		fmt.Fprintln(s.out, "Options and history reset.")
	case cmdRole, cmdObjective, cmdReasoning, cmdLanguage, cmdType:
		s.handleOption(command, rest)
	case cmdExplore:
		prompt := rest
		if prompt == "" {
			var err error
			prompt, err = s.readMultilineInput("Prompt to explore (end with empty line):")
			if err != nil || prompt == "" {
				fmt.Fprintln(s.out, "No prompt given.")
				return
			}
		}
		s.handleExplore(prompt)
	case cmdHistory:
		s.showHistory()
	case cmdStats:
		s.showStats()
	case cmdJSON:
		s.asJSON = !s.asJSON
		if s.asJSON {
			fmt.Fprintln(s.out, "JSON output enabled.")
		} else {
			fmt.Fprintln(s.out, "JSON output disabled.")
		}
	case cmdHelp:
		s.printHelp()
	default:
		fmt.Fprintf(s.out, "Unknown command %q, type %s for help.\n", command, cmdHelp)
	}
}

// handleOption updates one session option, or shows its choices when no
// value is given.
func (s *CLISession) handleOption(command, value string) {
	if value == "" {
		s.showOptionHelp(command)
		return
	}

	opts := s.session.CurrentOptions()
	switch command {
	case cmdRole:
		opts.Role = value
	case cmdObjective:
		opts.Objective = rewrite.Objective(value)
	case cmdReasoning:
		opts.ReasoningLevel = rewrite.ReasoningLevel(value)
	case cmdLanguage:
		opts.Language = value
	case cmdType:
		opts.ContentType = rewrite.ContentType(value)
	}
	s.session.SetOptions(opts)
	s.showOptions()
}

// showOptionHelp prints the current value and choices for one option
func (s *CLISession) showOptionHelp(command string) {
	opts := s.session.CurrentOptions()

	switch command {
	case cmdRole:
		fmt.Fprintf(s.out, "Current role: %s\n", orDefault(opts.Role))
		fmt.Fprintln(s.out, "Any persona works, e.g. /role Patent attorney")
	case cmdObjective:
		fmt.Fprintf(s.out, "Current objective: %s\n", orDefault(string(opts.Objective)))
		fmt.Fprintln(s.out, "Choose one of: precision, brevity, creativity, safety, speed")
	case cmdReasoning:
		fmt.Fprintf(s.out, "Current reasoning level: %s\n", orDefault(string(opts.ReasoningLevel)))
		fmt.Fprintln(s.out, "Choose one of: low, medium, high")
	case cmdLanguage:
		fmt.Fprintf(s.out, "Current language: %s\n", orDefault(opts.Language))
		fmt.Fprintln(s.out, "Supported locales:")
		for _, loc := range locale.Supported() {
			fmt.Fprintf(s.out, "   %-7s %s\n", loc.Code, loc.Native)
		}
	case cmdType:
		fmt.Fprintf(s.out, "Current content type: %s\n", orDefault(string(opts.ContentType)))
		fmt.Fprintln(s.out, "Choose one of: text, video, image, audio, presentation")
	}
}

// showOptions displays the full current option set
func (s *CLISession) showOptions() {
	opts := s.session.CurrentOptions()

	fmt.Fprintln(s.out, "\nCurrent options:")
	fmt.Fprintf(s.out, "   Role: %s\n", orDefault(opts.Role))
	fmt.Fprintf(s.out, "   Objective: %s\n", orDefault(string(opts.Objective)))
	fmt.Fprintf(s.out, "   Reasoning: %s\n", orDefault(string(opts.ReasoningLevel)))
	fmt.Fprintf(s.out, "   Language: %s\n", orDefault(opts.Language))
	fmt.Fprintf(s.out, "   Content Type: %s\n", orDefault(string(opts.ContentType)))
	fmt.Fprintln(s.out)
}

// showHistory displays the recent rewrites of this session
func (s *CLISession) showHistory() {
	recent := s.session.Recent()
	if len(recent) == 0 {
		fmt.Fprintln(s.out, "No rewrites in this session yet.")
		return
	}

	fmt.Fprintln(s.out, "\nRecent rewrites (newest first):")
	for i, r := range recent {
		marker := ""
		if r.Explored {
			marker = " (explored)"
		}
		fmt.Fprintf(s.out, "   %d. [%s] %s%s: %s\n",
			i+1, r.CreatedAt.Format("15:04:05"), r.Result.Intent, marker, preview(r.RawPrompt, 48))
	}
	fmt.Fprintln(s.out)
}

// showStats displays current session statistics
func (s *CLISession) showStats() {
	summary := s.session.Summary()

	fmt.Fprintln(s.out, "\nSession Statistics:")
	fmt.Fprintf(s.out, "   Rewrites: %d total (%d explorations)\n",
		summary.TotalRewrites, summary.Explorations)
	fmt.Fprintf(s.out, "   Avg Complexity: %d/100 | Avg Clarity: %d/100\n",
		summary.AvgComplexity, summary.AvgClarity)
	if summary.TopIntent != "" {
		fmt.Fprintf(s.out, "   Top Intent: %s\n", summary.TopIntent)
	}
	fmt.Fprintf(s.out, "   Session Duration: %v\n", summary.Duration.Round(time.Second))

	breakdown := s.session.IntentBreakdown()
	if len(breakdown) > 0 {
		keys := make([]string, 0, len(breakdown))
		for k := range breakdown {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(s.out, "   Intents:")
		for _, k := range keys {
			fmt.Fprintf(s.out, "     - %s: %d\n", k, breakdown[k])
		}
	}
	fmt.Fprintln(s.out)
}

// handlePrompt rewrites a prompt with the current options and prints it
func (s *CLISession) handlePrompt(rawPrompt string) {
	res, err := s.session.Process(rawPrompt)
	s.printResult(res)
	if err != nil {
		fmt.Fprintf(s.out, "Warning: %v\n", err)
	}
}

// handleExplore runs the multi-path view and prints the winning result
func (s *CLISession) handleExplore(rawPrompt string) {
	exp, err := s.session.ExploreWith(rawPrompt, s.session.CurrentOptions())

	fmt.Fprintln(s.out, "\nExploration paths:")
	for i, p := range exp.Paths {
		marker := " "
		if i == exp.Selected {
			marker = "*"
		}
		fmt.Fprintf(s.out, " %s %d. %-12s %.2f  %s\n", marker, i+1, p.Label, p.Confidence, p.Description)
	}

	s.printResult(exp.Result)
	if err != nil {
		fmt.Fprintf(s.out, "Warning: %v\n", err)
	}
}

func (s *CLISession) printResult(res rewrite.Result) {
	fmt.Fprintln(s.out)
	if s.asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintln(s.out, "Error encoding result:", err)
			return
		}
		fmt.Fprintln(s.out, string(data))
		return
	}

	if err := app.WriteResult(s.out, res); err != nil {
		fmt.Fprintln(s.out, "Error writing result:", err)
		return
	}
	fmt.Fprintln(s.out)
}

func (s *CLISession) printHelp() {
	fmt.Fprint(s.out, `
Commands:
  exit            Leave the session
  /reset          Restore default options and clear history
  /role <text>    Set the persona, e.g. /role Patent attorney
  /objective <v>  precision, brevity, creativity, safety, speed
  /reasoning <v>  low, medium, high
  /language <tag> BCP 47 tag, e.g. /language fr-FR (bare /language lists locales)
  /type <v>       text, video, image, audio, presentation
  /explore <p>    Rewrite a prompt through the multi-path view
  /history        Show recent rewrites in this session
  /stats          Show session statistics
  /json           Toggle JSON output
  /help           Show this help

Anything else is rewritten with the current options.

`)
}

func orDefault(v string) string {
	if v == "" {
		return "(default)"
	}
	return v
}

// preview truncates a prompt for one-line history display.
func preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// Run starts the interactive CLI mode
func Run(cfg Config) error {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	printMOTD(out)
	fmt.Fprintln(out, "Welcome to the interactive prompt rewriter!")
	fmt.Fprintln(out, "Commands: 'exit', '/reset', '/role', '/objective', '/reasoning', '/language', '/type', '/explore', '/history', '/stats', '/json', '/help'")
	fmt.Fprintln(out)

	session, err := app.NewRewriteSession(app.SessionConfig{
		ID:         app.GenerateSessionID("cli"),
		Mode:       "cli",
		Defaults:   cfg.Defaults,
		LogDir:     cfg.LogDir,
		KeepRecent: cfg.KeepRecent,
		Recorder:   cfg.Recorder,
	})
	if err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}
	defer func() {
		summary := session.Summary()
		fmt.Fprintf(out, "\nSession Summary: %d rewrites, %d explorations, %v duration\n",
			summary.TotalRewrites, summary.Explorations, summary.Duration.Round(time.Second))
		session.Close()
	}()

	cli := &CLISession{
		session: session,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	for {
		userInput, inputErr := cli.readMultilineInput("Prompt (end with empty line):")
		if inputErr != nil {
			switch inputErr.Error() {
			case "EOF":
				fmt.Fprintln(out, "\nGoodbye!")
				return nil
			default:
				fmt.Fprintln(out, "Error reading input:", inputErr)
				continue
			}
		}

		switch {
		case userInput == "":
			continue
		case userInput == cmdExit:
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		case strings.HasPrefix(userInput, "/"):
			cli.handleCommand(userInput)
		default:
			cli.handlePrompt(userInput)
		}
	}
}
