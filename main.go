package main

import (
	"fmt"
	"os"
	"strings"

	"promptforge/cli"
	"promptforge/internal/app"
	"promptforge/internal/history"
	"promptforge/internal/web"
	"promptforge/pkg/config"
)

// printUsage displays the usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <mode> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  cli           Start in CLI mode (interactive terminal)\n")
	fmt.Fprintf(os.Stderr, "  web           Start in web mode (HTTP server)\n")
	fmt.Fprintf(os.Stderr, "  \"<prompt>\"    Rewrite a single prompt and exit (--json for JSON output)\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
	fmt.Fprintf(os.Stderr, "  PORT                Optional: Web server port number (default: %d)\n", config.DefaultPort)
	fmt.Fprintf(os.Stderr, "  HISTORY_PATH        Optional: SQLite history file (default: %s, empty disables)\n", config.DefaultHistoryPath)
	fmt.Fprintf(os.Stderr, "  LOG_DIR             Optional: Usage log directory (default: %s)\n", config.DefaultLogDir)
	fmt.Fprintf(os.Stderr, "  PROMPTFORGE_CONFIG  Optional: YAML config file (default: %s)\n", config.DefaultConfigFile)
	fmt.Fprintf(os.Stderr, "  DEFAULT_OBJECTIVE   Optional: precision, brevity, creativity, safety, speed\n")
}

// openStore opens the history store, or returns nil when history is disabled.
func openStore(cfg *config.Config) (*history.Store, error) {
	if cfg.HistoryPath == "" {
		return nil, nil
	}
	return history.NewStore(cfg.HistoryPath)
}

func runWeb(cfg *config.Config, store *history.Store) error {
	return web.NewWebRunner(cfg.Address()).Run(web.ServerConfig{
		Defaults:   cfg.Defaults.Options(),
		LogDir:     cfg.LogDir,
		KeepRecent: cfg.KeepRecent,
		Store:      store,
	})
}

func runCLI(cfg *config.Config, store *history.Store) error {
	cliCfg := cli.Config{
		Defaults:   cfg.Defaults.Options(),
		LogDir:     cfg.LogDir,
		KeepRecent: cfg.KeepRecent,
	}
	if store != nil {
		cliCfg.Recorder = store
	}
	return cli.Run(cliCfg)
}

// runDirect rewrites one prompt and exits. Direct invocations stay out of
// the history store; they still land in the usage logs.
func runDirect(cfg *config.Config, prompt string, asJSON bool) error {
	usageLog, err := app.NewUsageLog(cfg.LogDir, app.GenerateSessionID("direct"), "direct")
	if err != nil {
		return err
	}
	defer usageLog.Close()

	service := app.NewDirectRewriteService(usageLog, os.Stdout)
	return service.Execute(prompt, cfg.Defaults.Options(), asJSON)
}

func run(args []string) error {
	if len(args) < 2 {
		printUsage()
		return fmt.Errorf("mode argument required")
	}

	// Load configuration from file and environment
	cfg, err := config.Load(os.Stderr)
	if err != nil {
		return err
	}

	switch args[1] {
	case "cli", "web":
		store, err := openStore(cfg)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		if store != nil {
			defer store.Close()
		}
		if args[1] == "web" {
			return runWeb(cfg, store)
		}
		return runCLI(cfg, store)
	default:
		// Handle direct rewrite mode
		asJSON := false
		var parts []string
		for _, arg := range args[1:] {
			if arg == "--json" || arg == "-json" {
				asJSON = true
				continue
			}
			parts = append(parts, arg)
		}

		prompt := strings.Join(parts, " ")
		if strings.TrimSpace(prompt) == "" {
			printUsage()
			return fmt.Errorf("prompt required")
		}
		return runDirect(cfg, prompt, asJSON)
	}
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting promptforge: %s\n", err)
		os.Exit(1)
	}
}
