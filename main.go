// pattern-timer is a phase-sequenced interval timer for the terminal.
//
// It drives repeating phase patterns (pomodoro cycles, guided breathing)
// and free-form countdown/count-up timers through a Bubbletea TUI, with
// desktop notifications and an audio cue on phase transitions.
//
// Usage:
//
//	pattern-timer [flags]
//
// Flags:
//
//	-config string   Path to configuration file (default: ~/.config/pattern-timer/config.toml)
//	-state string    Path to the preference state file (overrides config)
//	-pattern string  Pattern id to load at startup (overrides the saved one)
//	-list-patterns   Print the pattern catalog and exit
//	-theme string    Color theme name (overrides config)
//	-no-notify       Disable desktop notifications for this session
//	-no-sound        Disable the audio cue for this session
//	-verbose         Enable verbose logging
//	-version         Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/notify"
	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
	"github.com/NamesAreOverrated/pattern-timer/pkg/views"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file")
		statePath    = flag.String("state", "", "Path to the preference state file")
		startPattern = flag.String("pattern", "", "Pattern id to load at startup")
		listPatterns = flag.Bool("list-patterns", false, "Print the pattern catalog and exit")
		themeName    = flag.String("theme", "", "Color theme name")
		noNotify     = flag.Bool("no-notify", false, "Disable desktop notifications for this session")
		noSound      = flag.Bool("no-sound", false, "Disable the audio cue for this session")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("pattern-timer %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *statePath != "" {
		cfg.General.StateFile = *statePath
	}
	theme.SetCurrent(cfg.Theme.Name)

	// Merge custom patterns over the builtins before anything reads the
	// catalog.
	if err := pattern.LoadDir(cfg.General.PatternDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load custom patterns: %v\n", err)
		os.Exit(1)
	}

	if *listPatterns {
		printCatalog()
		os.Exit(0)
	}

	// The TUI needs a real terminal on stdout.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "pattern-timer requires an interactive terminal (use -list-patterns for scripted output)")
		os.Exit(1)
	}

	// Logging goes to a file only; the TUI owns the terminal.
	logger, logFile, err := setupLogging(cfg, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Load persisted preferences. A corrupt store falls back to defaults
	// but is reported rather than silently overwritten later.
	state, err := config.LoadState(cfg.General.StateFile)
	if err != nil {
		logger.Warn("preference store unreadable, using defaults", "error", err)
	}
	if *noNotify || os.Getenv("PATTERN_TIMER_NO_NOTIFY") != "" {
		state.NotificationsEnabled = false
	}
	if *noSound || os.Getenv("PATTERN_TIMER_NO_SOUND") != "" {
		state.SoundEnabled = false
	}

	eng := engine.New()
	if id := pickStartPattern(*startPattern, state.LastPatternID); id != "" {
		if err := eng.SetPattern(id); err != nil {
			logger.Warn("startup pattern unavailable", "pattern", id, "error", err)
		}
	}

	dispatcher := notify.New(
		notify.NewDesktopToaster(cfg.Notifications.Icon, logger),
		notify.NewBeepPlayer(logger),
		logger,
	)

	model := app.NewModel(cfg, &state, app.Deps{
		Engine:     eng,
		Dispatcher: dispatcher,
		Logger:     logger,
		StatePath:  cfg.General.StateFile,
	},
		views.NewTimer(eng, &state, logger),
		views.NewPatterns(eng, &state, logger),
		views.NewSettings(&state),
	)

	logger.Info("starting pattern-timer",
		"version", version,
		"tick_interval", cfg.General.TickInterval.Duration,
		"patterns", len(pattern.IDs()),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "pattern-timer: %v\n", err)
		os.Exit(1)
	}

	if err := config.SaveState(cfg.General.StateFile, state); err != nil {
		logger.Error("failed to save preferences on exit", "error", err)
	}
}

// pickStartPattern prefers the -pattern flag over the saved selection.
func pickStartPattern(flagID, savedID string) string {
	if flagID != "" {
		return flagID
	}
	return savedID
}

// printCatalog lists the patterns in scripted-output form.
func printCatalog() {
	for _, id := range pattern.IDs() {
		p, ok := pattern.Get(id)
		if !ok {
			continue
		}
		repeat := ""
		if p.Repeat {
			repeat = " (repeats)"
		}
		fmt.Printf("%-20s %s, %d phases%s\n", id, p.Name, len(p.Phases), repeat)
	}
}

// setupLogging opens the configured log file and builds the process
// logger. The file stays open for the life of the program.
func setupLogging(cfg *config.Config, verbose bool) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	level := parseLogLevel(cfg.General.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
