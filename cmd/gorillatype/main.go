// Package main provides the CLI entrypoint for gorillatype.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/gorillatype/internal/config"
	"github.com/verte-zerg/gorillatype/internal/logging"
	"github.com/verte-zerg/gorillatype/internal/model"
	"github.com/verte-zerg/gorillatype/internal/passage"
	"github.com/verte-zerg/gorillatype/internal/report"
	"github.com/verte-zerg/gorillatype/internal/trial"
	"github.com/verte-zerg/gorillatype/internal/tui"
)

const (
	defaultCount    = 0
	defaultLogLevel = "info"
)

var (
	trialFile  string
	trialCount int
	logFile    string
	logLevel   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gorillatype",
		Short:         "Terminal typing speed trial",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrialCmd,
	}

	rootCmd.Flags().StringVarP(&trialFile, "file", "f", "", "path to file that contains the text")
	rootCmd.Flags().IntVarP(&trialCount, "count", "c", defaultCount, "characters to type; 0 uses the whole text, a larger count repeats it")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTrialCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "file", &trialFile, fileCfg.Trial.File)
	applyIntConfig(cmd, "count", &trialCount, fileCfg.Trial.Count)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	cfg := model.Config{
		File:     trialFile,
		Count:    trialCount,
		LogFile:  logFile,
		LogLevel: logLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Config{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	session, err := newSession(cfg)
	if err != nil {
		return err
	}
	logger.Info("trial prepared", "file", cfg.File, "count", cfg.Count, "chars", session.Passage().Len())

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	program := tea.NewProgram(tui.NewModel(session, logger), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	m, ok := final.(*tui.Model)
	if !ok {
		return fmt.Errorf("unexpected TUI model %T", final)
	}
	return printOutcome(cmd.OutOrStdout(), m)
}

func newSession(cfg model.Config) (*trial.Session, error) {
	source, err := passage.Load(cfg.File)
	if err != nil {
		return nil, err
	}
	text, err := passage.Normalize(source, cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare text: %w", err)
	}
	session, err := trial.NewSession(text, trial.NewMonotonicClock())
	if err != nil {
		return nil, fmt.Errorf("failed to start trial: %w", err)
	}
	return session, nil
}

func printOutcome(w io.Writer, m *tui.Model) error {
	res, err := m.Result()
	switch {
	case errors.Is(err, trial.ErrNotCompleted):
		logErrln("Trial abandoned.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to compute speed: %w", err)
	}
	if err := report.Render(w, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the config template unless a file already exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# gorillatype configuration
# Uncomment a value to enable it. CLI flags override config values.

[trial]
# file = "/path/to/text.txt"  # Text to type
# count = %d                    # Characters to type (0 = whole text)

[log]
# file = %q
# level = %q
`,
		defaultCount,
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("--file is required")
	}
	if cfg.Count < 0 {
		return fmt.Errorf("--count must be >= 0")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
