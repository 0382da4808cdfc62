// Package main provides the CLI entrypoint for sidebyside.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/sidebyside/internal/auth"
	"github.com/verte-zerg/sidebyside/internal/catalog"
	"github.com/verte-zerg/sidebyside/internal/clipboard"
	"github.com/verte-zerg/sidebyside/internal/config"
	"github.com/verte-zerg/sidebyside/internal/highlight"
	"github.com/verte-zerg/sidebyside/internal/logging"
	"github.com/verte-zerg/sidebyside/internal/platform"
	"github.com/verte-zerg/sidebyside/internal/posts"
	"github.com/verte-zerg/sidebyside/internal/state"
	"github.com/verte-zerg/sidebyside/internal/store"
	"github.com/verte-zerg/sidebyside/internal/tui"
)

var (
	rootSection  string
	rootEngine   string
	rootLogLevel string
	rootAckMs    int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sidebyside",
		Short:         "React and Angular, side by side, in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBrowseCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&rootSection, "section", config.DefaultSection, "section to open first")
	rootCmd.Flags().StringVar(&rootEngine, "engine", config.DefaultEngine, "highlight engine (heuristic or chroma)")
	rootCmd.Flags().IntVar(&rootAckMs, "ack-ms", config.DefaultAckMs, "how long a copy stays acknowledged, in milliseconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newHighlightCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newStorageCmd())
	rootCmd.AddCommand(newPostsCmd())
	rootCmd.AddCommand(newStrengthCmd())

	return rootCmd
}

// settings is the merged view of flags and the config file.
type settings struct {
	section  string
	engine   highlight.Engine
	ackDelay time.Duration
	baseURL  string
	timeout  time.Duration
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "section", &rootSection, fileCfg.UI.Section)
	applyStringConfig(cmd, "engine", &rootEngine, fileCfg.Highlight.Engine)
	applyStringConfig(cmd, "log-level", &rootLogLevel, fileCfg.Log.Level)
	applyIntConfig(cmd, "ack-ms", &rootAckMs, fileCfg.Clipboard.AckMs)
	if rootAckMs <= 0 {
		return settings{}, fmt.Errorf("--ack-ms must be > 0")
	}

	engine, err := highlight.ParseEngine(rootEngine)
	if err != nil {
		return settings{}, err
	}
	s := settings{
		section:  rootSection,
		engine:   engine,
		ackDelay: time.Duration(rootAckMs) * time.Millisecond,
		baseURL:  config.DefaultBaseURL,
		timeout:  time.Duration(config.DefaultTimeoutMs) * time.Millisecond,
	}
	if fileCfg.Fetch.BaseURL != nil {
		s.baseURL = *fileCfg.Fetch.BaseURL
	}
	if fileCfg.Fetch.TimeoutMs != nil {
		s.timeout = time.Duration(*fileCfg.Fetch.TimeoutMs) * time.Millisecond
	}
	return s, nil
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()
	logger, err := logging.New(logging.Options{Level: rootLogLevel, Writer: logFile})
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	fetcher, err := posts.NewClient(cfg.baseURL, cfg.timeout)
	if err != nil {
		return fmt.Errorf("invalid fetch.base-url: %w", err)
	}

	env := platform.Detect()
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	local := store.NewLocal(st, env, logger)
	session := auth.NewSession(cmd.Context(), local, logger)

	m := tui.NewModel(tui.Options{
		Catalog:      cat,
		Session:      session,
		Local:        local,
		Todos:        state.NewTodoStore(),
		Posts:        fetcher,
		Clipboard:    clipboard.NewSystem(env),
		AckDelay:     cfg.ackDelay,
		Highlighter:  highlight.NewCache(cfg.engine),
		StartSection: cfg.section,
		Logger:       logger,
		Env:          env,
	})
	defer m.Close()

	logger.Info("starting browser")
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// cliLogger writes human-readable logs to the command's stderr.
func cliLogger(cmd *cobra.Command) (*logging.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:         rootLogLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return logger, nil
}

// openLocal opens the key/value store behind the local storage facade. The
// returned func closes it.
func openLocal(logger *logging.Logger) (*store.Local, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return store.NewLocal(st, platform.Detect(), logger), func() { closeStore(st) }, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sidebyside configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# section = %q            # Section opened on start

[highlight]
# engine = %q       # heuristic or chroma

[clipboard]
# ack-ms = %d               # How long "Copied!" stays visible

[fetch]
# base-url = %q
# timeout-ms = %d

[log]
# level = %q
`,
		config.DefaultSection,
		config.DefaultEngine,
		config.DefaultAckMs,
		config.DefaultBaseURL,
		config.DefaultTimeoutMs,
		config.DefaultLogLevel,
	)
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

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func withTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
