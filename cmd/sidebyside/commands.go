package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sidebyside/internal/auth"
	"github.com/verte-zerg/sidebyside/internal/catalog"
	"github.com/verte-zerg/sidebyside/internal/clipboard"
	"github.com/verte-zerg/sidebyside/internal/highlight"
	"github.com/verte-zerg/sidebyside/internal/logging"
	"github.com/verte-zerg/sidebyside/internal/model"
	"github.com/verte-zerg/sidebyside/internal/platform"
	"github.com/verte-zerg/sidebyside/internal/posts"
	"github.com/verte-zerg/sidebyside/internal/state"
	"github.com/verte-zerg/sidebyside/internal/store"
)

const (
	formatANSI = "ansi"
	formatHTML = "html"
)

var (
	showFormat string

	highlightLang   string
	highlightFormat string

	loginPassword string

	postsID    int
	postsLimit int
)

func validateFormat(format string) error {
	switch format {
	case formatANSI, formatHTML:
		return nil
	default:
		return fmt.Errorf("--format must be %s or %s", formatANSI, formatHTML)
	}
}

func render(engine highlight.Engine, snippet model.CodeSnippet, format string) string {
	markup := engine.Highlight(snippet.Text, snippet.Language)
	if format == formatHTML {
		return markup
	}
	return highlight.RenderANSI(markup)
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List catalog sections",
		Args:  cobra.NoArgs,
		RunE:  runSectionsCmd,
	}
}

func runSectionsCmd(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	rows := make([][]string, 0, cat.Len())
	for _, s := range cat.Sections() {
		demo := string(s.Demo)
		if demo == "" {
			demo = "-"
		}
		rows = append(rows, []string{s.Path, s.Label, s.Category, demo, strconv.Itoa(len(s.Comparisons))})
	}
	lines := formatTable([]string{"PATH", "LABEL", "CATEGORY", "DEMO", "COMPARISONS"}, rows, map[int]bool{4: true})
	return writeLines(cmd.OutOrStdout(), lines)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <section>",
		Short: "Print the comparisons of a section",
		Args:  cobra.ExactArgs(1),
		RunE:  runShowCmd,
	}
	cmd.Flags().StringVar(&showFormat, "format", formatANSI, "output format (ansi or html)")
	cmd.Flags().StringVar(&rootEngine, "engine", rootEngine, "highlight engine (heuristic or chroma)")
	return cmd
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(showFormat); err != nil {
		return err
	}
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	section, ok := cat.Section(args[0])
	if !ok {
		return fmt.Errorf("unknown section %q (run: sidebyside sections)", args[0])
	}

	var b strings.Builder
	b.WriteString(section.Title + "\n")
	if section.Subtitle != "" {
		b.WriteString(section.Subtitle + "\n")
	}
	for i, cmp := range section.Comparisons {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, cmp.Title)
		if cmp.Description != "" {
			b.WriteString(cmp.Description + "\n")
		}
		if cmp.HasReact() {
			writeSnippet(&b, cfg.engine, "React", cmp.React, showFormat)
		}
		writeSnippet(&b, cfg.engine, "Angular", cmp.Angular, showFormat)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), b.String())
	return err
}

func writeSnippet(b *strings.Builder, engine highlight.Engine, label string, snippet model.CodeSnippet, format string) {
	fmt.Fprintf(b, "\n-- %s (%s)\n", label, highlight.DisplayName(snippet.Language))
	b.WriteString(render(engine, snippet, format))
	b.WriteString("\n")
}

func newHighlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Highlight a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHighlightCmd,
	}
	cmd.Flags().StringVar(&highlightLang, "lang", string(model.LangTSX), "language tag of the input")
	cmd.Flags().StringVar(&highlightFormat, "format", formatANSI, "output format (ansi or html)")
	cmd.Flags().StringVar(&rootEngine, "engine", rootEngine, "highlight engine (heuristic or chroma)")
	return cmd
}

func runHighlightCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(highlightFormat); err != nil {
		return err
	}
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	var data []byte
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	snippet := model.CodeSnippet{Text: string(data), Language: model.Language(highlightLang)}
	out := render(cfg.engine, snippet, highlightFormat)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <section> <n> [react|angular]",
		Short: "Copy a snippet to the system clipboard",
		Long:  "Copy the raw code of comparison n (1-based, as printed by show) to the system clipboard.",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runCopyCmd,
	}
}

func runCopyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := cliLogger(cmd)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid comparison number %q", args[1])
	}
	side := catalog.SideReact
	if len(args) == 3 {
		if side, err = catalog.ParseSide(args[2]); err != nil {
			return err
		}
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	snippet, err := cat.Snippet(args[0], n-1, side)
	if err != nil {
		return err
	}

	sys := clipboard.NewSystem(platform.Detect())
	if !sys.Available() {
		return fmt.Errorf("system clipboard is not available here")
	}
	copier := clipboard.New(sys, clipboard.WithAckDelay(cfg.ackDelay), clipboard.WithLogger(logger))
	defer copier.Close()

	ctx, cancel := withTimeout(cmd, cfg.timeout)
	defer cancel()
	if err := copier.Copy(ctx, snippet.Text); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Copied %d lines of %s\n",
		strings.Count(snippet.Text, "\n")+1, highlight.DisplayName(snippet.Language))
	return err
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and remember the user",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoginCmd,
	}
	cmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when omitted)")
	return cmd
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	logger, err := cliLogger(cmd)
	if err != nil {
		return err
	}
	password := loginPassword
	if !cmd.Flags().Changed("password") {
		if password, err = readPassword(cmd); err != nil {
			return err
		}
	}
	form := auth.LoginForm{Email: strings.TrimSpace(args[0]), Password: password}
	if errs := form.Validate(); !errs.Valid() {
		for _, field := range errs.Fields() {
			logErrf("%s: %s\n", field, errs[field])
		}
		return fmt.Errorf("%s", auth.ErrInvalidCredentials)
	}

	local, closeLocal, err := openLocal(logger)
	if err != nil {
		return err
	}
	defer closeLocal()
	if !local.Enabled() {
		logger.Warn("not attached to a terminal; the session will not be remembered")
	}

	session := auth.NewSession(cmd.Context(), local, logger)
	if !session.Login(cmd.Context(), form.Email, form.Password) {
		return fmt.Errorf("%s", auth.ErrInvalidCredentials)
	}
	user, _ := session.User()
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
	return err
}

func readPassword(cmd *cobra.Command) (string, error) {
	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	fd := int(os.Stdin.Fd())
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in user",
		Args:  cobra.NoArgs,
		RunE: withLocal(func(cmd *cobra.Command, _ []string, local *store.Local, logger *logging.Logger) error {
			auth.NewSession(cmd.Context(), local, logger).Logout(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		}),
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: withLocal(func(cmd *cobra.Command, _ []string, local *store.Local, logger *logging.Logger) error {
			user, ok := auth.NewSession(cmd.Context(), local, logger).User()
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return err
		}),
	}
}

func newStorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Manage the local storage demo entries",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value",
		Args:  cobra.ExactArgs(2),
		RunE: withLocal(func(cmd *cobra.Command, args []string, local *store.Local, _ *logging.Logger) error {
			return local.SetDemo(cmd.Context(), args[0], args[1])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a value",
		Args:  cobra.ExactArgs(1),
		RunE: withLocal(func(cmd *cobra.Command, args []string, local *store.Local, _ *logging.Logger) error {
			items, err := local.DemoItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list storage: %w", err)
			}
			for _, item := range items {
				if item.Key == strings.TrimSpace(args[0]) {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), item.Value)
					return err
				}
			}
			return fmt.Errorf("no value stored under %q", args[0])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "rm <key>",
		Aliases: []string{"remove"},
		Short:   "Remove a value",
		Args:    cobra.ExactArgs(1),
		RunE: withLocal(func(cmd *cobra.Command, args []string, local *store.Local, _ *logging.Logger) error {
			return local.RemoveDemo(cmd.Context(), args[0])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored values",
		Args:    cobra.NoArgs,
		RunE: withLocal(func(cmd *cobra.Command, _ []string, local *store.Local, _ *logging.Logger) error {
			items, err := local.DemoItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list storage: %w", err)
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{item.Key, item.Value, item.UpdatedAt.Local().Format(time.DateTime)})
			}
			return writeLines(cmd.OutOrStdout(), formatTable([]string{"KEY", "VALUE", "UPDATED"}, rows, nil))
		}),
	})
	return cmd
}

// withLocal opens local storage and a stderr logger around run.
func withLocal(run func(*cobra.Command, []string, *store.Local, *logging.Logger) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := cliLogger(cmd)
		if err != nil {
			return err
		}
		local, closeLocal, err := openLocal(logger)
		if err != nil {
			return err
		}
		defer closeLocal()
		if !local.Enabled() {
			logger.Warn("not attached to a terminal; local storage is disabled")
		}
		return run(cmd, args, local, logger)
	}
}

func newPostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Fetch posts from the placeholder API",
		Args:  cobra.NoArgs,
		RunE:  runPostsCmd,
	}
	cmd.Flags().IntVar(&postsID, "id", 0, "fetch a single post by id")
	cmd.Flags().IntVar(&postsLimit, "limit", posts.DefaultLimit, "number of posts to list")
	return cmd
}

func runPostsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if postsLimit <= 0 {
		return fmt.Errorf("--limit must be > 0")
	}
	client, err := posts.NewClient(cfg.baseURL, cfg.timeout)
	if err != nil {
		return fmt.Errorf("invalid fetch.base-url: %w", err)
	}
	ctx, cancel := withTimeout(cmd, cfg.timeout)
	defer cancel()

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("id") {
		res := posts.FetchOne(ctx, client, posts.ClampPostID(postsID))
		if res.Error != "" {
			return fmt.Errorf("failed to fetch post: %s", res.Error)
		}
		_, err := fmt.Fprintf(out, "#%d %s\n\n%s\n", res.Data.ID, res.Data.Title, res.Data.Body)
		return err
	}
	res := posts.FetchList(ctx, client, postsLimit)
	if res.Error != "" {
		return fmt.Errorf("failed to fetch posts: %s", res.Error)
	}
	rows := make([][]string, 0, len(res.Data))
	for _, p := range res.Data {
		rows = append(rows, []string{strconv.Itoa(p.ID), strconv.Itoa(p.UserID), p.Title})
	}
	return writeLines(out, formatTable([]string{"ID", "USER", "TITLE"}, rows, map[int]bool{0: true, 1: true}))
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Score a password",
		Args:  cobra.ExactArgs(1),
		RunE:  runStrengthCmd,
	}
}

func runStrengthCmd(cmd *cobra.Command, args []string) error {
	checks := state.CheckPassword(args[0])
	score := checks.Passed()
	level := state.LevelFor(score)
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(level.Color)).Render(level.Label)

	lines := []string{fmt.Sprintf("Score %d/%d  %s (%s)", score, state.MaxScore, label, level.Color)}
	for _, c := range []struct {
		ok   bool
		text string
	}{
		{checks.Length, fmt.Sprintf("At least %d characters", state.MinPasswordLength)},
		{checks.Upper, "Uppercase letter"},
		{checks.Lower, "Lowercase letter"},
		{checks.Digit, "Number"},
		{checks.Special, "Special character"},
	} {
		mark := "[ ]"
		if c.ok {
			mark = "[x]"
		}
		lines = append(lines, mark+" "+c.text)
	}
	return writeLines(cmd.OutOrStdout(), lines)
}
