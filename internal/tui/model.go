// Package tui provides the Bubble Tea catalog browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

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
	sidebarWidth  = 30
	wideMainWidth = 120
	fallbackWidth = 80
	eventBuffer   = 64
)

// Options wires the model to the rest of the application.
type Options struct {
	Catalog      *catalog.Catalog
	Session      *auth.Session
	Local        *store.Local
	Todos        *state.TodoStore
	Posts        posts.Fetcher
	Clipboard    clipboard.Writer
	Clock        clipboard.Clock
	AckDelay     time.Duration
	Highlighter  *highlight.Cache
	StartSection string
	Logger       *logging.Logger
	// Env seeds the layout size until the first resize arrives.
	Env platform.Env
}

type screen int

const (
	screenLogin screen = iota
	screenShell
)

type codeBlock struct {
	id      string
	label   string
	badge   highlight.Badge
	snippet model.CodeSnippet
}

// sectionScope owns everything that lives only while a section is shown.
type sectionScope struct {
	id       int
	section  model.Section
	board    *clipboard.Board
	watched  map[string]bool
	blocks   []codeBlock
	groups   [][]int
	demo     demo
	rendered map[string]string
}

func (s *sectionScope) close() {
	s.board.CloseAll()
	if s.demo != nil {
		s.demo.Close()
	}
}

type copyStateMsg struct {
	scope  int
	id     string
	copied bool
}

type copyDoneMsg struct {
	scope int
	id    string
	err   error
}

type demoMsg struct {
	scope int
	msg   tea.Msg
}

// Model implements the Bubble Tea catalog UI.
type Model struct {
	opts Options
	log  *logging.Logger
	keys keyMap
	help help.Model

	width  int
	height int

	screen screen
	login  *loginScreen

	current  int
	scope    *sectionScope
	scopeSeq int
	focus    int

	viewport     viewport.Model
	blockOffsets []int
	scrollFocus  bool
	dirty        bool
	notes        map[string]string
	showHelp     bool
	status       string

	events chan tea.Msg
}

// NewModel constructs the catalog TUI model.
func NewModel(opts Options) *Model {
	if opts.Todos == nil {
		opts.Todos = state.NewTodoStore()
	}
	if opts.Highlighter == nil {
		opts.Highlighter = highlight.NewCache(highlight.EngineHeuristic)
	}
	if opts.AckDelay <= 0 {
		opts.AckDelay = clipboard.DefaultAckDelay
	}
	m := &Model{
		opts:     opts,
		log:      opts.Logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		screen:   screenLogin,
		login:    newLoginScreen(),
		viewport: viewport.New(fallbackWidth-sidebarWidth, 20),
		notes:    map[string]string{},
		events:   make(chan tea.Msg, eventBuffer),
	}
	m.width, m.height = opts.Env.Size()
	if opts.Session != nil && opts.Session.LoggedIn() {
		m.screen = screenShell
	}
	m.current = m.startIndex()
	return m
}

func (m *Model) startIndex() int {
	if m.opts.StartSection == "" {
		return 0
	}
	if i := m.opts.Catalog.Index(m.opts.StartSection); i >= 0 {
		return i
	}
	m.log.Warn(fmt.Sprintf("unknown start section %q, showing home", m.opts.StartSection))
	return 0
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEvent(m.events)}
	if m.screen == screenShell {
		cmds = append(cmds, m.enterSection(m.current))
	} else {
		cmds = append(cmds, m.login.Init())
	}
	return tea.Batch(cmds...)
}

// Close releases the current section scope.
func (m *Model) Close() {
	m.closeScope()
}

func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m *Model) emit(msg tea.Msg) {
	select {
	case m.events <- msg:
	default:
		m.log.Debug("ui event dropped")
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refreshIfDirty()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dirty = true
		return nil
	case copyStateMsg:
		if m.scope != nil && msg.scope == m.scope.id {
			m.dirty = true
		}
		return waitForEvent(m.events)
	case copyDoneMsg:
		if msg.err != nil && m.scope != nil && msg.scope == m.scope.id {
			m.status = "Copy failed"
			m.dirty = true
		}
		return nil
	case loginResultMsg:
		m.login.Result(msg)
		if !msg.ok {
			return nil
		}
		m.screen = screenShell
		m.login = newLoginScreen()
		return m.enterSection(m.current)
	}

	if m.screen == screenLogin {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
			return tea.Quit
		}
		return m.login.Update(msg, m.opts.Session)
	}
	return m.updateShell(msg)
}

func (m *Model) updateShell(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case demoMsg:
		if m.scope == nil || msg.scope != m.scope.id || m.scope.demo == nil {
			return nil
		}
		_, cmd := m.scope.demo.Update(msg.msg)
		m.dirty = true
		return m.wrap(cmd)
	case tea.KeyMsg:
		if d := m.activeDemo(); d != nil && d.Capturing() {
			if msg.String() == "ctrl+c" {
				return tea.Quit
			}
			_, cmd := d.Update(msg)
			m.dirty = true
			return m.wrap(cmd)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.dirty = true
			return nil
		case key.Matches(msg, m.keys.NextSection):
			return m.enterSection(m.current + 1)
		case key.Matches(msg, m.keys.PrevSection):
			return m.enterSection(m.current - 1)
		case key.Matches(msg, m.keys.NextBlock):
			m.moveFocus(1)
			return nil
		case key.Matches(msg, m.keys.PrevBlock):
			m.moveFocus(-1)
			return nil
		case key.Matches(msg, m.keys.Copy):
			return m.copyFocused()
		case key.Matches(msg, m.keys.Logout):
			return m.logout()
		}
		if d := m.activeDemo(); d != nil {
			if handled, cmd := d.Update(msg); handled {
				m.dirty = true
				return m.wrap(cmd)
			}
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) activeDemo() demo {
	if m.scope == nil {
		return nil
	}
	return m.scope.demo
}

func (m *Model) wrap(cmd tea.Cmd) tea.Cmd {
	if m.scope == nil {
		return nil
	}
	return wrapScoped(m.scope.id, cmd)
}

// wrapScoped tags the messages of cmd with the scope that issued it so
// replies arriving after the section is left are dropped.
func wrapScoped(scope int, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			wrapped := make(tea.BatchMsg, 0, len(msg))
			for _, c := range msg {
				if c != nil {
					wrapped = append(wrapped, wrapScoped(scope, c))
				}
			}
			return wrapped
		default:
			return demoMsg{scope: scope, msg: msg}
		}
	}
}

func (m *Model) closeScope() {
	if m.scope == nil {
		return
	}
	m.scope.close()
	m.scope = nil
}

func (m *Model) enterSection(i int) tea.Cmd {
	n := m.opts.Catalog.Len()
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	m.closeScope()

	m.scopeSeq++
	section := m.opts.Catalog.At(i)
	sc := &sectionScope{
		id:       m.scopeSeq,
		section:  section,
		board:    clipboard.NewBoard(m.opts.Clipboard, m.copierOptions()...),
		watched:  map[string]bool{},
		rendered: map[string]string{},
	}
	for ci, cmp := range section.Comparisons {
		var group []int
		if cmp.HasReact() {
			group = append(group, len(sc.blocks))
			sc.blocks = append(sc.blocks, codeBlock{
				id:      fmt.Sprintf("%d/%s", ci, catalog.SideReact),
				label:   labelOr(cmp.ReactLabel, "React"),
				badge:   highlight.BadgeFor(cmp.React.Language),
				snippet: cmp.React,
			})
		}
		group = append(group, len(sc.blocks))
		sc.blocks = append(sc.blocks, codeBlock{
			id:      fmt.Sprintf("%d/%s", ci, catalog.SideAngular),
			label:   labelOr(cmp.AngularLabel, "Angular"),
			badge:   highlight.BadgeFor(cmp.Angular.Language),
			snippet: cmp.Angular,
		})
		sc.groups = append(sc.groups, group)
	}
	sc.demo = newDemo(section.Demo, demoDeps{
		todos:    m.opts.Todos,
		local:    m.opts.Local,
		fetcher:  m.opts.Posts,
		onChange: func() { m.dirty = true },
		log:      m.log,
		width:    func() int { return m.width },
	})

	m.scope = sc
	m.current = i
	m.focus = 0
	m.status = ""
	m.dirty = true
	m.viewport.GotoTop()
	m.log.Debug("enter section " + section.Path)

	if sc.demo == nil {
		return nil
	}
	return m.wrap(sc.demo.Init())
}

func (m *Model) copierOptions() []clipboard.Option {
	opts := []clipboard.Option{
		clipboard.WithAckDelay(m.opts.AckDelay),
		clipboard.WithLogger(m.log),
	}
	if m.opts.Clock != nil {
		opts = append(opts, clipboard.WithClock(m.opts.Clock))
	}
	return opts
}

func labelOr(label, fallback string) string {
	if strings.TrimSpace(label) == "" {
		return fallback
	}
	return label
}

func (m *Model) moveFocus(delta int) {
	if m.scope == nil || len(m.scope.blocks) == 0 {
		return
	}
	n := len(m.scope.blocks)
	m.focus = ((m.focus+delta)%n + n) % n
	m.scrollFocus = true
	m.dirty = true
}

func (m *Model) focusedBlock() (codeBlock, bool) {
	if m.scope == nil || m.focus < 0 || m.focus >= len(m.scope.blocks) {
		return codeBlock{}, false
	}
	return m.scope.blocks[m.focus], true
}

func (m *Model) copyFocused() tea.Cmd {
	blk, ok := m.focusedBlock()
	if !ok {
		return nil
	}
	sc := m.scope
	copier := sc.board.For(blk.id)
	scopeID, id := sc.id, blk.id
	if !sc.watched[id] {
		sc.watched[id] = true
		copier.OnChange(func(copied bool) {
			m.emit(copyStateMsg{scope: scopeID, id: id, copied: copied})
		})
	}
	text := blk.snippet.Text
	return func() tea.Msg {
		return copyDoneMsg{scope: scopeID, id: id, err: copier.Copy(context.Background(), text)}
	}
}

func (m *Model) logout() tea.Cmd {
	m.closeScope()
	if m.opts.Session != nil {
		m.opts.Session.Logout(context.Background())
	}
	m.screen = screenLogin
	m.login = newLoginScreen()
	return m.login.Init()
}

func (m *Model) mainWidth() int {
	if m.width <= 0 {
		return fallbackWidth - sidebarWidth
	}
	return max(m.width-sidebarWidth-1, 20)
}

func (m *Model) refreshIfDirty() {
	if !m.dirty || m.screen != screenShell || m.scope == nil {
		return
	}
	m.dirty = false
	m.viewport.Width = m.mainWidth()
	if m.height > 0 {
		m.viewport.Height = max(m.height-lipgloss.Height(m.renderFooter()), 1)
	}
	m.viewport.SetContent(m.renderContent())
	if m.scrollFocus && m.focus < len(m.blockOffsets) {
		m.viewport.SetYOffset(m.blockOffsets[m.focus])
	}
	m.scrollFocus = false
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenLogin {
		return m.login.View(m.width, m.height)
	}
	if m.scope == nil {
		return ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.viewport.View())
	return body + "\n" + m.renderFooter()
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	for _, cat := range m.opts.Catalog.Categories() {
		b.WriteString(categoryStyle.Render(strings.ToUpper(cat.Name)))
		b.WriteRune('\n')
		for _, s := range cat.Sections {
			line := truncate(s.Icon+" "+s.Label, sidebarWidth-4)
			if s.Path == m.scope.section.Path {
				b.WriteString(navActiveStyle.Render("▸ " + line))
			} else {
				b.WriteString(navStyle.Render("  " + line))
			}
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}
	style := sidebarStyle.Width(sidebarWidth - 2)
	if m.viewport.Height > 0 {
		style = style.Height(m.viewport.Height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderFooter() string {
	m.help.ShowAll = m.showHelp
	left := m.help.View(m.keys)
	var extras []string
	if d := m.activeDemo(); d != nil {
		extras = append(extras, d.Help())
	}
	if m.status != "" {
		extras = append(extras, errorStyle.Render(m.status))
	}
	if m.opts.Session != nil {
		if user, ok := m.opts.Session.User(); ok {
			extras = append(extras, "signed in as "+user.Name)
		}
	}
	if len(extras) == 0 {
		return left
	}
	return left + "\n" + footerStyle.Render(strings.Join(extras, "  ·  "))
}

type lineWriter struct {
	b     strings.Builder
	lines int
}

func (w *lineWriter) write(s string) {
	w.b.WriteString(s)
	w.b.WriteRune('\n')
	w.lines += strings.Count(s, "\n") + 1
}

func (m *Model) renderContent() string {
	sc := m.scope
	width := m.mainWidth()
	var w lineWriter

	w.write(titleStyle.Render(sc.section.Title))
	if sc.section.Subtitle != "" {
		w.write(subtitleStyle.Render(sc.section.Subtitle))
	}
	if notes := m.renderNotes(sc.section, width); notes != "" {
		w.write(notes)
	}
	if sc.demo != nil {
		panel := titleStyle.Render("Live demo") + "\n" + sc.demo.View(width-6)
		w.write(demoBoxStyle.Width(width - 2).Render(panel))
	}

	m.blockOffsets = make([]int, len(sc.blocks))
	for ci, cmp := range sc.section.Comparisons {
		w.write("")
		w.write(comparisonStyle.Render(fmt.Sprintf("%d. %s", ci+1, cmp.Title)))
		if cmp.Description != "" {
			w.write(subtitleStyle.Width(width).Render(cmp.Description))
		}
		group := sc.groups[ci]
		if width >= wideMainWidth && len(group) == 2 {
			col := (width - 1) / 2
			for _, bi := range group {
				m.blockOffsets[bi] = w.lines
			}
			w.write(lipgloss.JoinHorizontal(lipgloss.Top,
				m.renderBlock(group[0], col), " ", m.renderBlock(group[1], col)))
			continue
		}
		if len(group) == 1 {
			w.write(hintStyle.Render("No direct React equivalent."))
		}
		for _, bi := range group {
			m.blockOffsets[bi] = w.lines
			w.write(m.renderBlock(bi, width))
		}
	}
	return strings.TrimRight(w.b.String(), "\n")
}

func (m *Model) renderBlock(index, width int) string {
	sc := m.scope
	blk := sc.blocks[index]
	focused := index == m.focus

	header := badgeStyle(badgeColor(blk.badge)).Render(blk.label) + " " +
		hintStyle.Render(highlight.DisplayName(blk.snippet.Language))
	switch {
	case sc.board.Copied(blk.id):
		header += "  " + copiedStyle.Render("✓ Copied!")
	case focused:
		header += "  " + hintStyle.Render("c to copy")
	}

	inner := max(width-4, 8)
	cacheKey := fmt.Sprintf("%s@%d", blk.id, inner)
	code, ok := sc.rendered[cacheKey]
	if !ok {
		markup := m.opts.Highlighter.Markup(blk.snippet)
		code = wrapStyledRunes(buildCodeRunes(highlight.Segments(markup)), inner)
		sc.rendered[cacheKey] = code
	}
	box := codeBoxStyle
	if focused {
		box = focusedBoxStyle
	}
	return header + "\n" + box.Width(width-2).Render(code)
}

func badgeColor(b highlight.Badge) string {
	switch b {
	case highlight.BadgeReact:
		return reactColor
	case highlight.BadgeAngular:
		return angularColor
	default:
		return neutralColor
	}
}

func (m *Model) renderNotes(section model.Section, width int) string {
	if strings.TrimSpace(section.Notes) == "" {
		return ""
	}
	cacheKey := fmt.Sprintf("%s@%d", section.Path, width)
	if out, ok := m.notes[cacheKey]; ok {
		return out
	}
	out := section.Notes
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(section.Notes); rerr == nil {
			out = strings.Trim(rendered, "\n")
		} else {
			m.log.Debug(fmt.Sprintf("render notes: %v", rerr))
		}
	} else {
		m.log.Debug(fmt.Sprintf("create markdown renderer: %v", err))
	}
	m.notes[cacheKey] = out
	return out
}
