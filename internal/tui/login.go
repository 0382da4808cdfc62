package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sidebyside/internal/auth"
	"github.com/verte-zerg/sidebyside/internal/forms"
)

// loginDelay mimics a network round trip before the mock login answers.
const loginDelay = 800 * time.Millisecond

// loginForm is the email/password pair with inline validation.
type loginForm struct {
	*fieldForm
}

func newLoginForm() *loginForm {
	return &loginForm{newFieldForm(
		func(f *fieldForm) forms.FieldErrors { return loginValues(f).Validate() },
		textField("email", "Email", "you@example.com"),
		secretField("password", "Password", "at least 6 characters"),
	)}
}

func loginValues(f *fieldForm) auth.LoginForm {
	return auth.LoginForm{
		Email:    strings.TrimSpace(f.Value("email")),
		Password: f.Value("password"),
	}
}

func (f *loginForm) Values() auth.LoginForm {
	return loginValues(f.fieldForm)
}

func (f *loginForm) Fill(values auth.LoginForm) {
	f.SetValue("email", values.Email)
	f.SetValue("password", values.Password)
}

// loginScreen is shown until a session exists.
type loginScreen struct {
	form       *loginForm
	submitting bool
	failure    string
}

type loginResultMsg struct {
	ok bool
}

func newLoginScreen() *loginScreen {
	return &loginScreen{form: newLoginForm()}
}

func (s *loginScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.form.Focus())
}

// Update handles a message. It returns a command that eventually produces
// a loginResultMsg once the form is submitted.
func (s *loginScreen) Update(msg tea.Msg, session *auth.Session) tea.Cmd {
	if s.submitting {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+d" {
		s.form.Fill(auth.DemoCredentials())
		return nil
	}
	submit, cmd := s.form.Update(msg)
	if !submit {
		return cmd
	}
	if !s.form.Validate() {
		return nil
	}
	s.submitting = true
	s.failure = ""
	values := s.form.Values()
	return tea.Tick(loginDelay, func(time.Time) tea.Msg {
		return loginResultMsg{ok: session.Login(context.Background(), values.Email, values.Password)}
	})
}

func (s *loginScreen) Result(msg loginResultMsg) {
	s.submitting = false
	if !msg.ok {
		s.failure = auth.ErrInvalidCredentials
	}
}

func (s *loginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("React vs Angular, side by side"))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())
	b.WriteString("\n\n")
	switch {
	case s.submitting:
		b.WriteString(hintStyle.Render("Signing in..."))
	case s.failure != "":
		b.WriteString(errorStyle.Render(s.failure))
	default:
		b.WriteString(hintStyle.Render("enter: next/submit · ctrl+d: demo credentials · ctrl+c: quit"))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("demo: " + auth.DemoEmail + " / " + auth.DemoPassword))
	box := loginBoxStyle.Render(b.String())
	if width == 0 || height == 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
