// Package auth keeps the mock logged-in user.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/verte-zerg/sidebyside/internal/forms"
	"github.com/verte-zerg/sidebyside/internal/logging"
	"github.com/verte-zerg/sidebyside/internal/model"
	"github.com/verte-zerg/sidebyside/internal/store"
)

// MinPasswordLength is the shortest password Login accepts.
const MinPasswordLength = 6

// ErrInvalidCredentials is the message shown after a rejected login.
const ErrInvalidCredentials = "Invalid credentials. Please try again."

// DemoEmail and DemoPassword fill the login form with working values.
const (
	DemoEmail    = "demo@angular.dev"
	DemoPassword = "angular123"
)

// LoginForm is the login screen input.
type LoginForm struct {
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required,min=6" label:"Password"`
}

// DemoCredentials returns a form filled with the demo account.
func DemoCredentials() LoginForm {
	return LoginForm{Email: DemoEmail, Password: DemoPassword}
}

// Validate returns inline field messages for the form.
func (f LoginForm) Validate() forms.FieldErrors {
	return forms.Validate(f)
}

// Session holds the current user and mirrors it to local storage.
type Session struct {
	local *store.Local
	log   *logging.Logger

	mu   sync.RWMutex
	user *model.User
}

// NewSession restores the stored user, if any. A missing or unreadable
// record starts logged out.
func NewSession(ctx context.Context, local *store.Local, log *logging.Logger) *Session {
	s := &Session{local: local, log: log}
	raw := local.Get(ctx, store.SessionKey, "")
	if raw == "" {
		return s
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn(fmt.Sprintf("ignoring stored session: %v", err))
		return s
	}
	if user.Email == "" {
		log.Warn("ignoring stored session without email")
		return s
	}
	s.user = &user
	return s
}

// Login accepts any non-empty email with a password of at least
// MinPasswordLength characters. It reports whether the login succeeded.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len([]rune(password)) < MinPasswordLength {
		return false
	}
	user := model.User{Email: email, Name: NameFromEmail(email)}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	payload, err := json.Marshal(user)
	if err != nil {
		s.log.Error(err, "encode session")
		return true
	}
	if err := s.local.Set(ctx, store.SessionKey, string(payload)); err != nil {
		s.log.Error(err, "persist session")
	}
	return true
}

// Logout forgets the user.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	if err := s.local.Remove(ctx, store.SessionKey); err != nil {
		s.log.Error(err, "remove session")
	}
}

// User returns the logged-in user.
func (s *Session) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// LoggedIn reports whether a user is set.
func (s *Session) LoggedIn() bool {
	_, ok := s.User()
	return ok
}

// NameFromEmail returns the part of email before the first '@'.
func NameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
