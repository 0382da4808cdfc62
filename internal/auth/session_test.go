package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/sidebyside/internal/model"
	"github.com/verte-zerg/sidebyside/internal/platform"
	"github.com/verte-zerg/sidebyside/internal/store"
)

func newLocal(t *testing.T, env platform.Env) (*store.Local, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return store.NewLocal(s, env, nil), s
}

func TestLoginPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	local, _ := newLocal(t, platform.Interactive())

	session := NewSession(ctx, local, nil)
	assert.False(t, session.LoggedIn())

	require.True(t, session.Login(ctx, "ada@lovelace.dev", "secret1"))
	user, ok := session.User()
	require.True(t, ok)
	assert.Equal(t, model.User{Email: "ada@lovelace.dev", Name: "ada"}, user)

	restored := NewSession(ctx, local, nil)
	assert.True(t, restored.LoggedIn())
	got, _ := restored.User()
	assert.Equal(t, user, got)

	restored.Logout(ctx)
	assert.False(t, restored.LoggedIn())
	assert.False(t, NewSession(ctx, local, nil).LoggedIn())
}

func TestLoginRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	local, _ := newLocal(t, platform.Interactive())
	session := NewSession(ctx, local, nil)

	assert.False(t, session.Login(ctx, "", "secret1"))
	assert.False(t, session.Login(ctx, "a@b.c", "12345"))
	assert.False(t, session.LoggedIn())
	assert.True(t, session.Login(ctx, "no-at-sign", "123456"))
	user, _ := session.User()
	assert.Equal(t, "no-at-sign", user.Name)
}

func TestCorruptStoredSessionStartsLoggedOut(t *testing.T) {
	ctx := context.Background()
	local, s := newLocal(t, platform.Interactive())
	require.NoError(t, s.Set(ctx, store.SessionKey, "{not json"))
	assert.False(t, NewSession(ctx, local, nil).LoggedIn())
}

func TestHeadlessSessionDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	local, s := newLocal(t, platform.Headless())
	session := NewSession(ctx, local, nil)

	require.True(t, session.Login(ctx, DemoEmail, DemoPassword))
	assert.True(t, session.LoggedIn())
	_, ok, err := s.Get(ctx, store.SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginFormValidation(t *testing.T) {
	assert.True(t, DemoCredentials().Validate().Valid())

	errs := LoginForm{Email: "bad", Password: "123"}.Validate()
	assert.Equal(t, "Invalid email", errs["email"])
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])

	errs = LoginForm{}.Validate()
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "demo", NameFromEmail("demo@angular.dev"))
	assert.Equal(t, "", NameFromEmail("@x"))
}
