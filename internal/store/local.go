package store

import (
	"context"
	"strings"

	"github.com/verte-zerg/sidebyside/internal/logging"
	"github.com/verte-zerg/sidebyside/internal/model"
	"github.com/verte-zerg/sidebyside/internal/platform"
)

// Well-known keys.
const (
	SessionKey = "sbs_user"
	DemoPrefix = "sbs_demo_"
)

// KV is the key/value surface Local needs. *Store implements it.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]model.StorageItem, error)
}

var _ KV = (*Store)(nil)

// Local is persistent storage gated by the platform environment. Outside an
// interactive context reads return their default and writes are skipped.
type Local struct {
	kv  KV
	env platform.Env
	log *logging.Logger
}

// NewLocal binds kv to env.
func NewLocal(kv KV, env platform.Env, log *logging.Logger) *Local {
	return &Local{kv: kv, env: env, log: log}
}

// Enabled reports whether reads and writes reach the backing store.
func (l *Local) Enabled() bool {
	return l != nil && l.kv != nil && l.env.Interactive
}

// Get returns the value of key, or def when it is missing, unreadable or
// storage is disabled.
func (l *Local) Get(ctx context.Context, key, def string) string {
	if !l.Enabled() {
		l.skipped("get")
		return def
	}
	value, ok, err := l.kv.Get(ctx, key)
	if err != nil {
		l.log.Warn(err.Error())
		return def
	}
	if !ok {
		return def
	}
	return value
}

// Set stores value under key.
func (l *Local) Set(ctx context.Context, key, value string) error {
	if !l.Enabled() {
		l.skipped("set")
		return nil
	}
	return l.kv.Set(ctx, key, value)
}

// Remove deletes key.
func (l *Local) Remove(ctx context.Context, key string) error {
	if !l.Enabled() {
		l.skipped("remove")
		return nil
	}
	return l.kv.Delete(ctx, key)
}

// DemoItems lists the demo entries with DemoPrefix stripped from keys.
func (l *Local) DemoItems(ctx context.Context) ([]model.StorageItem, error) {
	if !l.Enabled() {
		l.skipped("list")
		return nil, nil
	}
	items, err := l.kv.List(ctx, DemoPrefix)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Key = strings.TrimPrefix(items[i].Key, DemoPrefix)
	}
	return items, nil
}

// SetDemo stores a demo entry. A blank key is ignored.
func (l *Local) SetDemo(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	return l.Set(ctx, DemoPrefix+key, value)
}

// RemoveDemo deletes a demo entry.
func (l *Local) RemoveDemo(ctx context.Context, key string) error {
	return l.Remove(ctx, DemoPrefix+strings.TrimSpace(key))
}

func (l *Local) skipped(op string) {
	if l == nil {
		return
	}
	l.log.Debug("storage " + op + " skipped: non-interactive context")
}
