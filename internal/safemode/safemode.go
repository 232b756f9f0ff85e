// Package safemode implements the safe mode visibility gate.
//
// Safe mode is a view-level switch: while on, NSFW content is blurred and
// badges flagged as hidden-in-safe-mode are suppressed. It never changes
// catalog data. The state survives restarts through an injected Store.
package safemode

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"aihub/internal/badge"
)

// StorageKey is the fixed key of the persisted flag.
const StorageKey = "aigirlshub_safe_mode"

// Store persists the flag. storage.SQLite satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Element describes what a rendered artifact contains.
type Element struct {
	NSFWContent bool
	NSFWBadge   bool
}

// Visibility is how an Element is presented under the current state.
type Visibility struct {
	ContentBlurred bool
	BadgeHidden    bool
}

// Gate is the two-state safe mode machine. It is confined to one session
// and is not safe for concurrent use.
type Gate struct {
	store   Store
	log     *slog.Logger
	enabled bool
}

// New restores the gate from store. Only the literal "true" turns safe mode
// on; a missing, unexpected or unreadable value leaves it off.
func New(ctx context.Context, store Store, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Gate{store: store, log: log}
	g.enabled = g.read(ctx)
	return g
}

func (g *Gate) read(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	v, ok, err := g.store.Get(ctx, StorageKey)
	if err != nil {
		g.log.Warn("read safe mode flag, defaulting to off", "error", err)
		return false
	}
	if ok && v != "true" && v != "false" {
		g.log.Warn("unexpected safe mode flag, defaulting to off", "value", v)
	}
	return ok && v == "true"
}

// IsEnabled reports the in-session state.
func (g *Gate) IsEnabled() bool {
	return g.enabled
}

// Saved re-reads the persisted flag.
func (g *Gate) Saved(ctx context.Context) bool {
	return g.read(ctx)
}

// Toggle sets the state and persists it. The in-session state changes even
// when persisting fails; the error is returned so the caller can report it.
func (g *Gate) Toggle(ctx context.Context, enabled bool) error {
	g.enabled = enabled
	if g.store == nil {
		return nil
	}
	return g.store.Set(ctx, StorageKey, strconv.FormatBool(enabled))
}

// Visibility returns how e is presented under the current state.
func (g *Gate) Visibility(e Element) Visibility {
	return Visibility{
		ContentBlurred: g.enabled && e.NSFWContent,
		BadgeHidden:    g.enabled && e.NSFWBadge,
	}
}

// Badges drops badges hidden while safe mode is on.
func (g *Gate) Badges(badges []badge.Type) []badge.Type {
	return badge.Visible(badges, g.enabled)
}
