// Package leaderboard keeps the top snake scores in a persisted store.
// The store is read on every query and rewritten on every save; there is
// no in-memory cache and no locking between processes.
package leaderboard

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// DefaultCapacity is the number of entries kept.
	DefaultCapacity = 10
	// MaxNameLength bounds player names, in runes.
	MaxNameLength = 10
	// DefaultName replaces blank player names.
	DefaultName = "Player"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Backend persists the full entry list.
type Backend interface {
	Load() ([]Entry, error)
	Store(entries []Entry) error
}

// Leaderboard ranks entries over a Backend.
type Leaderboard struct {
	backend  Backend
	capacity int
	logger   *log.Logger
}

// Option configures a Leaderboard.
type Option func(*Leaderboard)

// WithCapacity sets how many entries are kept. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(l *Leaderboard) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// WithLogger sets the logger used for load failures.
func WithLogger(logger *log.Logger) Option {
	return func(l *Leaderboard) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a leaderboard over backend.
func New(backend Backend, opts ...Option) *Leaderboard {
	l := &Leaderboard{
		backend:  backend,
		capacity: DefaultCapacity,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Capacity returns the maximum number of entries kept.
func (l *Leaderboard) Capacity() int {
	return l.capacity
}

// Load returns the persisted entries. A missing, unreadable or malformed
// store yields an empty list.
func (l *Leaderboard) Load() []Entry {
	entries, err := l.backend.Load()
	if err != nil {
		l.logger.Debug("leaderboard unavailable, starting empty", "error", err)
		return nil
	}
	return entries
}

// Save inserts a score, keeps the best entries and persists them. The
// resulting entries are returned even when persisting fails.
func (l *Leaderboard) Save(name string, score int) ([]Entry, error) {
	entries := append(l.Load(), Entry{Name: NormalizeName(name), Score: score})
	sortEntries(entries)
	if len(entries) > l.capacity {
		entries = entries[:l.capacity]
	}

	if err := l.backend.Store(entries); err != nil {
		return entries, fmt.Errorf("leaderboard: save: %w", err)
	}
	l.logger.Debug("score saved", "name", name, "score", score, "entries", len(entries))
	return entries, nil
}

// IsHighScore reports whether score would earn a place: the board is not
// full yet, or score beats the lowest entry.
func (l *Leaderboard) IsHighScore(score int) bool {
	entries := l.Load()
	if len(entries) < l.capacity {
		return true
	}
	lowest := entries[0].Score
	for _, e := range entries[1:] {
		lowest = min(lowest, e.Score)
	}
	return score > lowest
}

// TopScores returns up to limit entries, best first. A limit below 1
// means the full capacity.
func (l *Leaderboard) TopScores(limit int) []Entry {
	if limit <= 0 {
		limit = l.capacity
	}
	entries := l.Load()
	sortEntries(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// sortEntries orders by score descending; equal scores keep insertion order.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// NormalizeName trims a player name, caps it at MaxNameLength runes and
// substitutes DefaultName when nothing is left.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLength]))
	}
	if name == "" {
		return DefaultName
	}
	return name
}
