// Package session keeps one label generator per page-editing session.
//
// A pagination.Sequence is not safe for concurrent use, so every session
// owns its sequence behind its own mutex and callers only ever reach it
// through the Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/pagina/internal/pagination"
)

var (
	// ErrNotFound is returned for unknown or evicted session ids.
	ErrNotFound = errors.New("session not found")

	// ErrLimit is returned when a request asks for more labels than allowed.
	ErrLimit = errors.New("label count exceeds limit")
)

// Info is a snapshot of a session.
type Info struct {
	ID       string    `json:"id" yaml:"id"`
	Pattern  string    `json:"pattern" yaml:"pattern"`
	Created  time.Time `json:"created" yaml:"created"`
	LastUsed time.Time `json:"last_used" yaml:"last_used"`
	Issued   int       `json:"issued" yaml:"issued"`
}

type session struct {
	mu       sync.Mutex
	id       string
	seq      *pagination.Sequence
	created  time.Time
	lastUsed time.Time
}

func (s *session) info() Info {
	return Info{
		ID:       s.id,
		Pattern:  s.seq.Pattern().Source(),
		Created:  s.created,
		LastUsed: s.lastUsed,
		Issued:   s.seq.Issued(),
	}
}

// Config holds store limits.
type Config struct {
	// MaxLabels caps the labels returned by one Next call (0 = unlimited)
	MaxLabels int
	// TTL is how long an idle session is kept (0 = forever)
	TTL time.Duration
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// Store holds live sessions in memory. Nothing is persisted.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	maxLabels int
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewStore creates an empty session store.
func NewStore(cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Store{
		sessions:  make(map[string]*session),
		maxLabels: cfg.MaxLabels,
		ttl:       cfg.TTL,
		logger:    cfg.Logger,
		now:       time.Now,
	}
}

// SetLimits updates the label cap and idle TTL, e.g. after a config reload.
func (s *Store) SetLimits(maxLabels int, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxLabels = maxLabels
	s.ttl = ttl
}

// MaxLabels returns the current per-request label cap.
func (s *Store) MaxLabels() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxLabels
}

// Create compiles pattern and opens a session for it. Syntax errors are
// returned unchanged.
func (s *Store) Create(pattern string) (*Info, error) {
	p, err := pagination.Compile(pattern)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session{
		id:       uuid.NewString(),
		seq:      pagination.NewSequence(p),
		created:  now,
		lastUsed: now,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("session created", "session", sess.id, "pattern", p.Source())
	info := sess.info()
	return &info, nil
}

func (s *Store) lookup(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

// Next returns the next n labels of a session.
func (s *Store) Next(id string, n int) ([]string, error) {
	if n < 0 {
		return nil, pagination.ErrNegativeCount
	}
	if limit := s.MaxLabels(); limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrLimit, n, limit)
	}

	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	labels := sess.seq.Take(n)
	sess.lastUsed = s.now()
	return labels, nil
}

// Get returns a snapshot of a session.
func (s *Store) Get(id string) (*Info, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	info := sess.info()
	return &info, nil
}

// Delete ends a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// List returns all sessions ordered by creation time.
func (s *Store) List() []Info {
	s.mu.RLock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	infos := make([]Info, 0, len(sessions))
	for _, sess := range sessions {
		sess.mu.Lock()
		infos = append(infos, sess.info())
		sess.mu.Unlock()
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Created.Equal(infos[j].Created) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].Created.Before(infos[j].Created)
	})
	return infos
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Evict removes sessions idle since before cutoff and returns how many.
func (s *Store) Evict(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastUsed.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			ttl := s.ttl
			s.mu.RUnlock()
			if ttl <= 0 {
				continue
			}
			if n := s.Evict(s.now().Add(-ttl)); n > 0 {
				s.logger.Info("evicted idle sessions", "count", n, "ttl", ttl)
			}
		}
	}
}
