package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartmcq/mcqgen/internal/domain"
)

// Session is one user's working state. The raw MCQ text is the durable
// artifact; canonical records are always recomputed from it on demand
// and never stored. Mutation is whole-buffer replacement only.
type Session struct {
	ID        string
	RawMCQs   string
	Meta      domain.GenerationMeta
	CreatedAt time.Time
}

// Store is an in-memory session table. Nothing is persisted across
// process restarts; the session token simply stops resolving.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a fresh empty session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &Session{ID: id, CreatedAt: time.Now()}
	s.mu.Unlock()
	return id
}

// Get returns a snapshot copy of the session.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// ReplaceText swaps the raw buffer wholesale (user edit).
func (s *Store) ReplaceText(id, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.RawMCQs = raw
	return true
}

// SetGeneration records a generation result and its metadata.
func (s *Store) SetGeneration(id, raw string, meta domain.GenerationMeta) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.RawMCQs = raw
	sess.Meta = meta
	return true
}

type ctxKey struct{}

func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func sessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
