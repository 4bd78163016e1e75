// Package tokens keeps the session credential pair: an in-memory copy for
// fast reads, written through to a durable Backend, plus a subscription for
// observers that must react when the session is cleared.
package tokens

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// Keys under which the credentials are persisted.
const (
	AccessKey  = "access_token"
	RefreshKey = "refresh_token"
)

// Backend is the durable key/value storage behind a Store.
// metadata.Repository satisfies it.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
}

type observer struct {
	id int
	fn func()
}

// Store is the single source of truth for the access and refresh tokens.
// It is safe for concurrent use. A nil Backend gives a memory-only store.
type Store struct {
	mu      sync.RWMutex
	access  string
	refresh string
	backend Backend

	obsMu     sync.Mutex
	observers []observer
	nextID    int
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load replaces the in-memory pair with what the backend holds.
func (s *Store) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	access, err := s.backend.Get(ctx, AccessKey)
	if err != nil {
		return fmt.Errorf("load access token: %w", err)
	}
	refresh, err := s.backend.Get(ctx, RefreshKey)
	if err != nil {
		return fmt.Errorf("load refresh token: %w", err)
	}

	s.mu.Lock()
	s.access, s.refresh = string(access), string(refresh)
	s.mu.Unlock()
	return nil
}

func (s *Store) Access() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, s.access != ""
}

func (s *Store) Refresh() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh, s.refresh != ""
}

// Tokens returns a snapshot of both slots.
func (s *Store) Tokens() models.Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Tokens{Access: s.access, Refresh: s.refresh}
}

// HasSession reports whether both tokens are present. A lone access token
// does not count as a session.
func (s *Store) HasSession() bool {
	return s.Tokens().Complete()
}

// SetAccess overwrites the access token. An empty token is ignored.
func (s *Store) SetAccess(ctx context.Context, token string) error {
	return s.SetTokens(ctx, token, "")
}

// SetTokens overwrites both slots. An empty argument leaves its slot
// untouched. The write reaches the backend before memory is updated, so a
// failed write changes nothing.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	values := make(map[string][]byte, 2)
	if access != "" {
		values[AccessKey] = []byte(access)
	}
	if refresh != "" {
		values[RefreshKey] = []byte(refresh)
	}
	if len(values) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		if err := s.backend.SetMany(ctx, values); err != nil {
			return fmt.Errorf("persist tokens: %w", err)
		}
	}
	if access != "" {
		s.access = access
	}
	if refresh != "" {
		s.refresh = refresh
	}
	return nil
}

// Clear drops both tokens and notifies every observer. Observers run even if
// the backend delete fails; that error is returned afterwards.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.access, s.refresh = "", ""
	var err error
	if s.backend != nil {
		if derr := s.backend.Delete(ctx, AccessKey, RefreshKey); derr != nil {
			err = fmt.Errorf("delete tokens: %w", derr)
		}
	}
	s.mu.Unlock()

	s.notifyCleared()
	return err
}

// OnCleared registers fn to run after every Clear, in registration order.
// The returned function unregisters it.
func (s *Store) OnCleared(fn func()) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notifyCleared() {
	s.obsMu.Lock()
	fns := make([]func(), len(s.observers))
	for i, o := range s.observers {
		fns[i] = o.fn
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
