package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/udharoguru/internal/client/client"
	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// AuthAPI is the part of the backend the session needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.Tokens, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	Me(ctx context.Context) (*models.Profile, error)
}

// SessionStore is the part of tokens.Store the session needs.
type SessionStore interface {
	HasSession() bool
	SetTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
	OnCleared(fn func()) (unsubscribe func())
}

// SessionService owns the authenticated profile. It bootstraps from stored
// tokens, logs in and out, and keeps the cached profile in step with the
// token store: whenever the store is cleared, the profile goes too.
type SessionService struct {
	api      AuthAPI
	store    SessionStore
	validate *validator.Validator
	log      logging.Logger

	mu      sync.RWMutex
	profile *models.Profile
	loading bool
	// generation changes every time the session is dropped, so that a
	// profile fetched before a logout is not cached after it.
	generation uint64

	ready     chan struct{}
	readyOnce sync.Once

	obsMu     sync.Mutex
	observers map[int]func(*models.Profile)
	nextObs   int

	unsubscribe func()
}

func NewSessionService(api AuthAPI, store SessionStore, log logging.Logger) *SessionService {
	if log == nil {
		log = logging.Nop()
	}
	s := &SessionService{
		api:       api,
		store:     store,
		validate:  validator.New(),
		log:       log.With("component", "session"),
		loading:   true,
		ready:     make(chan struct{}),
		observers: make(map[int]func(*models.Profile)),
	}
	s.unsubscribe = store.OnCleared(s.dropProfile)
	return s
}

// Close detaches the service from the token store.
func (s *SessionService) Close() {
	s.unsubscribe()
}

// Bootstrap restores the session from stored tokens. It must be called
// once; Loading reports true until it returns.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	defer s.finishLoading()

	if !s.store.HasSession() {
		s.log.Debug(ctx, "no stored session")
		return nil
	}

XX, "error", err)
		return NormalizeError(err, "Unable to restore session.")
	}
	s.log.Info(ctx, "session restored", "user_id", p.ID, "account_type", p.AccountType)
	return nil
}

func (s *SessionService) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Ready is closed once Bootstrap has settled.
func (s *SessionService) Ready() <-chan struct{} {
	return s.ready
}

// Profile returns the cached profile, or nil when logged out.
func (s *SessionService) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := s.validate.Validate(creds); err != nil {
		return nil, NormalizeError(err, "Unable to login.")
	}

	tok, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Info(ctx, "login rejected", "error", err)
		return nil, NormalizeError(err, "Unable to login.")
	}
	if !tok.Complete() {
		return nil, errorf("Unable to login.")
	}

	p, err := s.startSession(ctx, tok)
	if err != nil {
		return nil, NormalizeError(err, "Unable to login.")
	}
	s.log.Info(ctx, "logged in", "user_id", p.ID, "account_type", p.AccountType)
	return p, nil
}

// Register creates an account. A backend that holds the account for
// verification answers without tokens; Register then returns (nil, nil).
func (s *SessionService) Register(ctx context.Context, req models.RegisterRequest) (*models.Profile, error) {
	req.AccountType = models.ParseAccountType(string(req.AccountType))
	if err := s.validate.Validate(req); err != nil {
		return nil, NormalizeError(err, "Unable to register.")
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, NormalizeError(err, "Unable to register.")
	}

	tok := resp.Tokens()
	if !tok.Complete() {
		s.log.Info(ctx, "registered, awaiting verification")
		return nil, nil
	}

	p, err := s.startSession(ctx, tok)
	if err != nil {
		return nil, NormalizeError(err, "Unable to register.")
	}
	s.log.Info(ctx, "registered", "user_id", p.ID, "account_type", p.AccountType)
	return p, nil
}

func (s *SessionService) startSession(ctx context.Context, tok models.Tokens) (*models.Profile, error) {
	if err := s.store.SetTokens(ctx, tok.Access, tok.Refresh); err != nil {
		return nil, err
	}
	return s.loadUser(ctx, false)
}

// Logout drops the session locally; the backend is not told.
func (s *SessionService) Logout(ctx context.Context) error {
	s.dropProfile()
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear stored tokens", "error", err)
		return NormalizeError(err, "Unable to logout.")
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// RefreshUser re-fetches the profile. On failure the session is dropped,
// unless the backend could not be reached at all: an outage says nothing
// about the tokens, so they and the cached profile are kept.
func (s *SessionService) RefreshUser(ctx context.Context) (*models.Profile, error) {
	p, err := s.loadUser(ctx, true)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load profile.")
	}
	return p, nil
}

// loadUser fetches and caches the profile. Any failure drops the session,
// except a transport failure when keepOnOutage is set.
func (s *SessionService) loadUser(ctx context.Context, keepOnOutage bool) (*models.Profile, error) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	p, err := s.api.Me(ctx)
	if err != nil {
		if keepOnOutage && errors.Is(err, client.ErrUnavailable) {
			s.log.Warn(ctx, "profile refresh failed, backend unreachable", "error", err)
			return nil, err
		}
		s.dropProfile()
		if cerr := s.store.Clear(context.WithoutCancel(ctx)); cerr != nil {
			s.log.Error(ctx, "failed to clear stored tokens", "error", cerr)
		}
		return nil, err
	}

	if !s.setProfile(gen, p) {
		return nil, errorf("Session ended.")
	}
	return p, nil
}

// setProfile caches p unless the session was dropped since gen was read.
func (s *SessionService) setProfile(gen uint64, p *models.Profile) bool {
	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return false
	}
	s.profile = p
	s.mu.Unlock()

	s.notify(p)
	return true
}

func (s *SessionService) dropProfile() {
	s.mu.Lock()
	s.generation++
	had := s.profile != nil
	s.profile = nil
	s.mu.Unlock()

	if had {
		s.notify(nil)
	}
}

// OnChange registers fn to run whenever the cached profile changes, with
// the new profile (nil on logout). The returned function unregisters it.
func (s *SessionService) OnChange(fn func(*models.Profile)) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *SessionService) notify(p *models.Profile) {
	s.obsMu.Lock()
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	fns := make([]func(*models.Profile), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.observers[id])
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}
