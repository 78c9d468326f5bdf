package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/hienthq-zcv/admin-service/pkg/utils"
	"go.uber.org/zap"
)

// Persisted key pair, kept compatible with the web client's storage.
const (
	TokenKey = "token"
	AuthStorageKey = "auth-storage"
)

var ErrNotFound = errors.New("session key not found")

// Storage is the key-value persistence behind the session token.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, keys ...string) error
}

// Scheduler defers a single function call; injectable for tests.
type Scheduler func(d time.Duration, f func())

type Options struct {
	// GracePeriod bounds how long hydration waits when no persisted
	// token is found before the store reports hydrated anyway.
	GracePeriod time.Duration
	Schedule Scheduler
	// Secret, when set, is used to discard expired persisted tokens
	// during hydration.
	Secret []byte
}

const defaultGracePeriod = 50 * time.Millisecond

// authStorageState mirrors the web client's persisted auth blob.
type authStorageState struct {
	State struct {
		Token string `json:"token"`
	} `json:"state"`
}

type Store struct {
	logger *zap.Logger
	storage Storage
	schedule Scheduler
	grace time.Duration
	secret []byte

	mu sync.Mutex
	token string
	hasToken bool
	hydrated bool
	timerScheduled bool
}

func New(logger *zap.Logger, storage Storage, opts Options) *Store {
	if opts.GracePeriod <= 0 {
		opts.GracePeriod = defaultGracePeriod
	}
	if opts.Schedule == nil {
		opts.Schedule = func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		}
	}

	return &Store{
		logger: logger,
		storage: storage,
		schedule: opts.Schedule,
		grace: opts.GracePeriod,
		secret: opts.Secret,
	}
}

// Hydrate restores a persisted token. When nothing is persisted it
// schedules at most one deferred SetHydrated so screens gated on the
// hydrated flag are released after the grace period.
func (s *Store) Hydrate(ctx context.Context) {
	token := s.persistedToken(ctx)

	if token != "" && s.tokenUsable(token) {
		s.mu.Lock()
		s.token = token
		s.hasToken = true
		s.hydrated = true
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if s.hydrated || s.timerScheduled {
		s.mu.Unlock()
		return
	}
	s.timerScheduled = true
	s.mu.Unlock()

	s.schedule(s.grace, s.SetHydrated)
}

func (s *Store) persistedToken(ctx context.Context) string {
	token, err := s.storage.Get(ctx, TokenKey)
	if err == nil && token != "" {
		return token
	}
	if err != nil && err != ErrNotFound {
		s.logger.Sugar().Errorf("failed to read persisted token: %s", err.Error())
	}

	blob, err := s.storage.Get(ctx, AuthStorageKey)
	if err != nil {
		if err != ErrNotFound {
			s.logger.Sugar().Errorf("failed to read persisted auth storage: %s", err.Error())
		}
		return ""
	}

	var state authStorageState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		s.logger.Sugar().Errorf("failed to decode persisted auth storage: %s", err.Error())
		return ""
	}

	return state.State.Token
}

func (s *Store) tokenUsable(token string) bool {
	if len(s.secret) == 0 {
		return true
	}
	_, err := utils.DecodeJWT(token, s.secret)
	return err == nil
}

// SetHydrated is idempotent; a grace timer firing after an earlier
// hydration is a harmless no-op.
func (s *Store) SetHydrated() {
	s.mu.Lock()
	s.hydrated = true
	s.mu.Unlock()
}

func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Token implements the platform token source.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.hasToken
}

// SetToken stores a fresh token in memory and under both persisted keys.
// Persisted data appearing counts as hydration.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.hasToken = true
	s.hydrated = true
	s.mu.Unlock()

	if err := s.storage.Set(ctx, TokenKey, token); err != nil {
		return err
	}

	var state authStorageState
	state.State.Token = token
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.storage.Set(ctx, AuthStorageKey, string(blob))
}

// Logout clears the in-memory token and best-effort removes the persisted
// copies. Wired as the platform client's 401 hook.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.hasToken = false
	s.mu.Unlock()

	if err := s.storage.Del(context.Background(), TokenKey, AuthStorageKey); err != nil {
		s.logger.Sugar().Errorf("failed to remove persisted session: %s", err.Error())
	}
}
