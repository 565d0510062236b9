// Package session holds the authenticated-user state of the client process.
//
// A Store is created once at startup. New rehydrates the previous session
// from durable storage without touching the network; afterwards the session
// changes only through SignIn, UpdateUser and SignOut, each of which writes
// durable storage before updating memory so the two agree after every
// successful call.
//
// The token and the user live under two separate keys and are written one
// after the other. A crash between the two writes can leave a half-written
// session behind; the next start then treats it as malformed and begins
// signed out.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	CreateSession(ctx context.Context, creds models.Credentials) (models.Session, error)
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current *models.Session

	storage metadata.Repository
	auth    Authenticator
	log     logging.Logger
	now     func() time.Time
}

// New builds the store and rehydrates it from storage. A missing or
// malformed persisted session is logged and the store starts signed out.
func New(ctx context.Context, storage metadata.Repository, auth Authenticator, log logging.Logger) *Store {
	s := &Store{
		storage: storage,
		auth:    auth,
		log:     log.With("component", "session"),
		now:     time.Now,
	}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	restored, err := s.load(ctx)
	if err != nil {
		s.log.Warn(ctx, "starting signed out", "reason", err.Error())
		return
	}
	if restored == nil {
		s.log.Debug(ctx, "no persisted session")
		return
	}

	s.mu.Lock()
	s.current = restored
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user_id", restored.User.ID)
}

// load returns (nil, nil) when nothing was persisted at all.
func (s *Store) load(ctx context.Context) (*models.Session, error) {
	token, hasToken, err := s.storage.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, err
	}
	rawUser, hasUser, err := s.storage.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, err
	}

	if !hasToken && !hasUser {
		return nil, nil
	}
	if !hasToken || !hasUser || token == "" {
		return nil, fmt.Errorf("%w: token or user missing", common.ErrInvalidSession)
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidSession, err)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidSession, err)
	}
	if tokenExpired(token, s.now()) {
		return nil, fmt.Errorf("%w: token expired", common.ErrInvalidSession)
	}

	return &models.Session{Token: token, User: user}, nil
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Opaque tokens are never considered expired; the server decides.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}

// SignIn authenticates with one API call and, on success, persists and
// adopts the returned session. On failure nothing changes and the error is
// returned to the caller, who decides how to report it.
func (s *Store) SignIn(ctx context.Context, creds models.Credentials) error {
	sess, err := s.auth.CreateSession(ctx, creds)
	if err != nil {
		s.log.Warn(ctx, "sign in failed", "error", err.Error())
		return fmt.Errorf("sign in: %w", err)
	}

	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(ctx, common.TokenStorageKey, sess.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.storage.Set(ctx, common.UserStorageKey, string(rawUser)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.log.Info(ctx, "signed in", "user_id", sess.User.ID)
	return nil
}

// SignOut forgets the session in memory and in storage. Calling it while
// signed out is harmless. Memory is cleared even if storage fails; the
// storage error is returned.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		s.log.Error(ctx, "clearing persisted session failed", "error", err.Error())
		return fmt.Errorf("sign out: %w", err)
	}

	s.log.Info(ctx, "signed out")
	return nil
}

// UpdateUser replaces the whole session user with user, in storage and in
// memory. The token is kept. Fields are never merged with the previous
// record, so the latest API response always wins.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return common.ErrNotAuthenticated
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(ctx, common.UserStorageKey, string(rawUser)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.current = &models.Session{Token: s.current.Token, User: user}

	s.log.Debug(ctx, "user updated", "user_id", user.ID)
	return nil
}

// Session returns a copy of the current session and whether there is one.
func (s *Store) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// User returns the current user, or the zero User when signed out.
func (s *Store) User() models.User {
	sess, _ := s.Session()
	return sess.User
}

// Token returns the bearer token, or "" when signed out. It makes Store a
// client.TokenSource.
func (s *Store) Token() string {
	sess, _ := s.Session()
	return sess.Token
}

// IsAuthenticated reports whether a session exists.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Session()
	return ok
}
