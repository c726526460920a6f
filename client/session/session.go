// Package session owns the signed-in identity for the storefront client and
// keeps it consistent between memory and durable local storage.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/montluxe/storefront/client/localstore"
	"github.com/montluxe/storefront/client/rest"
	pkgerrors "github.com/montluxe/storefront/pkg/errors"
)

// StorageKey is the single durable-storage entry the session writes.
const StorageKey = "user"

// UserSession is the authenticated identity, or absent entirely. Claims the
// backend returned beyond the known fields pass through unchanged.
type UserSession struct {
	UserID      string         `json:"user_id"`
	Username    string         `json:"username"`
	AccessToken string         `json:"access_token,omitempty"`
	Claims      map[string]any `json:"claims,omitempty"`
}

// Authenticator is the backend boundary the store logs in against. The
// rest.Client satisfies it in production.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*rest.LoginResult, error)
	DeleteUser(ctx context.Context, userID, token string) error
}

// Store mediates authentication and holds the single source of truth for
// who is signed in. It is either signed out (Current returns nil) or holds
// a fully populated session; no partial state exists.
type Store struct {
	auth    Authenticator
	storage localstore.Store

	mu          sync.Mutex
	current     *UserSession
	subscribers map[int]func()
	nextSubID   int
}

// NewStore builds a session store and restores any previously persisted
// identity. Malformed storage contents restore to signed out; they never
// surface as an error.
func NewStore(ctx context.Context, auth Authenticator, storage localstore.Store) (*Store, error) {
	if auth == nil {
		return nil, fmt.Errorf("authenticator required")
	}
	if storage == nil {
		return nil, fmt.Errorf("storage required")
	}

	s := &Store{
		auth:        auth,
		storage:     storage,
		subscribers: map[int]func(){},
	}
	s.current = restore(ctx, storage)
	return s, nil
}

func restore(ctx context.Context, storage localstore.Store) *UserSession {
	raw, ok, err := storage.Get(ctx, StorageKey)
	if err != nil || !ok {
		return nil
	}

	var session UserSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil
	}
	if session.UserID == "" {
		return nil
	}
	return &session
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Current returns a copy of the signed-in session, or nil when signed out.
func (s *Store) Current() *UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.copy()
}

// SignedIn reports whether an identity is present.
func (s *Store) SignedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Login authenticates against the backend. On success the store transitions
// to signed in and writes through to durable storage. On failure the prior
// state and storage are left untouched and the error is returned; no retry
// is attempted.
func (s *Store) Login(ctx context.Context, username, password string) error {
	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	session := &UserSession{
		UserID:      result.UserID,
		Username:    result.Username,
		AccessToken: result.AccessToken,
		Claims:      result.Claims,
	}
	if session.Username == "" {
		session.Username = username
	}

	persistErr := s.persist(ctx, session)

	s.mu.Lock()
	s.current = session
	subs := s.snapshotSubscribersLocked()
	s.mu.Unlock()
	notify(subs)

	// The in-memory transition stands even when the write-through fails;
	// the caller learns the session will not survive a reload.
	return persistErr
}

// Logout transitions to signed out and removes the stored entry.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasSignedIn := s.current != nil
	s.current = nil
	subs := s.snapshotSubscribersLocked()
	s.mu.Unlock()

	if wasSignedIn {
		notify(subs)
	}
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear stored session")
	}
	return nil
}

// DeleteAccount re-authenticates, deletes the account on the backend, then
// behaves as a logout.
func (s *Store) DeleteAccount(ctx context.Context, username, password string) error {
	result, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := s.auth.DeleteUser(ctx, result.UserID, result.AccessToken); err != nil {
		return err
	}
	return s.Logout(ctx)
}

func (s *Store) persist(ctx context.Context, session *UserSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist session")
	}
	return nil
}

func (u *UserSession) copy() *UserSession {
	if u == nil {
		return nil
	}
	copied := *u
	if u.Claims != nil {
		copied.Claims = make(map[string]any, len(u.Claims))
		for k, v := range u.Claims {
			copied.Claims[k] = v
		}
	}
	return &copied
}

func (s *Store) snapshotSubscribersLocked() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
