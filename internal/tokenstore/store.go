// File: internal/tokenstore/store.go
package tokenstore

import (
	"context"
	"errors"
	"time"
)

// Storage keys. The chat surface and the admin console never share a session,
// so each scope reads and writes its own key.
const (
	userTokenKey  = "token"
	usernameKey   = "username"
	adminTokenKey = "admin_token"
)

// Store holds the bearer token for one surface. Absence of a value means
// "unauthenticated"; staleness is only discovered when a protected request
// comes back 401.
type Store struct {
	storage  Storage
	tokenKey string
	nameKey  string
}

// NewUserStore scopes the store to the chat surface. The display name is
// persisted alongside the token.
func NewUserStore(storage Storage) *Store {
	return &Store{storage: storage, tokenKey: userTokenKey, nameKey: usernameKey}
}

// NewAdminStore scopes the store to the admin console.
func NewAdminStore(storage Storage) *Store {
	return &Store{storage: storage, tokenKey: adminTokenKey}
}

// Get returns the stored token, or "" when unauthenticated.
func (s *Store) Get() string {
	token, err := s.storage.Get(s.tokenKey)
	if err != nil {
		return ""
	}
	return token
}

// Set persists the token.
func (s *Store) Set(token string) error {
	return s.storage.Set(s.tokenKey, token)
}

// Clear removes the token and, for the chat surface, the display name.
func (s *Store) Clear() error {
	err := s.storage.Delete(s.tokenKey)
	if s.nameKey != "" {
		if nameErr := s.storage.Delete(s.nameKey); err == nil {
			err = nameErr
		}
	}
	return err
}

// DisplayName returns the persisted display name, if any.
func (s *Store) DisplayName() string {
	if s.nameKey == "" {
		return ""
	}
	name, err := s.storage.Get(s.nameKey)
	if err != nil {
		return ""
	}
	return name
}

// SetDisplayName persists the display name next to the token.
func (s *Store) SetDisplayName(name string) error {
	if s.nameKey == "" {
		return errors.New("store scope has no display name")
	}
	return s.storage.Set(s.nameKey, name)
}

// Watch polls the stored token and emits the new value whenever it changes,
// the way the browser client listened for cross-tab storage events. The
// channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context, interval time.Duration) <-chan string {
	changes := make(chan string, 1)
	go func() {
		defer close(changes)
		last := s.Get()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current := s.Get()
				if current == last {
					continue
				}
				last = current
				select {
				case changes <- current:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return changes
}
