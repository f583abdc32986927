package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agriconnect/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines session persistence operations.
type SessionStoreInterface interface {
	Store(ctx context.Context, tokenID string, identity SessionIdentity, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*SessionIdentity, error)
	Delete(ctx context.Context, tokenID string) error
}

// SessionIdentity is the identity snapshot kept alongside a session
// token; a refresh is only honored while this record exists.
type SessionIdentity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// SessionStore keeps active sessions in Redis, keyed by token ID.
type SessionStore struct {
	cache *cache.Client
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Store persists a session with TTL.
func (s *SessionStore) Store(ctx context.Context, tokenID string, identity SessionIdentity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+tokenID, payload, ttl)
}

// Get retrieves a session; returns an error when it does not exist.
func (s *SessionStore) Get(ctx context.Context, tokenID string) (*SessionIdentity, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil || data == nil {
		return nil, fmt.Errorf("session not found")
	}
	var identity SessionIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &identity, nil
}

// Delete removes a session, invalidating its token.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+tokenID)
}
