package user

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type sessionMeta struct {
	UserID    int64
	ExpiresAt time.Time
}

// tokenManager keeps sessions in memory: the storefront runs as a single
// local process, so there is no session table to share.
type tokenManager struct {
	mu     sync.RWMutex
	tokens map[string]sessionMeta
}

func newTokenManager() *tokenManager {
	return &tokenManager{
		tokens: make(map[string]sessionMeta),
	}
}

func (m *tokenManager) Issue(userID int64, ttl time.Duration) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.tokens[token] = sessionMeta{
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	m.mu.Unlock()
	return token, nil
}

func (m *tokenManager) Validate(token string) (sessionMeta, bool) {
	m.mu.RLock()
	meta, ok := m.tokens[token]
	m.mu.RUnlock()
	if !ok {
		return sessionMeta{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		m.Revoke(token)
		return sessionMeta{}, false
	}
	return meta, true
}

func (m *tokenManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
