// Package auth provides token management for the RMS API client. RMS uses
// personal access tokens sent as Bearer values; there is no refresh flow.
package auth

import (
	"context"
	"errors"
	"os"
	"sync"
)

// Static errors for token handling.
var (
	ErrTokenEmpty         = errors.New("token cannot be empty")
	ErrStaticTokenRefresh = errors.New("static token cannot be refreshed")
	ErrEnvTokenNotSet     = errors.New("token environment variable is not set")
)

// TokenManager supplies the bearer value attached to outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string)
}

// StaticTokenManager holds a fixed personal access token.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) (*StaticTokenManager, error) {
	if token == "" {
		return nil, ErrTokenEmpty
	}

	return &StaticTokenManager{token: token}, nil
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, nil
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// EnvTokenManager reads the token from an environment variable on every
// call, picking up rotations without restarting the process.
type EnvTokenManager struct {
	Variable string
}

// GetToken reads the token from the configured environment variable.
func (m *EnvTokenManager) GetToken(ctx context.Context) (string, error) {
	token := os.Getenv(m.Variable)
	if token == "" {
		return "", ErrEnvTokenNotSet
	}

	return token, nil
}

// SetToken is a no-op; the environment owns the value.
func (m *EnvTokenManager) SetToken(token string) {}
