package auth

import (
	"context"
	"sync"
	"time"

	"github.com/coursehub/catalog/internal/pkg/apperrors"
	"github.com/coursehub/catalog/internal/pkg/logger"
)

const (
	// RefreshMargin is how close to expiry a cached token may get before it is refetched.
	// It is also subtracted from the provider lifetime when the token is cached.
	RefreshMargin = 5 * time.Minute
)

// TokenProvider fetches a fresh bearer token from the identity provider.
type TokenProvider interface {
	FetchToken(ctx context.Context) (token string, lifetime time.Duration, err error)
}

// TokenSource hands out bearer tokens to object store clients.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type cachedToken struct {
	token  string
	expiry time.Time
}

// TokenCache keeps one bearer token and refreshes it before it gets close to expiry.
// Concurrent callers that miss the cache may each fetch a token; the last one stored wins.
type TokenCache struct {
	provider TokenProvider
	now      func() time.Time

	mu     sync.RWMutex
	cached *cachedToken
}

// NewTokenCache creates a cache in front of provider.
func NewTokenCache(provider TokenProvider) *TokenCache {
	return &TokenCache{provider: provider, now: time.Now}
}

// WithClock replaces the time source.
func (c *TokenCache) WithClock(now func() time.Time) *TokenCache {
	c.now = now
	return c
}

// Token returns the cached token when it expires more than RefreshMargin from now,
// otherwise it fetches and caches a new one.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.RLock()
	cached := c.cached
	c.mu.RUnlock()

	if cached != nil && cached.expiry.After(c.now().Add(RefreshMargin)) {
		return cached.token, nil
	}

	token, lifetime, err := c.provider.FetchToken(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch object store token")
		return "", apperrors.NewAuthError(err)
	}

	fresh := &cachedToken{
		token:  token,
		expiry: c.now().Add(lifetime - RefreshMargin),
	}

	c.mu.Lock()
	c.cached = fresh
	c.mu.Unlock()

	logger.Debug().Time("expiry", fresh.expiry).Msg("Cached new object store token")
	return token, nil
}

// Expiry returns the expiry of the cached token, zero when nothing is cached.
func (c *TokenCache) Expiry() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cached == nil {
		return time.Time{}
	}
	return c.cached.expiry
}
