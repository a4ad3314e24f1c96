package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
	"github.com/m-mizutani/goerr/v2"
)

const (
	authCacheTTL = 5 * time.Minute
)

type cachedToken struct {
	token     *auth.Token
	expiresAt time.Time
}

type authCache struct {
	cache sync.Map
}

func newAuthCache() *authCache {
	return &authCache{}
}

func (c *authCache) get(raw string, now time.Time) (*auth.Token, bool) {
	val, ok := c.cache.Load(raw)
	if !ok {
		return nil, false
	}

	cached := val.(*cachedToken)
	if now.After(cached.expiresAt) {
		c.cache.Delete(raw)
		return nil, false
	}

	return cached.token, true
}

func (c *authCache) set(raw string, token *auth.Token, now time.Time) {
	expiresAt := now.Add(authCacheTTL)
	if token.ExpiresAt.Before(expiresAt) {
		expiresAt = token.ExpiresAt
	}
	c.cache.Store(raw, &cachedToken{token: token, expiresAt: expiresAt})
}

func (c *authCache) remove(raw string) {
	c.cache.Delete(raw)
}

// validateTokenWithCache skips signature checks and the user lookup for
// tokens seen within authCacheTTL
func (uc *AuthUseCase) validateTokenWithCache(ctx context.Context, raw string) (*auth.Token, error) {
	now := uc.now()

	// Check cache first
	if token, ok := uc.cache.get(raw, now); ok {
		if now.After(token.ExpiresAt) {
			uc.cache.remove(raw)
			return nil, goerr.Wrap(ErrInvalidToken, "token expired")
		}
		return token, nil
	}

	// Cache miss, verify and confirm the account still exists
	token, err := uc.parse(raw)
	if err != nil {
		return nil, err
	}
	if _, err := uc.CurrentUser(ctx, token); err != nil {
		return nil, err
	}

	uc.cache.set(raw, token, now)

	return token, nil
}
