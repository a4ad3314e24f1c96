package auth

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// ErrNoToken is returned when the context carries no authenticated actor
var ErrNoToken = goerr.New("no authenticated token in context")

// TokenLifetime is how long an issued bearer token stays valid
const TokenLifetime = 24 * time.Hour

// Token is the verified content of a bearer token
type Token struct {
	Subject   string
	Username  string
	ExpiresAt time.Time
}

// IsExpired checks whether the token is past its expiry
func (t *Token) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

type ctxTokenKey struct{}

// ContextWithToken embeds an authenticated token in the context
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

// TokenFromContext retrieves the authenticated token from the context
func TokenFromContext(ctx context.Context) (*Token, error) {
	token, ok := ctx.Value(ctxTokenKey{}).(*Token)
	if !ok || token == nil {
		return nil, ErrNoToken
	}
	return token, nil
}
