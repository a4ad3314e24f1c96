package usecase

import (
	"context"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
)

// noAuthnToken is the bearer token handed out in no-authn mode
const noAuthnToken = "noauthn"

// NoAuthnUseCase authenticates every request as a fixed user (for development/testing)
type NoAuthnUseCase struct {
	user *model.User
}

// NewNoAuthnUseCase creates a new NoAuthnUseCase acting as username
func NewNoAuthnUseCase(username, fullName string) *NoAuthnUseCase {
	return &NoAuthnUseCase{
		user: &model.User{
			ID:       model.UserID("noauthn-" + username),
			Username: username,
			FullName: fullName,
		},
	}
}

func (uc *NoAuthnUseCase) result() *AuthResult {
	return &AuthResult{
		AccessToken: noAuthnToken,
		TokenType:   "bearer",
		User:        uc.user.Public(),
	}
}

// Signup returns the fixed user without creating an account
func (uc *NoAuthnUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	return uc.result(), nil
}

// Login returns the fixed user regardless of credentials
func (uc *NoAuthnUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	return uc.result(), nil
}

// ValidateToken always returns a token for the fixed user
func (uc *NoAuthnUseCase) ValidateToken(ctx context.Context, raw string) (*auth.Token, error) {
	return &auth.Token{
		Subject:   uc.user.ID.String(),
		Username:  uc.user.Username,
		ExpiresAt: time.Now().Add(auth.TokenLifetime),
	}, nil
}

// CurrentUser returns the fixed user
func (uc *NoAuthnUseCase) CurrentUser(ctx context.Context, token *auth.Token) (*model.User, error) {
	return uc.user.Public(), nil
}

// IsNoAuthn returns true for NoAuthnUseCase
func (uc *NoAuthnUseCase) IsNoAuthn() bool {
	return true
}
