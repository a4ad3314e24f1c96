package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/auth"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/bcrypt"
)

const usernameClaim = "username"

// AuthUseCaseInterface is implemented by the password-based authenticator
// and by the development no-authn mode
type AuthUseCaseInterface interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	ValidateToken(ctx context.Context, raw string) (*auth.Token, error)
	CurrentUser(ctx context.Context, token *auth.Token) (*model.User, error)
	IsNoAuthn() bool
}

// SignupInput is the body of the signup call
type SignupInput struct {
	Username   string `json:"username"`
	Password   string `json:"password" masq:"secret"`
	FullName   string `json:"fullName"`
	SecretCode string `json:"secretCode" masq:"secret"`
}

// LoginInput is the body of the login call
type LoginInput struct {
	Username   string `json:"username"`
	Password   string `json:"password" masq:"secret"`
	SecretCode string `json:"secretCode" masq:"secret"`
}

// AuthResult is returned by signup and login
type AuthResult struct {
	AccessToken string      `json:"access_token" masq:"secret"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

type AuthUseCase struct {
	repo       interfaces.Repository
	jwtSecret  []byte
	secretCode string
	cost       int
	now        func() time.Time
	cache      *authCache
}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithBcryptCost sets the password hashing cost
func WithBcryptCost(cost int) AuthOption {
	return func(uc *AuthUseCase) {
		uc.cost = cost
	}
}

// WithAuthClock overrides the time source used for issuing and verifying tokens
func WithAuthClock(now func() time.Time) AuthOption {
	return func(uc *AuthUseCase) {
		uc.now = now
	}
}

// NewAuthUseCase creates an authenticator. secretCode gates both signup and
// login; jwtSecret signs bearer tokens.
func NewAuthUseCase(repo interfaces.Repository, jwtSecret, secretCode string, options ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo:       repo,
		jwtSecret:  []byte(jwtSecret),
		secretCode: secretCode,
		cost:       12,
		now:        time.Now,
		cache:      newAuthCache(),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (uc *AuthUseCase) checkSecretCode(code string) error {
	if subtle.ConstantTimeCompare([]byte(code), []byte(uc.secretCode)) != 1 {
		return goerr.Wrap(ErrInvalidSecretCode, "secret code mismatch")
	}
	return nil
}

// Signup creates an admin account and returns a token for it
func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if err := uc.checkSecretCode(input.SecretCode); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "username and password are required")
	}

	if _, err := uc.repo.User().GetByUsername(ctx, username); err == nil {
		return nil, goerr.Wrap(ErrUsernameTaken, "username already registered", goerr.V(UsernameKey, username))
	} else if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V(UsernameKey, username))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.cost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	user := &model.User{
		ID:           model.UserID(model.NewRecordID()),
		Username:     username,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		CreatedAt:    uc.now().UTC(),
	}
	if err := uc.repo.User().Create(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to create user", goerr.V(UsernameKey, username))
	}

	return uc.issue(user)
}

// Login verifies credentials and returns a fresh token
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := uc.checkSecretCode(input.SecretCode); err != nil {
		return nil, err
	}

	user, err := uc.repo.User().GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidCredentials, "unknown username", goerr.V(UsernameKey, input.Username))
		}
		return nil, goerr.Wrap(err, "failed to look up user", goerr.V(UsernameKey, input.Username))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "password mismatch", goerr.V(UsernameKey, input.Username))
	}

	return uc.issue(user)
}

func (uc *AuthUseCase) issue(user *model.User) (*AuthResult, error) {
	now := uc.now()
	tok, err := jwt.NewBuilder().
		Subject(user.ID.String()).
		IssuedAt(now).
		Expiration(now.Add(auth.TokenLifetime)).
		Claim(usernameClaim, user.Username).
		Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, uc.jwtSecret))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign token")
	}

	return &AuthResult{
		AccessToken: string(signed),
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// ValidateToken verifies signature and expiry and checks that the account
// still exists
func (uc *AuthUseCase) ValidateToken(ctx context.Context, raw string) (*auth.Token, error) {
	if raw == "" {
		return nil, goerr.Wrap(ErrInvalidToken, "empty token")
	}
	return uc.validateTokenWithCache(ctx, raw)
}

func (uc *AuthUseCase) parse(raw string) (*auth.Token, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, uc.jwtSecret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(uc.now)),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidToken, "failed to verify token", goerr.V("reason", err.Error()))
	}
	if tok.Subject() == "" {
		return nil, goerr.Wrap(ErrInvalidToken, "token has no subject")
	}

	token := &auth.Token{
		Subject:   tok.Subject(),
		ExpiresAt: tok.Expiration(),
	}
	if v, ok := tok.Get(usernameClaim); ok {
		token.Username, _ = v.(string)
	}
	return token, nil
}

// CurrentUser returns the account the token was issued for
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token *auth.Token) (*model.User, error) {
	user, err := uc.repo.User().Get(ctx, model.UserID(token.Subject))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidToken, "user no longer exists", goerr.V("user_id", token.Subject))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", token.Subject))
	}
	return user.Public(), nil
}

// IsNoAuthn returns false for the password authenticator
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}
