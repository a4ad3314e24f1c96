package config

import (
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Auth configures admin authentication
type Auth struct {
	jwtSecret  string
	secretCode string
	noAuthn    string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret used to sign bearer tokens (HS256)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("JEUMALA_JWT_SECRET"),
			Destination: &x.jwtSecret,
		},
		&cli.StringFlag{
			Name:        "admin-secret-code",
			Usage:       "Secret code required to sign up or log in as an admin",
			Category:    "Authentication",
			Sources:     cli.EnvVars("JEUMALA_ADMIN_SECRET_CODE"),
			Destination: &x.secretCode,
		},
		&cli.StringFlag{
			Name:        "no-authn",
			Usage:       "Skip authentication and act as the given username (development only)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("JEUMALA_NO_AUTHN"),
			Destination: &x.noAuthn,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("jwt-secret.len", len(x.jwtSecret)),
		slog.Int("admin-secret-code.len", len(x.secretCode)),
		slog.String("no-authn", x.noAuthn),
	)
}

// IsNoAuthn reports whether authentication is skipped
func (x *Auth) IsNoAuthn() bool {
	return x.noAuthn != ""
}

// Configure returns the authentication use case. No-authn mode takes
// precedence over the JWT settings.
func (x *Auth) Configure(repo interfaces.Repository) (usecase.AuthUseCaseInterface, error) {
	if x.noAuthn != "" {
		return usecase.NewNoAuthnUseCase(x.noAuthn, x.noAuthn), nil
	}

	if x.jwtSecret == "" {
		return nil, goerr.Wrap(ErrMissingFlag, "cannot configure authentication", goerr.V(FlagKey, "jwt-secret"))
	}
	if x.secretCode == "" {
		return nil, goerr.Wrap(ErrMissingFlag, "cannot configure authentication", goerr.V(FlagKey, "admin-secret-code"))
	}
	return usecase.NewAuthUseCase(repo, x.jwtSecret, x.secretCode), nil
}
