package config

import (
	"context"
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/service/restapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Client configures the admin console's connection to a running server
type Client struct {
	baseURL    string
	token      string
	username   string
	password   string
	secretCode string
}

func (x *Client) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the jeumala server",
			Category:    "Client",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("JEUMALA_API_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "Bearer token; when omitted the console logs in",
			Category:    "Client",
			Sources:     cli.EnvVars("JEUMALA_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "Admin username",
			Category:    "Client",
			Sources:     cli.EnvVars("JEUMALA_USERNAME"),
			Destination: &x.username,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Admin password",
			Category:    "Client",
			Sources:     cli.EnvVars("JEUMALA_PASSWORD"),
			Destination: &x.password,
		},
		&cli.StringFlag{
			Name:        "secret-code",
			Usage:       "Admin secret code",
			Category:    "Client",
			Sources:     cli.EnvVars("JEUMALA_ADMIN_SECRET_CODE"),
			Destination: &x.secretCode,
		},
	}
}

func (x Client) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api-url", x.baseURL),
		slog.String("username", x.username),
		slog.Int("token.len", len(x.token)),
	)
}

// Configure returns the REST client and a session holding the bearer token.
// Without --token it logs in with the configured credentials.
func (x *Client) Configure(ctx context.Context) (*restapi.Client, *restapi.Session, error) {
	client := restapi.New(x.baseURL)

	if x.token != "" {
		return client, restapi.NewSession(x.token), nil
	}
	if x.username == "" || x.password == "" {
		return nil, nil, goerr.Wrap(ErrMissingFlag, "either --token or --username and --password are required", goerr.V(FlagKey, "token"))
	}

	resp, err := client.Login(ctx, restapi.LoginRequest{
		Username:   x.username,
		Password:   x.password,
		SecretCode: x.secretCode,
	})
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to log in", goerr.V("username", x.username))
	}
	return client, restapi.NewSession(resp.AccessToken), nil
}
