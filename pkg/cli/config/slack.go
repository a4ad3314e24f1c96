package config

import (
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack configures notifications about new event registrations
type Slack struct {
	botToken  string
	channelID string
	siteURL   string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("JEUMALA_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel that receives registration notices",
			Category:    "Slack",
			Destination: &x.channelID,
			Sources:     cli.EnvVars("JEUMALA_SLACK_CHANNEL_ID"),
		},
		&cli.StringFlag{
			Name:        "site-url",
			Usage:       "Public site URL used for links in notices",
			Category:    "Slack",
			Destination: &x.siteURL,
			Sources:     cli.EnvVars("JEUMALA_SITE_URL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel-id", x.channelID),
	)
}

// IsConfigured checks if both the token and the channel are set
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure returns nil when Slack is not configured
func (x *Slack) Configure() (interfaces.RegistrationNotifier, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	return slack.New(x.botToken, x.channelID, slack.WithSiteURL(x.siteURL))
}
