package slack

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// client implements interfaces.RegistrationNotifier
type client struct {
	api       *slack.Client
	channelID string
	siteURL   string
	apiURL    string
}

var _ interfaces.RegistrationNotifier = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// WithSiteURL sets the public site base URL used for links in messages
func WithSiteURL(url string) Option {
	return func(c *client) {
		c.siteURL = url
	}
}

// withAPIURL points the client at a different Slack API endpoint
func withAPIURL(url string) Option {
	return func(c *client) {
		c.apiURL = url
	}
}

// New creates a Slack notifier that posts to channelID with the provided bot token
func New(token, channelID string, opts ...Option) (interfaces.RegistrationNotifier, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	c := &client{
		channelID: channelID,
	}
	for _, opt := range opts {
		opt(c)
	}

	var apiOpts []slack.Option
	if c.apiURL != "" {
		apiOpts = append(apiOpts, slack.OptionAPIURL(c.apiURL))
	}
	c.api = slack.New(token, apiOpts...)

	return c, nil
}

// NotifyRegistration posts a summary of a new event registration
func (c *client) NotifyRegistration(ctx context.Context, event, registration map[string]any) error {
	blocks := buildRegistrationBlocks(event, registration, c.siteURL)
	fallback := registrationFallback(event, registration)

	_, _, err := c.api.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post registration message",
			goerr.V("channel_id", c.channelID))
	}
	return nil
}
