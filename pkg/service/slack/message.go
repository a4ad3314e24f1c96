package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/slack-go/slack"
)

// Slack rejects section text over 3000 characters
const maxSectionBytes = 2900

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// truncateToMaxBytes cuts s to at most maxBytes without splitting a UTF-8 rune
func truncateToMaxBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func registrationFallback(event, registration map[string]any) string {
	return fmt.Sprintf("New registration for %s: %s", str(event, "title"), str(registration, "fullName"))
}

func buildRegistrationBlocks(event, registration map[string]any, siteURL string) []slack.Block {
	title := str(event, "title")
	if siteURL != "" && str(event, "slug") != "" {
		title = fmt.Sprintf("<%s/events/%s|%s>", strings.TrimRight(siteURL, "/"), str(event, "slug"), title)
	}

	header := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*New event registration*\n"+title, false, false),
		nil, nil,
	)

	labels := []struct{ key, label string }{
		{"fullName", "Name"},
		{"email", "Email"},
		{"phone", "Phone"},
		{"organization", "Organization"},
	}
	var fields []*slack.TextBlockObject
	for _, l := range labels {
		v := str(registration, l.key)
		if v == "" {
			continue
		}
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*%s*\n%s", l.label, v), false, false))
	}

	blocks := []slack.Block{header}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	if notes := str(registration, "notes"); notes != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, truncateToMaxBytes(notes, maxSectionBytes), false, false),
			nil, nil,
		))
	}

	if date := str(event, "date"); date != "" {
		ctx := strings.TrimSpace(date + " " + str(event, "time"))
		if loc := str(event, "location"); loc != "" {
			ctx += " · " + loc
		}
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, ctx, false, false)))
	}

	return blocks
}
