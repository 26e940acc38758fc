package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

// maxDiscordContent is Discord's limit on message content length.
const maxDiscordContent = 2000

// webhookExecutor abstracts the discordgo.Session method we use, enabling test mocks.
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts to a Discord channel webhook.
type Discord struct {
	id      string
	token   string
	session webhookExecutor
}

// ParseDiscordWebhook extracts the webhook ID and token from a URL of the
// form https://discord.com/api/webhooks/<id>/<token>.
func ParseDiscordWebhook(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("notify: parse discord webhook: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("notify: discord webhook url %q has no /webhooks/<id>/<token>", raw)
}

// NewDiscord returns a Discord notifier for the webhook url. Webhook
// execution needs no bot token.
func NewDiscord(rawURL string) (*Discord, error) {
	id, token, err := ParseDiscordWebhook(rawURL)
	if err != nil {
		return nil, err
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("notify: discord session: %w", err)
	}
	return &Discord{id: id, token: token, session: s}, nil
}

func (d *Discord) Name() string { return "discord" }

// Notify executes the webhook with the summary line.
func (d *Discord) Notify(ctx context.Context, sum Summary) error {
	content := truncateRunes(Message(sum), maxDiscordContent)
	params := &discordgo.WebhookParams{Content: content, Username: "topicrun"}
	if _, err := d.session.WebhookExecute(d.id, d.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("notify: discord webhook: %w", err)
	}
	return nil
}

// truncateRunes caps s at limit characters, ending with "..." when cut.
// Discord counts characters, not bytes.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit-3]) + "..."
}
