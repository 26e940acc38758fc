package notify

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// Slack posts to a Slack incoming webhook.
type Slack struct {
	URL  string
	post func(ctx context.Context, url string, msg *slackapi.WebhookMessage) error
}

// NewSlack returns a Slack notifier for the webhook url.
func NewSlack(url string) *Slack {
	return &Slack{URL: url, post: slackapi.PostWebhookContext}
}

func (s *Slack) Name() string { return "slack" }

// Notify posts the summary line.
func (s *Slack) Notify(ctx context.Context, sum Summary) error {
	if err := s.post(ctx, s.URL, &slackapi.WebhookMessage{Text: Message(sum)}); err != nil {
		return fmt.Errorf("notify: slack webhook: %w", err)
	}
	return nil
}
