package utils

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// NotifySlack posts an operational alert to the configured incoming
// webhook. A missing webhook URL is not an error so local environments can
// run without Slack.
func NotifySlack(text string) error {
	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	msg := &slack.WebhookMessage{
		Username: "oficios-api",
		Text:     text,
	}
	if err := slack.PostWebhook(webhookURL, msg); err != nil {
		return fmt.Errorf("failed to post Slack webhook: %w", err)
	}
	return nil
}
