package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	timestamp := options.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return d.send(ctx, WebhookPayload{
		Username: username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: options.Description,
			Color:       colorForType(options.Type),
			Timestamp:   timestamp.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

// SendError sends an error embed with the error detail as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	options := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		options.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.SendEmbed(ctx, options)
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeSuccess,
		Title:       title,
		Description: description,
	})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
	})
}

// SendInfo sends an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
	})
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// Close releases idle connections.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.send: request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		d.l.Errorf(ctx, "pkg.discord.send: unexpected status code: %d", resp.StatusCode)
		return fmt.Errorf("discord: unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
