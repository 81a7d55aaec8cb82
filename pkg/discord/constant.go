package discord

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the HTTP timeout for webhook calls.
	DefaultTimeout = 10 * time.Second
	// DefaultUsername is the webhook display name.
	DefaultUsername = "report-service"

	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"
)

// Embed colors per message type.
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		DefaultUsername: DefaultUsername,
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
