package notifier

import (
	"context"
	"log/slog"
)

// NopTransport is the default transport when no push provider is configured:
// it accepts every send and delivers nothing. Deployments wire a real
// implementation through Config.Transport.
type NopTransport struct{}

func (NopTransport) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]TokenOutcome, error) {
	slog.InfoContext(ctx, "Push transport not configured, dropping notification",
		"tokens", len(tokens),
		"title", title,
	)
	outcomes := make([]TokenOutcome, 0, len(tokens))
	for _, token := range tokens {
		outcomes = append(outcomes, TokenOutcome{Token: token})
	}
	return outcomes, nil
}
