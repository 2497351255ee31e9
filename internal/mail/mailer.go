package mail

import (
	"context"
	"fmt"
	"log/slog"
)

// Mailer delivers outbound notifications. The credential workflows call it
// after issuing a reset token but never depend on delivery succeeding for
// the token lifecycle itself.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

// LogMailer is the development mailer: it records what would have been sent
// instead of talking to an SMTP relay.
type LogMailer struct {
	Logger  *slog.Logger
	BaseURL string // frontend base URL used to build the reset link
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.BaseURL, token)

	m.Logger.Info("password reset email",
		"to", to,
		"name", name,
		"reset_url", resetURL,
	)
	return nil
}
