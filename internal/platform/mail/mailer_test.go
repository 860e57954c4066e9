package mail

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Marcosdev03/projeto-checklistv02/internal/config"
)

func TestSend_RequiresConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("missing host", func(t *testing.T) {
		t.Parallel()

		mailer := NewSMTPMailer(config.MailConfig{FromAddress: "noreply@example.com"}, slog.Default())
		err := mailer.Send(context.Background(), "alice@example.com", "subject", "body")
		assert.Error(t, err)
	})

	t.Run("missing from address", func(t *testing.T) {
		t.Parallel()

		mailer := NewSMTPMailer(config.MailConfig{Host: "smtp.example.com", Port: 587}, slog.Default())
		err := mailer.Send(context.Background(), "alice@example.com", "subject", "body")
		assert.Error(t, err)
	})
}

func TestSend_FallsBackToUsernameAsFrom(t *testing.T) {
	t.Parallel()

	// No from address, but a username: Send must get past the
	// configuration checks and fail at the network layer instead.
	mailer := NewSMTPMailer(config.MailConfig{
		Host:     "127.0.0.1",
		Port:     1, // nothing listens here
		Username: "relay@example.com",
		Password: "secret",
	}, slog.Default())

	err := mailer.Send(context.Background(), "alice@example.com", "subject", "body")
	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "not configured")
}

func TestBuildTextMessage(t *testing.T) {
	t.Parallel()

	msg := string(buildTextMessage("noreply@example.com", "alice@example.com", "Password reset", "Hello"))

	assert.True(t, strings.HasPrefix(msg, "From: noreply@example.com\r\n"))
	assert.Contains(t, msg, "To: alice@example.com\r\n")
	assert.Contains(t, msg, "Subject: Password reset\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=\"utf-8\"\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\nHello"))
}
