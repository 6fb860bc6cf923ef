package mailing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"foodgram/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestNewMailer_InvalidPort(t *testing.T) {
	_, err := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "smtp"})
	assert.Error(t, err)
}

func TestLoadMailConfig(t *testing.T) {
	cfg := LoadMailConfig(&utils.Config{
		AppURL:         "http://foodgram.local",
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "2525",
		SMTPSenderName: "Foodgram",
		SMTPAuthEmail:  "noreply@foodgram.local",
	})

	assert.Equal(t, "http://foodgram.local", cfg.AppURL)
	assert.Equal(t, "2525", cfg.SMTPPort)
	assert.Equal(t, "noreply@foodgram.local", cfg.SMTPEmail)
}

func TestSendMail_BuildsMessage(t *testing.T) {
	var sent []*gomail.Message
	m := &smtpMailer{
		config: MailConfig{SMTPEmail: "noreply@foodgram.local", SMTPSender: "Foodgram"},
		send: func(msgs ...*gomail.Message) error {
			sent = append(sent, msgs...)
			return nil
		},
	}

	require.NoError(t, m.SendMail(context.Background(), "cook@example.com", "Reset password", "<p>token</p>"))
	require.Len(t, sent, 1)

	assert.Equal(t, []string{"cook@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Reset password"}, sent[0].GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>token</p>")
}

func TestSendMail_DialFailure(t *testing.T) {
	m := &smtpMailer{
		send: func(...*gomail.Message) error { return errors.New("connection refused") },
	}

	assert.Error(t, m.SendMail(context.Background(), "cook@example.com", "s", "b"))
}
