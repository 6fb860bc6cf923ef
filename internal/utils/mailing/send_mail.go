package mailing

import (
	"context"
	"fmt"
	"strconv"

	"foodgram/internal/utils"
	"foodgram/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type (
	Mailer interface {
		SendMail(ctx context.Context, toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
		send   func(m ...*gomail.Message) error
	}
)

func LoadMailConfig(cfg *utils.Config) MailConfig {
	return MailConfig{
		AppURL:       cfg.AppURL,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	}
}

func NewMailer(config MailConfig) (Mailer, error) {
	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", config.SMTPPort, err)
	}

	dialer := gomail.NewDialer(
		config.SMTPHost,
		port,
		config.SMTPEmail,
		config.SMTPPassword,
	)

	return &smtpMailer{config: config, send: dialer.DialAndSend}, nil
}

func (m *smtpMailer) SendMail(ctx context.Context, toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	if err := m.send(mailer); err != nil {
		logger.Log(ctx).Error(ctx, "failed to send mail", zap.String("to", toEmail), zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}

	logger.Log(ctx).Info(ctx, "mail sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}
