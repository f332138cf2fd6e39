package mailer

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Sender delivers one HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPSender dials the server for every message; nothing is pooled.
type SMTPSender struct {
	from string
	send func(m ...*gomail.Message) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Pass)
	d.SSL = port == 465
	return &SMTPSender{from: cfg.From, send: d.DialAndSend}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	if err := s.send(m); err != nil {
		return pkgerrors.Wrapf(err, "smtp send to %s", to)
	}
	return nil
}

// NopSender is used when SMTP is not configured.
type NopSender struct {
	Log zerolog.Logger
}

func (n NopSender) Send(_ context.Context, to, subject, _ string) error {
	n.Log.Warn().Str("to", to).Str("subject", subject).Msg("email service not configured, skipping send")
	return nil
}
