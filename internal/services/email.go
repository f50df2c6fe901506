package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"uniformnavi/internal/config"
	"uniformnavi/internal/logger"

	"go.uber.org/zap"
)

// Mailer delivers notification emails to the site administrator.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// NewMailer returns an SMTP mailer, or a no-op one when SMTP is not configured.
func NewMailer(cfg *config.Config) Mailer {
	if !cfg.SMTPConfigured() {
		return NopMailer{}
	}
	return NewEmailService(cfg)
}

type EmailService struct {
	auth    smtp.Auth
	from    string
	host    string
	port    string
	timeout time.Duration
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth:    auth,
		from:    cfg.SMTPUser,
		host:    cfg.SMTPHost,
		port:    cfg.SMTPPort,
		timeout: cfg.SMTPTimeout,
	}
}

// Send writes one HTML message. The context deadline bounds the whole SMTP
// conversation.
func (s *EmailService) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("smtp: no recipients")
	}

	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("AUTH"); ok {
		if err := c.Auth(s.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(s.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMessage(s.from, to, subject, htmlBody)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}
	return c.Quit()
}

// HealthCheck connects and greets the server without sending anything.
func (s *EmailService) HealthCheck(ctx context.Context) error {
	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.Quit()
}

func (s *EmailService) Close() error { return nil }

func (s *EmailService) dial(ctx context.Context) (*smtp.Client, error) {
	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	addr := net.JoinHostPort(s.host, s.port)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake %s: %w", addr, err)
	}
	if err := c.Hello("localhost"); err != nil {
		c.Close()
		return nil, fmt.Errorf("smtp ehlo: %w", err)
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp starttls: %w", err)
		}
	}
	return c, nil
}

func buildMessage(from string, to []string, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.BEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// NopMailer is used when SMTP is not configured. Every send is logged and dropped.
type NopMailer struct{}

func (NopMailer) Send(ctx context.Context, to []string, subject, _ string) error {
	logger.WithCtx(ctx).Info("mail: smtp not configured, notification skipped",
		zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

func (NopMailer) HealthCheck(context.Context) error { return nil }

func (NopMailer) Close() error { return nil }
