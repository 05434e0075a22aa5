// Package notification delivers customer-facing emails for order lifecycle
// events. The concrete sender is chosen by configuration: a fake
// implementation that only logs, or a real SMTP sender.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Sender delivers one email message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// FakeSender logs messages instead of delivering them. Meant for local
// development and tests.
type FakeSender struct {
	logger *slog.Logger
}

// NewFakeSender creates a sender that logs instead of sending.
func NewFakeSender(logger *slog.Logger) *FakeSender {
	return &FakeSender{logger: logger}
}

// Send logs the message and reports success.
func (s *FakeSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info("fake email sent", "to", to, "subject", subject, "body", body)
	return nil
}

// SMTPSender delivers messages through an SMTP relay with plain auth.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates a sender delivering through the given relay.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers the message. The context is accepted for interface symmetry;
// net/smtp has no context support, so cancellation is not observed mid-send.
func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String()))
}
