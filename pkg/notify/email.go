package notify

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"
)

// EmailSender delivers HTML alert mail over SMTP with STARTTLS.
// Nil-safe: Send on a nil sender reports "not configured".
type EmailSender struct {
	host     string
	port     int
	username string
	password string
	logger   *slog.Logger
}

// NewEmailSender creates a sender, or nil when credentials are missing so
// callers can wire it unconditionally.
func NewEmailSender(host string, port int, username, password string, logger *slog.Logger) *EmailSender {
	if username == "" || password == "" {
		return nil
	}
	return &EmailSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger.With("component", "email"),
	}
}

// Send mails the HTML body to recipients as a multipart/alternative message.
func (e *EmailSender) Send(subject, htmlBody string, recipients []string) error {
	if e == nil {
		return fmt.Errorf("smtp not configured")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg, err := e.buildMessage(subject, htmlBody, recipients)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)
	if err := smtp.SendMail(addr, auth, e.username, recipients, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	e.logger.Info("Email alert sent", "recipients", len(recipients), "subject", subject)
	return nil
}

// buildMessage renders the RFC 2822 message: envelope headers, then a
// multipart/alternative body carrying the HTML part.
func (e *EmailSender) buildMessage(subject, htmlBody string, recipients []string) ([]byte, error) {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", e.username)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")

	mw := multipart.NewWriter(&msg)
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())

	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, htmlBody); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return msg.Bytes(), nil
}
