package mailer

import (
	"context"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// SMTPSender dispatches messages through an SMTP relay via gomail.
type SMTPSender struct {
	dialer   *gomail.Dialer
	fromAddr string
	fromName string
}

// NewSMTPSender constructs an SMTPSender. Returns ErrNotConfigured when the
// relay credentials are missing so callers can degrade gracefully in dev.
func NewSMTPSender(host string, port int, username, password, fromAddr, fromName string) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" || strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(fromAddr) == "" {
		fromAddr = username
	}
	return &SMTPSender{
		dialer:   gomail.NewDialer(host, port, username, password),
		fromAddr: fromAddr,
		fromName: fromName,
	}, nil
}

// Send delivers the message in one SMTP transaction. gomail drives the dial
// itself, so cancellation is checked only before the send starts.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddr, s.fromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.BodyText)
	m.AddAlternative("text/html", msg.BodyHTML)

	return s.dialer.DialAndSend(m)
}

var _ Sender = (*SMTPSender)(nil)
