package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxRecipients caps the addresses accepted per send request.
const maxRecipients = 10

// emailPattern accepts local@domain-with-dot addresses. Deliverability is the
// relay's problem; this only rejects obvious garbage before dialing out.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a rendered email ready for dispatch.
type Message struct {
	To       []string
	Subject  string
	BodyText string
	BodyHTML string
}

// Sender dispatches a message through a mail relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Service validates recipients, renders the summary email and dispatches it.
type Service struct {
	Sender Sender
}

// SendSummary validates the batch and sends the summary to every recipient.
// A single malformed address rejects the whole batch; nothing is sent.
func (s *Service) SendSummary(ctx context.Context, recipients []string, subject, meetingTitle, summary string) ([]string, error) {
	cleaned, err := ValidateRecipients(recipients)
	if err != nil {
		return nil, err
	}
	if s.Sender == nil {
		return nil, ErrNotConfigured
	}

	now := time.Now()
	if strings.TrimSpace(subject) == "" {
		title := strings.TrimSpace(meetingTitle)
		if title == "" {
			title = now.Format("January 2, 2006")
		}
		subject = "Meeting Summary - " + title
	}

	html, err := RenderHTML(summary, meetingTitle, now)
	if err != nil {
		return nil, fmt.Errorf("render email body: %w", err)
	}

	msg := Message{
		To:       cleaned,
		Subject:  subject,
		BodyText: summary,
		BodyHTML: html,
	}
	if err := s.Sender.Send(ctx, msg); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// ValidateRecipients trims and checks the batch, failing fast on the first
// malformed address and on oversized batches before any network call.
func ValidateRecipients(recipients []string) ([]string, error) {
	cleaned := make([]string, 0, len(recipients))
	for _, raw := range recipients {
		addr := strings.TrimSpace(raw)
		if addr == "" {
			continue
		}
		cleaned = append(cleaned, addr)
	}
	if len(cleaned) == 0 {
		return nil, ErrNoRecipients
	}
	if len(cleaned) > maxRecipients {
		return nil, ErrTooManyRecipients
	}
	for _, addr := range cleaned {
		if !emailPattern.MatchString(addr) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRecipient, addr)
		}
	}
	return cleaned, nil
}
