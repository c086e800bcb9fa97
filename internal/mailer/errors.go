package mailer

import "errors"

var (
	ErrNoRecipients      = errors.New("no valid email addresses provided")
	ErrInvalidRecipient  = errors.New("invalid email address")
	ErrTooManyRecipients = errors.New("maximum 10 recipients allowed per email")
	ErrNotConfigured     = errors.New("email service is not configured")
)
