package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
	"github.com/sethvargo/go-retry"
)

// Sender delivers one rendered email.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string

	// MaxRetries is the number of extra attempts after a failed send.
	MaxRetries uint64
	BaseDelay  time.Duration
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender, MaxRetries: 2, BaseDelay: 500 * time.Millisecond}
}

// Send sends an email via Mailgun, retrying with exponential backoff. html is
// optional; if provided it will be used as HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	return withRetry(ctx, m.MaxRetries, m.BaseDelay, func(ctx context.Context) error {
		c, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		_, _, err := client.Send(c, msg)
		return err
	})
}

func withRetry(ctx context.Context, maxRetries uint64, base time.Duration, fn func(context.Context) error) error {
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	b := retry.WithMaxRetries(maxRetries, retry.NewExponential(base))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

var _ Sender = (*Mailgun)(nil)
