package templates

import (
	"net/url"
	"time"

	"github.com/oksasatya/go-ddd-signup/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

func WithCode(code string) Option { return func(d *EmailData) { d.Code = code } }

// NewBaseEmailData fills the shared fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, username, email string, opts ...Option) EmailData {
	d := EmailData{
		Username: username,
		Email:    email,
		Type:     typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.CompanyAddress = cfg.CompanyAddress
		d.AppName = cfg.AppName
		d.LogoURL = cfg.LogoURL
		d.SupportURL = cfg.SupportURL
		d.VerifyURL = cfg.VerifyEmailURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// VerifyLink appends code as the "code" query parameter of base.
func VerifyLink(base, code string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?code=" + url.QueryEscape(code)
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()
	return u.String()
}

func NewSignupVerificationData(cfg *config.Config, username, email, code string, opts ...Option) map[string]any {
	opts = append([]Option{WithCode(code)}, opts...)
	d := NewBaseEmailData(cfg, SignupVerification, username, email, opts...)
	d.VerifyURL = VerifyLink(d.VerifyURL, code)
	return ToMap(d)
}
