package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	tpl "github.com/369Dsharma/Notes-backend/pkg/mailer/templates"
)

// TemplateOtpCode is the template name used for OTP delivery jobs.
const TemplateOtpCode = "otp_code"

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends an email via Mailgun. html is optional; if provided it will be used as HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendOtpMail renders the otp_code template and sends it directly.
func (m *Mailgun) SendOtpMail(ctx context.Context, to, code string) error {
	subject, text, html, err := tpl.Render(TemplateOtpCode, tpl.OtpData{Email: to, Code: code})
	if err != nil {
		return err
	}
	return m.Send(ctx, to, subject, text, html)
}
