package mail

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/leadgenius/internal/infra/integration/sendgrid"
)

//go:embed outreach.html
var outreachTemplate string

func NewSMTPSender(host string, port int, user, password string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// Send satisfies the same gateway contract as the SendGrid client, so the
// dispatcher doesn't care which transport is wired in.
func (s *SMTPSender) Send(ctx context.Context, input sendgrid.SendInput) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(input.From, input.FromName))
	m.SetHeader("To", input.To)
	m.SetHeader("Subject", input.Subject)
	m.SetBody("text/html", input.HTMLBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}

// FormatOutreachHTML wraps a plain-text draft body in the outreach email
// layout. Newlines become <br> tags; the body text itself is escaped.
func FormatOutreachHTML(body, senderName string) (string, error) {
	t, err := template.New("outreach").Parse(outreachTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse outreach template: %w", err)
	}

	escaped := template.HTMLEscapeString(body)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")

	data := OutreachEmailData{
		Body:       template.HTML(escaped),
		SenderName: senderName,
	}

	var out bytes.Buffer
	if err := t.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render outreach template: %w", err)
	}

	return out.String(), nil
}
