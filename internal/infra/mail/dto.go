package mail

import "html/template"

// OutreachEmailData feeds the HTML wrapper around a composed draft body.
type OutreachEmailData struct {
	Body       template.HTML
	SenderName string
}

// SMTPSender delivers through a plain SMTP relay. It is the fallback when
// no SendGrid key is configured.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
