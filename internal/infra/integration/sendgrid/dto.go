package sendgrid

// SendInput is the narrow contract the dispatcher depends on. The SMTP
// fallback sender accepts the same input.
type SendInput struct {
	From     string
	FromName string
	To       string
	Subject  string
	HTMLBody string
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
