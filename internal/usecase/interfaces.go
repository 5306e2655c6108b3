package usecase

import (
	"context"

	"github.com/xavierca1/leadgenius/internal/infra/integration/gemini"
	"github.com/xavierca1/leadgenius/internal/infra/integration/places"
	"github.com/xavierca1/leadgenius/internal/infra/integration/sendgrid"
)

// PlacesDirectory looks up business candidates by category and location.
// Any error is fatal to the generation run that issued the query.
type PlacesDirectory interface {
	Search(ctx context.Context, category, location string, limit int) ([]places.Place, error)
}

// EmailScraper extracts a contact email from a business website. Errors are
// advisory: the caller degrades the candidate to "no email".
type EmailScraper interface {
	FindEmail(ctx context.Context, website string) (string, error)
}

type OutreachGenerator interface {
	GenerateOutreach(ctx context.Context, input gemini.OutreachInput) (*gemini.OutreachOutput, error)
}

// EmailGateway is implemented by both the SendGrid client and the SMTP
// fallback sender.
type EmailGateway interface {
	Send(ctx context.Context, input sendgrid.SendInput) error
}
