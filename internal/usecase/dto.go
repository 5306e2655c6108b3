package usecase

import "github.com/xavierca1/leadgenius/internal/entity"

type GenerateLeadsInput struct {
	Category   string `json:"category"`
	Location   string `json:"location"`
	MaxResults int    `json:"max_results"`
}

// GenerateProgress is reported after every processed candidate so the shell
// can render live status during a long run.
type GenerateProgress struct {
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	LeadName   string `json:"lead_name"`
	EmailFound bool   `json:"email_found"`
	Message    string `json:"message,omitempty"`
}

type GenerateLeadsOutput struct {
	Created     []entity.Lead `json:"created"`
	EmailsFound int           `json:"emails_found"`
	Skipped     int           `json:"skipped"`
}

type ComposeProgress struct {
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	LeadName string `json:"lead_name"`
	Failed   bool   `json:"failed"`
	Message  string `json:"message,omitempty"`
}

type ComposeFailure struct {
	LeadID   string `json:"lead_id"`
	LeadName string `json:"lead_name"`
	Reason   string `json:"reason"`
}

// BatchComposeOutput lists both outcomes: one lead's failure never aborts
// the rest of the batch.
type BatchComposeOutput struct {
	Drafts   []entity.OutreachDraft `json:"drafts"`
	Failures []ComposeFailure       `json:"failures,omitempty"`
}
