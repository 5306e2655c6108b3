package entity

import "time"

// OutreachDraft is composed on demand and never stored on the lead itself.
// It may be exported to a side file, and the user may edit it before send.
type OutreachDraft struct {
	LeadID               string    `json:"lead_id"`
	Subject              string    `json:"subject"`
	EmailBody            string    `json:"email_body"`
	LinkedInMessage      string    `json:"linkedin_message"`
	PersonalizationScore float64   `json:"personalization_score"`
	Strategy             string    `json:"strategy"`
	WordCount            int       `json:"word_count"`
	GeneratedAt          time.Time `json:"generated_at"`
}
