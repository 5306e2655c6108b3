package entity

import (
	"context"
	"time"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	ChannelEmail = "email"
)

// SendLogEntry records one dispatch attempt. Entries are append-only and
// never mutated or deleted.
type SendLogEntry struct {
	LeadID    string    `json:"lead_id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
	Outcome   string    `json:"outcome"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message,omitempty"`
}

type SendLogRepositoryInterface interface {
	Append(ctx context.Context, entry *SendLogEntry) error
	List(ctx context.Context) ([]SendLogEntry, error)
}
