package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead statuses. New is the only status the generator ever assigns;
// Contacted is set by the dispatcher on a successful send; the remaining
// transitions are manual edits. Converted and Rejected are terminal.
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusQualified = "Qualified"
	StatusConverted = "Converted"
	StatusRejected  = "Rejected"
)

var leadStatuses = []string{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusConverted,
	StatusRejected,
}

func IsValidStatus(status string) bool {
	for _, s := range leadStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func LeadStatuses() []string {
	out := make([]string, len(leadStatuses))
	copy(out, leadStatuses)
	return out
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	Address   string    `json:"address,omitempty"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, phone, email, website, address, category, status string) (*Lead, error) {
	if status == "" {
		status = StatusNew
	}

	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Website:   website,
		Address:   address,
		Category:  category,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !IsValidStatus(l.Status) {
		return &ValidationError{Field: "status", Message: "must be one of " + strings.Join(leadStatuses, ", ")}
	}
	return nil
}

// LeadFilter narrows List results. Query is a case-insensitive substring
// match against name/phone/email; Status is an exact match. Empty fields
// match everything.
type LeadFilter struct {
	Query  string
	Status string
}

func (f LeadFilter) Matches(l Lead) bool {
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.Phone), q) &&
			!strings.Contains(strings.ToLower(l.Email), q) {
			return false
		}
	}
	return true
}

// LeadUpdate is a partial update; nil fields are left untouched.
type LeadUpdate struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Website  *string `json:"website,omitempty"`
	Address  *string `json:"address,omitempty"`
	Category *string `json:"category,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, id string, update LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter LeadFilter) ([]Lead, error)
	Clear(ctx context.Context) error
	ExportCSV(ctx context.Context) ([]byte, error)
}
