package database

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/xavierca1/leadgenius/internal/entity"
)

// csvColumns is the documented export layout. Order matters: callers parse
// the file back by column.
var csvColumns = []string{
	"id", "name", "phone", "email", "website", "address",
	"category", "status", "created_at", "updated_at",
}

// LeadRepository persists the whole collection in a single JSON file.
// Every mutation loads the file, applies the change in memory and rewrites
// the file. Single writer at a time is assumed; there is no partial-write
// recovery.
type LeadRepository struct {
	Path string
}

func NewLeadRepository(path string) *LeadRepository {
	return &LeadRepository{Path: path}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	leads, err := r.load()
	if err != nil {
		return err
	}

	for _, l := range leads {
		if l.ID == lead.ID {
			return fmt.Errorf("duplicate lead id %s", lead.ID)
		}
	}

	leads = append(leads, *lead)
	return r.save(leads)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range leads {
		if leads[i].ID == id {
			lead := leads[i]
			return &lead, nil
		}
	}

	return nil, entity.ErrLeadNotFound
}

func (r *LeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate) (*entity.Lead, error) {
	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range leads {
		if leads[i].ID != id {
			continue
		}

		merged := leads[i]
		applyUpdate(&merged, update)
		merged.UpdatedAt = time.Now()

		if err := merged.Validate(); err != nil {
			return nil, err
		}

		leads[i] = merged
		if err := r.save(leads); err != nil {
			return nil, err
		}

		lead := merged
		return &lead, nil
	}

	return nil, entity.ErrLeadNotFound
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	leads, err := r.load()
	if err != nil {
		return err
	}

	for i := range leads {
		if leads[i].ID == id {
			leads = append(leads[:i], leads[i+1:]...)
			return r.save(leads)
		}
	}

	return entity.ErrLeadNotFound
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *LeadRepository) Clear(ctx context.Context) error {
	return r.save([]entity.Lead{})
}

func (r *LeadRepository) ExportCSV(ctx context.Context) ([]byte, error) {
	leads, err := r.load()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}

	for _, l := range leads {
		row := []string{
			l.ID, l.Name, l.Phone, l.Email, l.Website, l.Address,
			l.Category, l.Status,
			l.CreatedAt.Format(time.RFC3339),
			l.UpdatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (r *LeadRepository) load() ([]entity.Lead, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Lead{}, nil
		}
		return nil, fmt.Errorf("failed to read lead store: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.Lead{}, nil
	}

	var leads []entity.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse lead store: %w", err)
	}

	return leads, nil
}

func (r *LeadRepository) save(leads []entity.Lead) error {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(r.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write lead store: %w", err)
	}

	return nil
}

func applyUpdate(l *entity.Lead, u entity.LeadUpdate) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Website != nil {
		l.Website = *u.Website
	}
	if u.Address != nil {
		l.Address = *u.Address
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
}
