package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xavierca1/leadgenius/internal/entity"
)

// SendLogRepository keeps the send-activity log as a JSON array file.
// Entries are append-only; nothing ever mutates or removes them.
type SendLogRepository struct {
	Path string
}

func NewSendLogRepository(path string) *SendLogRepository {
	return &SendLogRepository{Path: path}
}

func (r *SendLogRepository) Append(ctx context.Context, entry *entity.SendLogEntry) error {
	entries, err := r.load()
	if err != nil {
		return err
	}

	entries = append(entries, *entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(r.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write send log: %w", err)
	}

	return nil
}

func (r *SendLogRepository) List(ctx context.Context) ([]entity.SendLogEntry, error) {
	return r.load()
}

func (r *SendLogRepository) load() ([]entity.SendLogEntry, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.SendLogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read send log: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []entity.SendLogEntry{}, nil
	}

	var entries []entity.SendLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse send log: %w", err)
	}

	return entries, nil
}
