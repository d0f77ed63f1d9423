package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

func (s *Storage) SaveProfile(ctx context.Context, p *models.Profile) error {
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO profile (id, data, updated_at) VALUES (1, ?, ?)
         ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile, or an empty one when none was saved.
func (s *Storage) LoadProfile(ctx context.Context) (*models.Profile, error) {
	var data string
	err := s.DB.QueryRowContext(ctx, "SELECT data FROM profile WHERE id = 1").Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Profile{}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}
