package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/tracker"
)

// HistoryEntry is one archived program as listed by ListHistory. The summary
// fields are stored next to the program so listing never decodes it.
type HistoryEntry struct {
	ID         string
	ProgramID  string
	RaceName   string
	Distance   models.Distance
	TotalWeeks int
	Progress   tracker.Progress // Weeks is left empty
	ArchivedAt time.Time
}

func encodeProgram(p *models.Program) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode program: %w", err)
	}
	return string(data), nil
}

func decodeProgram(data string) (*models.Program, error) {
	var p models.Program
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode program: %w", err)
	}
	return &p, nil
}

// SaveActiveProgram replaces the active program.
func (s *Storage) SaveActiveProgram(ctx context.Context, p *models.Program) error {
	data, err := encodeProgram(p)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO programs (name, data, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		activeProgramKey, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save active program: %w", err)
	}
	return nil
}

func (s *Storage) LoadActiveProgram(ctx context.Context) (*models.Program, error) {
	var data string
	err := s.DB.QueryRowContext(ctx,
		"SELECT data FROM programs WHERE name = ?", activeProgramKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveProgram
		}
		return nil, fmt.Errorf("failed to load active program: %w", err)
	}
	return decodeProgram(data)
}

func (s *Storage) HasActiveProgram(ctx context.Context) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM programs WHERE name = ?)", activeProgramKey,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active program: %w", err)
	}
	return exists, nil
}

// ArchiveActiveProgram moves the active program into the history, stamped
// with now, and clears the active slot.
func (s *Storage) ArchiveActiveProgram(ctx context.Context, now time.Time) (*models.Program, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx,
		"SELECT data FROM programs WHERE name = ?", activeProgramKey,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveProgram
		}
		return nil, fmt.Errorf("failed to load active program: %w", err)
	}

	p, err := decodeProgram(data)
	if err != nil {
		return nil, err
	}
	at := now.UTC().Truncate(time.Second)
	p.ArchivedAt = &at

	archived, err := encodeProgram(p)
	if err != nil {
		return nil, err
	}

	pr := tracker.ComputeProgress(p)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO program_history
             (id, program_id, race_name, distance, total_weeks, completed, planned, archived_at, data)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), p.ID, p.RaceName, string(p.Distance), p.TotalWeeks,
		pr.Completed, pr.Planned, at.Format(time.RFC3339), archived,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to archive program: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM programs WHERE name = ?", activeProgramKey); err != nil {
		return nil, fmt.Errorf("failed to clear active program: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return p, nil
}

// ListHistory returns archived programs, newest first.
func (s *Storage) ListHistory(ctx context.Context) ([]HistoryEntry, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, program_id, race_name, distance, total_weeks, completed, planned, archived_at
         FROM program_history
         ORDER BY archived_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var raceName sql.NullString
		var distance, archivedAt string
		err := rows.Scan(&e.ID, &e.ProgramID, &raceName, &distance, &e.TotalWeeks,
			&e.Progress.Completed, &e.Progress.Planned, &archivedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.RaceName = raceName.String
		e.Distance = models.Distance(distance)
		e.ArchivedAt, err = time.Parse(time.RFC3339, archivedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid archived_at %q: %w", archivedAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetArchived loads an archived program by history ID. Program IDs are
// accepted too; they are not unique, so the newest archive of that program
// wins.
func (s *Storage) GetArchived(ctx context.Context, id string) (*models.Program, error) {
	queries := []string{
		"SELECT data FROM program_history WHERE id = ?",
		`SELECT data FROM program_history WHERE program_id = ?
         ORDER BY archived_at DESC, rowid DESC LIMIT 1`,
	}

	for _, q := range queries {
		var data string
		err := s.DB.QueryRowContext(ctx, q, id).Scan(&data)
		if err == nil {
			return decodeProgram(data)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to load archived program: %w", err)
		}
	}
	return nil, fmt.Errorf("archived program %s: %w", id, ErrNotFound)
}

// ClearHistory deletes every archived program and returns how many were removed.
func (s *Storage) ClearHistory(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM program_history")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}
