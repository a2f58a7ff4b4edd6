package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// SaveEvent inserts a life event, replacing any existing record with the
// same id.
func (s *SQLiteStorage) SaveEvent(ctx context.Context, event *model.LifeEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("%w: event", ErrNilParameter)
	}
	if err := event.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO life_events (
			id, title, category, date, description, is_important, color, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, string(event.Category), formatDate(event.Date),
		event.Description, event.IsImportant, string(event.Color),
		formatTimestamp(event.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

// ListEvents returns all stored life events ordered by date.
func (s *SQLiteStorage) ListEvents(ctx context.Context) ([]model.LifeEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, date, description, is_important, color, created_at
		FROM life_events ORDER BY date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.LifeEvent
	for rows.Next() {
		var (
			event       model.LifeEvent
			category    string
			dateStr     string
			description sql.NullString
			color       string
			createdAt   string
		)
		if err := rows.Scan(&event.ID, &event.Title, &category, &dateStr,
			&description, &event.IsImportant, &color, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Category = model.EventCategory(category)
		event.Color = model.EventColor(color)
		event.Description = description.String
		if event.Date, err = parseDate(dateStr); err != nil {
			return nil, err
		}
		if event.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes a life event by id.
func (s *SQLiteStorage) DeleteEvent(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM life_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("event %s: %w", id, common.ErrNotFound)
	}
	return nil
}
