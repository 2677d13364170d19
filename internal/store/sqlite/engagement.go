package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/store"
)

// counterColumn maps an event kind to its counter column. Kinds are
// validated upstream; the column name is never taken from user input.
func counterColumn(kind domain.EventKind) (string, bool) {
	switch kind {
	case domain.KindViews:
		return "views", true
	case domain.KindCallClicks:
		return "call_clicks", true
	case domain.KindWhatsAppClicks:
		return "whatsapp_clicks", true
	case domain.KindDirectionClicks:
		return "direction_clicks", true
	default:
		return "", false
	}
}

// RecordEvent appends an engagement event and bumps the matching counter
// in one transaction. The counter row is created on first touch.
func (s *Store) RecordEvent(ctx context.Context, event *domain.EngagementEvent) error {
	column, ok := counterColumn(event.Kind)
	if !ok {
		return store.ErrInvalidInput.WithMessage(fmt.Sprintf("unknown event kind %q", event.Kind))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO engagement_events (id, catalog_id, kind, visitor_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.CatalogID,
		string(event.Kind),
		nullString(event.VisitorID),
		formatTime(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert engagement event: %w", err)
	}

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO engagement_counters (catalog_id, %[1]s, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT(catalog_id) DO UPDATE SET
			%[1]s = %[1]s + 1,
			updated_at = excluded.updated_at`, column),
		event.CatalogID,
		formatTime(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("bump %s counter: %w", column, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit engagement event: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug("engagement event recorded",
			"catalog_id", event.CatalogID,
			"kind", event.Kind,
		)
	}
	return nil
}

// GetCounters returns the materialized counters for a catalog. A catalog
// that has never seen an event gets zeroed counters, not an error.
func (s *Store) GetCounters(ctx context.Context, catalogID string) (*domain.EngagementCounters, error) {
	var (
		c         domain.EngagementCounters
		updatedAt string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT catalog_id, views, call_clicks, whatsapp_clicks, direction_clicks, updated_at
		FROM engagement_counters
		WHERE catalog_id = ?`, catalogID).Scan(
		&c.CatalogID,
		&c.Views,
		&c.CallClicks,
		&c.WhatsAppClicks,
		&c.DirectionClicks,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.EngagementCounters{CatalogID: catalogID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get counters: %w", err)
	}

	c.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &c, nil
}

// ListEventsByCatalog returns a catalog's most recent events, newest
// first, capped at limit.
func (s *Store) ListEventsByCatalog(ctx context.Context, catalogID string, limit int) ([]*domain.EngagementEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, catalog_id, kind, visitor_id, created_at
		FROM engagement_events
		WHERE catalog_id = ?
		ORDER BY created_at DESC
		LIMIT ?`, catalogID, limit)
	if err != nil {
		return nil, fmt.Errorf("list engagement events: %w", err)
	}
	defer rows.Close()

	var events []*domain.EngagementEvent
	for rows.Next() {
		var (
			e         domain.EngagementEvent
			kind      string
			visitorID sql.NullString
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.CatalogID, &kind, &visitorID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan engagement event: %w", err)
		}
		e.Kind = domain.EventKind(kind)
		if visitorID.Valid {
			e.VisitorID = visitorID.String
		}
		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate engagement events: %w", err)
	}

	return events, nil
}

// DeleteEventsForCatalog removes a catalog's events and counters. Used
// when a catalog is deleted by its owner.
func (s *Store) DeleteEventsForCatalog(ctx context.Context, catalogID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM engagement_events WHERE catalog_id = ?`, catalogID); err != nil {
		return fmt.Errorf("delete engagement events: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM engagement_counters WHERE catalog_id = ?`, catalogID); err != nil {
		return fmt.Errorf("delete engagement counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
