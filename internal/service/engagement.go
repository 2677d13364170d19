package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/showcaseapp/showcase-server/internal/domain"
	domainerrors "github.com/showcaseapp/showcase-server/internal/errors"
	"github.com/showcaseapp/showcase-server/internal/id"
	"github.com/showcaseapp/showcase-server/internal/ratelimit"
)

// EngagementStore is the persistence port for engagement events.
// Implemented by the SQLite store; tests substitute a fake.
type EngagementStore interface {
	RecordEvent(ctx context.Context, event *domain.EngagementEvent) error
	GetCounters(ctx context.Context, catalogID string) (*domain.EngagementCounters, error)
	ListEventsByCatalog(ctx context.Context, catalogID string, limit int) ([]*domain.EngagementEvent, error)
	DeleteEventsForCatalog(ctx context.Context, catalogID string) error
}

// EngagementService records visitor engagement without ever standing in
// the visitor's way: writes happen on a detached goroutine with their
// own timeout, and a failed write is logged, not surfaced.
type EngagementService struct {
	events       EngagementStore
	limiter      *ratelimit.KeyedRateLimiter
	logger       *slog.Logger
	writeTimeout time.Duration

	wg sync.WaitGroup
}

// NewEngagementService creates a new engagement service. The limiter may
// be nil to disable per-visitor rate limiting (tests, seed tooling).
func NewEngagementService(events EngagementStore, limiter *ratelimit.KeyedRateLimiter, writeTimeout time.Duration, logger *slog.Logger) *EngagementService {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &EngagementService{
		events:       events,
		limiter:      limiter,
		logger:       logger,
		writeTimeout: writeTimeout,
	}
}

// Record validates and persists one engagement event synchronously.
func (s *EngagementService) Record(ctx context.Context, catalogID string, kind domain.EventKind, visitorID string) error {
	if !kind.IsValid() {
		return domainerrors.Validationf("unknown event kind %q", kind)
	}
	if catalogID == "" {
		return domainerrors.Validation("catalog id is required")
	}

	if s.limiter != nil && visitorID != "" && !s.limiter.Allow(visitorID) {
		return domainerrors.Unavailable("too many events, slow down")
	}

	eventID, err := id.Generate(id.Event)
	if err != nil {
		return fmt.Errorf("generate event ID: %w", err)
	}

	event := &domain.EngagementEvent{
		ID:        eventID,
		CatalogID: catalogID,
		Kind:      kind,
		VisitorID: visitorID,
		CreatedAt: time.Now(),
	}

	if err := s.events.RecordEvent(ctx, event); err != nil {
		return fmt.Errorf("record engagement event: %w", err)
	}

	return nil
}

// RecordAsync persists an engagement event off the request path. The
// write runs on its own goroutine with a detached context so that a slow
// or failing tracking store never delays or fails the page the visitor
// is on. Validation still happens inline so callers get immediate
// feedback for bad input.
func (s *EngagementService) RecordAsync(ctx context.Context, catalogID string, kind domain.EventKind, visitorID string) error {
	if !kind.IsValid() {
		return domainerrors.Validationf("unknown event kind %q", kind)
	}
	if catalogID == "" {
		return domainerrors.Validation("catalog id is required")
	}

	if s.limiter != nil && visitorID != "" && !s.limiter.Allow(visitorID) {
		return domainerrors.Unavailable("too many events, slow down")
	}

	// Detach from the request context: the visitor navigating away must
	// not cancel the write.
	base := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		writeCtx, cancel := context.WithTimeout(base, s.writeTimeout)
		defer cancel()

		eventID, err := id.Generate(id.Event)
		if err != nil {
			s.logger.Warn("failed to generate engagement event ID", "error", err)
			return
		}

		event := &domain.EngagementEvent{
			ID:        eventID,
			CatalogID: catalogID,
			Kind:      kind,
			VisitorID: visitorID,
			CreatedAt: time.Now(),
		}

		if err := s.events.RecordEvent(writeCtx, event); err != nil {
			s.logger.Warn("failed to record engagement event",
				"catalog_id", catalogID,
				"kind", kind,
				"error", err,
			)
		}
	}()

	return nil
}

// Drain blocks until all in-flight asynchronous writes have finished.
// Called on shutdown so events recorded just before exit are not lost.
func (s *EngagementService) Drain() {
	s.wg.Wait()
}

// Stats returns the materialized counters and recent events for a catalog.
func (s *EngagementService) Stats(ctx context.Context, catalogID string, recentLimit int) (*domain.EngagementCounters, []*domain.EngagementEvent, error) {
	counters, err := s.events.GetCounters(ctx, catalogID)
	if err != nil {
		return nil, nil, fmt.Errorf("get counters: %w", err)
	}

	events, err := s.events.ListEventsByCatalog(ctx, catalogID, recentLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("list recent events: %w", err)
	}

	return counters, events, nil
}

// PurgeCatalog removes all engagement data for a deleted catalog.
func (s *EngagementService) PurgeCatalog(ctx context.Context, catalogID string) error {
	return s.events.DeleteEventsForCatalog(ctx, catalogID)
}

// CTATarget builds the external URL a call-to-action dispatches to.
// Returns a not-found error when the catalog does not carry the contact
// field backing the requested kind.
func CTATarget(catalog *domain.Catalog, kind domain.EventKind) (string, error) {
	switch kind {
	case domain.KindCallClicks:
		if catalog.PhoneNumber == "" {
			return "", domainerrors.NotFound("catalog has no phone number")
		}
		return "tel:" + catalog.PhoneNumber, nil

	case domain.KindWhatsAppClicks:
		if catalog.WhatsAppNumber == "" {
			return "", domainerrors.NotFound("catalog has no whatsapp number")
		}
		return "https://wa.me/" + digitsOnly(catalog.WhatsAppNumber), nil

	case domain.KindDirectionClicks:
		if catalog.Address == "" {
			return "", domainerrors.NotFound("catalog has no address")
		}
		return "https://maps.google.com/?q=" + url.QueryEscape(catalog.Address), nil

	default:
		return "", domainerrors.Validationf("kind %q has no dispatch target", kind)
	}
}

// digitsOnly strips everything but digits, the format wa.me expects.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
