package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/store"
)

func testEvent(id string, kind domain.EventKind) *domain.EngagementEvent {
	return &domain.EngagementEvent{
		ID:        id,
		CatalogID: "cat-1",
		Kind:      kind,
		VisitorID: "vis-1",
		CreatedAt: time.Now().UTC(),
	}
}

func TestRecordEvent_BumpsCounter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.RecordEvent(ctx, testEvent("ev-1", domain.KindViews)); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if err := s.RecordEvent(ctx, testEvent("ev-2", domain.KindViews)); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if err := s.RecordEvent(ctx, testEvent("ev-3", domain.KindWhatsAppClicks)); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	counters, err := s.GetCounters(ctx, "cat-1")
	if err != nil {
		t.Fatalf("GetCounters: %v", err)
	}

	if counters.Views != 2 {
		t.Errorf("Views: got %d, want 2", counters.Views)
	}
	if counters.WhatsAppClicks != 1 {
		t.Errorf("WhatsAppClicks: got %d, want 1", counters.WhatsAppClicks)
	}
	if counters.CallClicks != 0 {
		t.Errorf("CallClicks: got %d, want 0", counters.CallClicks)
	}
	if counters.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestRecordEvent_AllKinds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, kind := range domain.EventKinds {
		event := testEvent(fmt.Sprintf("ev-%d", i), kind)
		if err := s.RecordEvent(ctx, event); err != nil {
			t.Fatalf("RecordEvent(%s): %v", kind, err)
		}
	}

	counters, err := s.GetCounters(ctx, "cat-1")
	if err != nil {
		t.Fatalf("GetCounters: %v", err)
	}
	for _, kind := range domain.EventKinds {
		if got := counters.Count(kind); got != 1 {
			t.Errorf("Count(%s): got %d, want 1", kind, got)
		}
	}
}

func TestRecordEvent_UnknownKind(t *testing.T) {
	s := newTestStore(t)

	err := s.RecordEvent(context.Background(), testEvent("ev-1", domain.EventKind("bogus")))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *store.Error, got %T", err)
	}
	if storeErr.Code != store.ErrInvalidInput.Code {
		t.Errorf("Code: got %d, want %d", storeErr.Code, store.ErrInvalidInput.Code)
	}
}

func TestGetCounters_NeverTrackedCatalog(t *testing.T) {
	s := newTestStore(t)

	counters, err := s.GetCounters(context.Background(), "cat-untracked")
	if err != nil {
		t.Fatalf("GetCounters: %v", err)
	}

	if counters.CatalogID != "cat-untracked" {
		t.Errorf("CatalogID: got %q, want %q", counters.CatalogID, "cat-untracked")
	}
	if counters.Views != 0 || counters.CallClicks != 0 || counters.WhatsAppClicks != 0 || counters.DirectionClicks != 0 {
		t.Errorf("expected zeroed counters, got %+v", counters)
	}
}

func TestListEventsByCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := range 5 {
		event := &domain.EngagementEvent{
			ID:        fmt.Sprintf("ev-%d", i),
			CatalogID: "cat-1",
			Kind:      domain.KindViews,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.RecordEvent(ctx, event); err != nil {
			t.Fatalf("RecordEvent: %v", err)
		}
	}

	// Event for another catalog must not leak in.
	other := testEvent("ev-other", domain.KindViews)
	other.CatalogID = "cat-2"
	if err := s.RecordEvent(ctx, other); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	events, err := s.ListEventsByCatalog(ctx, "cat-1", 3)
	if err != nil {
		t.Fatalf("ListEventsByCatalog: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].ID != "ev-4" {
		t.Errorf("first event: got %q, want %q", events[0].ID, "ev-4")
	}
	for _, e := range events {
		if e.CatalogID != "cat-1" {
			t.Errorf("unexpected catalog %q in results", e.CatalogID)
		}
	}
}

func TestListEventsByCatalog_Empty(t *testing.T) {
	s := newTestStore(t)

	events, err := s.ListEventsByCatalog(context.Background(), "cat-none", 10)
	if err != nil {
		t.Fatalf("ListEventsByCatalog: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDeleteEventsForCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.RecordEvent(ctx, testEvent("ev-1", domain.KindViews)); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if err := s.DeleteEventsForCatalog(ctx, "cat-1"); err != nil {
		t.Fatalf("DeleteEventsForCatalog: %v", err)
	}

	events, err := s.ListEventsByCatalog(ctx, "cat-1", 10)
	if err != nil {
		t.Fatalf("ListEventsByCatalog: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after delete, want 0", len(events))
	}

	counters, err := s.GetCounters(ctx, "cat-1")
	if err != nil {
		t.Fatalf("GetCounters: %v", err)
	}
	if counters.Views != 0 {
		t.Errorf("Views after delete: got %d, want 0", counters.Views)
	}
}

func TestRecordEvent_VisitorRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	anon := testEvent("ev-anon", domain.KindViews)
	anon.VisitorID = ""
	if err := s.RecordEvent(ctx, anon); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if err := s.RecordEvent(ctx, testEvent("ev-vis", domain.KindCallClicks)); err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	events, err := s.ListEventsByCatalog(ctx, "cat-1", 10)
	if err != nil {
		t.Fatalf("ListEventsByCatalog: %v", err)
	}

	byID := make(map[string]*domain.EngagementEvent, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	if byID["ev-anon"].VisitorID != "" {
		t.Errorf("anonymous event VisitorID: got %q, want empty", byID["ev-anon"].VisitorID)
	}
	if byID["ev-vis"].VisitorID != "vis-1" {
		t.Errorf("VisitorID: got %q, want %q", byID["ev-vis"].VisitorID, "vis-1")
	}
}
