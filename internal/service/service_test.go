package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/showcaseapp/showcase-server/internal/validation"
	"github.com/stretchr/testify/require"
)

// fakeEngagementStore records events in memory for assertions.
type fakeEngagementStore struct {
	mu         sync.Mutex
	events     []*domain.EngagementEvent
	failRecord bool
}

func (f *fakeEngagementStore) RecordEvent(_ context.Context, event *domain.EngagementEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRecord {
		return errors.New("tracking store down")
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEngagementStore) GetCounters(_ context.Context, catalogID string) (*domain.EngagementCounters, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counters := &domain.EngagementCounters{CatalogID: catalogID}
	for _, e := range f.events {
		if e.CatalogID == catalogID {
			counters.Apply(e.Kind)
		}
	}
	return counters, nil
}

func (f *fakeEngagementStore) ListEventsByCatalog(_ context.Context, catalogID string, limit int) ([]*domain.EngagementEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.EngagementEvent
	for _, e := range f.events {
		if e.CatalogID == catalogID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEngagementStore) DeleteEventsForCatalog(_ context.Context, catalogID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.events[:0]
	for _, e := range f.events {
		if e.CatalogID != catalogID {
			kept = append(kept, e)
		}
	}
	f.events = kept
	return nil
}

func (f *fakeEngagementStore) eventKinds(catalogID string) []domain.EventKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kinds []domain.EventKind
	for _, e := range f.events {
		if e.CatalogID == catalogID {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

// testEnv wires real badger storage with a fake engagement sink.
type testEnv struct {
	store      *store.Store
	events     *fakeEngagementStore
	engagement *EngagementService
	catalogs   *CatalogService
	viewer     *ViewerService
	favorites  *FavoritesService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	s, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	events := &fakeEngagementStore{}
	engagement := NewEngagementService(events, nil, 0, logger)
	t.Cleanup(engagement.Drain)

	return &testEnv{
		store:      s,
		events:     events,
		engagement: engagement,
		catalogs:   NewCatalogService(s, engagement, validation.New(), logger),
		viewer:     NewViewerService(s, engagement, logger),
		favorites:  NewFavoritesService(s, logger),
	}
}

func seedCatalog(t *testing.T, env *testEnv, ownerID, slug string) *domain.Catalog {
	t.Helper()

	catalog, err := env.catalogs.CreateCatalog(context.Background(), ownerID, CatalogInput{
		Slug:           slug,
		BusinessName:   "Corner Cafe",
		PhoneNumber:    "+15550100",
		WhatsAppNumber: "+1 (555) 010-0999",
		Address:        "1 Main St, Springfield",
		Items: []CatalogItemInput{
			{Name: "Latte", Price: 4.5, Category: "Drinks"},
			{Name: "Croissant", Price: 3, Category: "Bakery"},
		},
	})
	require.NoError(t, err)
	return catalog
}
