package service

import (
	"context"
	"log/slog"

	"github.com/showcaseapp/showcase-server/internal/domain"
	domainerrors "github.com/showcaseapp/showcase-server/internal/errors"
	"github.com/showcaseapp/showcase-server/internal/store"
)

// CatalogRef identifies a catalog for public viewing: exactly one of
// Slug or ID must be set. Slug is the shareable form; ID is the fallback
// for catalogs reached from internal links.
type CatalogRef struct {
	Slug string
	ID   string
}

// ViewerService serves the public storefront: it resolves a catalog by
// reference, records the view, and projects the catalog into its view
// model. Resolution failures never leak internals; a missing catalog and
// a broken store both read as "unavailable" to the visitor, just with
// different status codes.
type ViewerService struct {
	store      *store.Store
	engagement *EngagementService
	logger     *slog.Logger
}

// NewViewerService creates a new viewer service.
func NewViewerService(store *store.Store, engagement *EngagementService, logger *slog.Logger) *ViewerService {
	return &ViewerService{
		store:      store,
		engagement: engagement,
		logger:     logger,
	}
}

// ResolveCatalog loads the catalog a reference points at.
func (s *ViewerService) ResolveCatalog(ctx context.Context, ref CatalogRef) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case ref.Slug != "" && ref.ID != "":
		return nil, domainerrors.Validation("catalog reference must carry a slug or an id, not both")
	case ref.Slug != "":
		return s.store.GetCatalogBySlug(ctx, ref.Slug)
	case ref.ID != "":
		return s.store.GetCatalog(ctx, ref.ID)
	default:
		return nil, domainerrors.Validation("catalog reference is empty")
	}
}

// ResolveView resolves a catalog and builds its public view model under
// the given filter. Each successful resolve records one views event; the
// write is asynchronous and its failure never fails the page.
func (s *ViewerService) ResolveView(ctx context.Context, ref CatalogRef, filter domain.ItemFilter, visitorID string) (*domain.CatalogView, error) {
	catalog, err := s.ResolveCatalog(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := s.engagement.RecordAsync(ctx, catalog.ID, domain.KindViews, visitorID); err != nil {
		// Rate-limited or invalid tracking input; the page still renders.
		s.logger.Debug("view not recorded",
			"catalog_id", catalog.ID,
			"error", err,
		)
	}

	view := domain.BuildCatalogView(catalog, filter)
	return &view, nil
}

// ResolveItem returns one item from a resolved catalog, for the item
// detail view. The catalog is resolved without recording a views event;
// opening an item is not a page load.
func (s *ViewerService) ResolveItem(ctx context.Context, ref CatalogRef, itemID string) (*domain.CatalogItem, error) {
	catalog, err := s.ResolveCatalog(ctx, ref)
	if err != nil {
		return nil, err
	}

	item := catalog.Item(itemID)
	if item == nil {
		return nil, domainerrors.NotFoundf("item %s not found", itemID)
	}
	return item, nil
}

// DispatchCTA resolves a catalog, records the click for the given CTA
// kind, and returns the external URL to send the visitor to. The click
// write is asynchronous: a tracking failure still redirects.
func (s *ViewerService) DispatchCTA(ctx context.Context, catalogID string, kind domain.EventKind, visitorID string) (string, error) {
	if kind == domain.KindViews {
		return "", domainerrors.Validation("views is not a dispatchable call-to-action")
	}

	catalog, err := s.store.GetCatalog(ctx, catalogID)
	if err != nil {
		return "", err
	}

	target, err := CTATarget(catalog, kind)
	if err != nil {
		return "", err
	}

	if err := s.engagement.RecordAsync(ctx, catalog.ID, kind, visitorID); err != nil {
		s.logger.Debug("cta click not recorded",
			"catalog_id", catalog.ID,
			"kind", kind,
			"error", err,
		)
	}

	return target, nil
}
