package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/store"
)

// FavoritesService manages per-visitor favorites lists. Lists are keyed
// by the anonymous visitor ID; no account is involved.
type FavoritesService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(store *store.Store, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:  store,
		logger: logger,
	}
}

// List returns the visitor's favorite catalog IDs.
func (s *FavoritesService) List(ctx context.Context, visitorID string) (domain.Favorites, error) {
	return s.store.GetFavorites(ctx, visitorID)
}

// ListCatalogs resolves the visitor's favorites to catalogs. Favorites
// pointing at deleted catalogs are skipped, and the stored list is
// compacted so they don't accumulate.
func (s *FavoritesService) ListCatalogs(ctx context.Context, visitorID string) ([]*domain.Catalog, error) {
	favs, err := s.store.GetFavorites(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	catalogs := make([]*domain.Catalog, 0, len(favs))
	live := make(domain.Favorites, 0, len(favs))
	for _, catalogID := range favs {
		catalog, err := s.store.GetCatalog(ctx, catalogID)
		if err != nil {
			if errors.Is(err, store.ErrCatalogNotFound) {
				continue
			}
			return nil, fmt.Errorf("get favorited catalog: %w", err)
		}
		catalogs = append(catalogs, catalog)
		live = append(live, catalogID)
	}

	if len(live) != len(favs) {
		if err := s.store.SetFavorites(ctx, visitorID, live); err != nil {
			s.logger.Warn("failed to compact favorites",
				"visitor_id", visitorID,
				"error", err,
			)
		}
	}

	return catalogs, nil
}

// Toggle flips a catalog's membership in the visitor's favorites.
// Returns whether the catalog is favorited after the toggle. The catalog
// must exist; favoriting a ghost is rejected rather than stored.
func (s *FavoritesService) Toggle(ctx context.Context, visitorID, catalogID string) (bool, error) {
	if _, err := s.store.GetCatalog(ctx, catalogID); err != nil {
		return false, err
	}

	favs, err := s.store.GetFavorites(ctx, visitorID)
	if err != nil {
		return false, err
	}

	favs, added := favs.Toggle(catalogID)

	if err := s.store.SetFavorites(ctx, visitorID, favs); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}

	s.logger.Debug("favorite toggled",
		"visitor_id", visitorID,
		"catalog_id", catalogID,
		"favorited", added,
	)

	return added, nil
}

// IsFavorited reports whether the visitor has favorited the catalog.
func (s *FavoritesService) IsFavorited(ctx context.Context, visitorID, catalogID string) (bool, error) {
	favs, err := s.store.GetFavorites(ctx, visitorID)
	if err != nil {
		return false, err
	}
	return favs.Contains(catalogID), nil
}
