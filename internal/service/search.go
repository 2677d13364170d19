package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/search"
	"github.com/showcaseapp/showcase-server/internal/store"
)

// SearchService fronts the public catalog directory.
type SearchService struct {
	index      *search.SearchIndex
	store      *store.Store
	maxResults int
	logger     *slog.Logger
}

// NewSearchService creates a new search service. maxResults caps the
// page size of a single query; zero or negative applies the default.
func NewSearchService(index *search.SearchIndex, store *store.Store, maxResults int, logger *slog.Logger) *SearchService {
	if maxResults <= 0 {
		maxResults = 25
	}
	return &SearchService{
		index:      index,
		store:      store,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Search runs a directory search with clamped pagination.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Limit > s.maxResults {
		params.Limit = s.maxResults
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return s.index.Search(ctx, params)
}

// Reindex rebuilds the directory index from the catalog store. Returns
// the number of catalogs indexed.
func (s *SearchService) Reindex(ctx context.Context) (int, error) {
	catalogs, err := s.store.ListAllCatalogs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list catalogs: %w", err)
	}

	if err := s.index.Rebuild(); err != nil {
		return 0, fmt.Errorf("rebuild index: %w", err)
	}

	docs := make([]*search.SearchDocument, 0, len(catalogs))
	for _, catalog := range catalogs {
		docs = append(docs, search.CatalogToSearchDocument(catalog))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return 0, fmt.Errorf("index catalogs: %w", err)
	}

	s.logger.Info("directory reindexed", "catalog_count", len(docs))
	return len(docs), nil
}

// IndexCatalogStoreAdapter adapts the search index to the store's
// SearchIndexer port, converting catalogs to documents on the way in.
type IndexCatalogStoreAdapter struct {
	Index *search.SearchIndex
}

// IndexCatalog implements store.SearchIndexer.
func (a IndexCatalogStoreAdapter) IndexCatalog(_ context.Context, c *domain.Catalog) error {
	return a.Index.IndexDocument(search.CatalogToSearchDocument(c))
}

// DeleteCatalog implements store.SearchIndexer.
func (a IndexCatalogStoreAdapter) DeleteCatalog(_ context.Context, catalogID string) error {
	return a.Index.DeleteDocument(catalogID)
}
