package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/showcaseapp/showcase-server/internal/config"
	"github.com/showcaseapp/showcase-server/internal/logger"
	"github.com/showcaseapp/showcase-server/internal/search"
	"github.com/showcaseapp/showcase-server/internal/service"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.SearchIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve directory search index.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewSearchIndex(search.Options{
		DataPath: cfg.SearchIndexPath(),
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Info("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{SearchIndex: index}, nil
}

// ProvideSearchService provides the directory search service and wires
// the index into the store for automatic indexing on catalog writes.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewSearchService(indexHandle.SearchIndex, storeHandle.Store, cfg.Search.MaxResults, log.Logger)

	storeHandle.SetSearchIndexer(service.IndexCatalogStoreAdapter{Index: indexHandle.SearchIndex})

	return svc, nil
}

// TriggerSearchReindexIfNeeded rebuilds an empty index when catalogs
// already exist. Should be called after all services are wired.
func TriggerSearchReindexIfNeeded(i do.Injector) {
	searchService := do.MustInvoke[*service.SearchService](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	docCount, _ := indexHandle.DocumentCount()
	if docCount > 0 {
		return
	}

	ctx := context.Background()
	catalogs, err := storeHandle.ListAllCatalogs(ctx)
	if err != nil || len(catalogs) == 0 {
		return
	}

	log.Info("Search index is empty but catalogs exist, triggering initial reindex",
		"catalog_count", len(catalogs),
	)

	go func() {
		indexed, err := searchService.Reindex(context.Background())
		if err != nil {
			log.Error("Initial search reindex failed", "error", err)
			return
		}
		log.Info("Initial search reindex completed", "documents", indexed)
	}()
}
