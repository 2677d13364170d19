package providers

import (
	"github.com/samber/do/v2"

	"github.com/showcaseapp/showcase-server/internal/config"
	"github.com/showcaseapp/showcase-server/internal/logger"
	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/showcaseapp/showcase-server/internal/store/sqlite"
)

// StoreHandle wraps the catalog store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the catalog and favorites store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := cfg.CatalogDBPath()
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// EngagementStoreHandle wraps the engagement event store with shutdown capability.
type EngagementStoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *EngagementStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideEngagementStore provides the engagement event store.
func ProvideEngagementStore(i do.Injector) (*EngagementStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := cfg.EngagementDBPath()
	db, err := sqlite.Open(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Engagement database initialized", "path", dbPath)

	return &EngagementStoreHandle{Store: db}, nil
}
