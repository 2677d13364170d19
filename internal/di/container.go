// Package di provides dependency injection configuration for the showcase server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/showcaseapp/showcase-server/internal/config"
	"github.com/showcaseapp/showcase-server/internal/di/providers"
	"github.com/showcaseapp/showcase-server/internal/logger"
	"github.com/showcaseapp/showcase-server/internal/service"
	"github.com/showcaseapp/showcase-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideEngagementStore)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Business services
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideEngagementService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideViewerService)
	do.Provide(injector, providers.ProvideFavoritesService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.EngagementStoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)
	_ = do.MustInvoke[*providers.EngagementServiceHandle](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*service.ViewerService](injector)
	_ = do.MustInvoke[*service.FavoritesService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Rebuild an empty index when catalogs already exist
	providers.TriggerSearchReindexIfNeeded(injector)

	return nil
}
