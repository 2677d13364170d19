package providers

import (
	"github.com/samber/do/v2"

	"github.com/showcaseapp/showcase-server/internal/config"
	"github.com/showcaseapp/showcase-server/internal/logger"
	"github.com/showcaseapp/showcase-server/internal/ratelimit"
	"github.com/showcaseapp/showcase-server/internal/service"
	"github.com/showcaseapp/showcase-server/internal/validation"
)

// RateLimiterHandle wraps the keyed rate limiter with shutdown capability.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideRateLimiter provides the per-visitor engagement rate limiter.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	limiter := ratelimit.New(cfg.Engagement.RateLimitPerVisitor, cfg.Engagement.RateLimitBurst)
	return &RateLimiterHandle{KeyedRateLimiter: limiter}, nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// EngagementServiceHandle wraps the engagement service so in-flight
// tracking writes drain on shutdown.
type EngagementServiceHandle struct {
	*service.EngagementService
}

// Shutdown implements do.Shutdownable.
func (h *EngagementServiceHandle) Shutdown() error {
	h.Drain()
	return nil
}

// ProvideEngagementService provides the engagement tracking service.
func ProvideEngagementService(i do.Injector) (*EngagementServiceHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	eventsHandle := do.MustInvoke[*EngagementStoreHandle](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	svc := service.NewEngagementService(
		eventsHandle.Store,
		limiterHandle.KeyedRateLimiter,
		cfg.Engagement.WriteTimeout,
		log.Logger,
	)

	return &EngagementServiceHandle{EngagementService: svc}, nil
}

// ProvideCatalogService provides the catalog authoring service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	engagementHandle := do.MustInvoke[*EngagementServiceHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, engagementHandle.EngagementService, validator, log.Logger), nil
}

// ProvideViewerService provides the public storefront service.
func ProvideViewerService(i do.Injector) (*service.ViewerService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	engagementHandle := do.MustInvoke[*EngagementServiceHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewViewerService(storeHandle.Store, engagementHandle.EngagementService, log.Logger), nil
}

// ProvideFavoritesService provides the visitor favorites service.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFavoritesService(storeHandle.Store, log.Logger), nil
}
