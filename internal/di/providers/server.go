package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/showcaseapp/showcase-server/internal/api"
	"github.com/showcaseapp/showcase-server/internal/config"
	"github.com/showcaseapp/showcase-server/internal/logger"
	"github.com/showcaseapp/showcase-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	engagementHandle := do.MustInvoke[*EngagementServiceHandle](i)

	services := &api.Services{
		Catalog:    do.MustInvoke[*service.CatalogService](i),
		Viewer:     do.MustInvoke[*service.ViewerService](i),
		Favorites:  do.MustInvoke[*service.FavoritesService](i),
		Engagement: engagementHandle.EngagementService,
		Search:     do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	publicURL := cfg.Server.PublicURL
	if publicURL == "" {
		publicURL = "http://localhost:" + cfg.Server.Port
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting",
			"name", cfg.Server.Name,
			"addr", srv.Addr,
			"public_url", publicURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
