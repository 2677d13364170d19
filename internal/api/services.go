package api

import (
	"github.com/showcaseapp/showcase-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Catalog    *service.CatalogService
	Viewer     *service.ViewerService
	Favorites  *service.FavoritesService
	Engagement *service.EngagementService
	Search     *service.SearchService
}
