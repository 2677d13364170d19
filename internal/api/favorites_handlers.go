package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/showcaseapp/showcase-server/internal/domain"
)

func (s *Server) registerFavoritesRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns the visitor's favorited catalogs",
		Tags:        []string{"Favorites"},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/{catalogId}",
		Summary:     "Toggle favorite",
		Description: "Flips a catalog's membership in the visitor's favorites",
		Tags:        []string{"Favorites"},
	}, s.handleToggleFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFavorite",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/{catalogId}",
		Summary:     "Check favorite",
		Description: "Reports whether the visitor has favorited the catalog",
		Tags:        []string{"Favorites"},
	}, s.handleGetFavorite)
}

// === DTOs ===

// FavoriteCatalogResponse is the favorites-list projection of a catalog.
type FavoriteCatalogResponse struct {
	ID           string `json:"id" doc:"Catalog ID"`
	Slug         string `json:"slug" doc:"Catalog slug"`
	BusinessName string `json:"business_name" doc:"Merchant business name"`
	LogoURL      string `json:"logo_url,omitempty" doc:"Merchant logo URL"`
	ItemCount    int    `json:"item_count" doc:"Number of items in the catalog"`
}

// ListFavoritesResponse contains the visitor's favorited catalogs.
type ListFavoritesResponse struct {
	Catalogs []FavoriteCatalogResponse `json:"catalogs" doc:"Favorited catalogs, oldest first"`
}

// ListFavoritesOutput wraps the list favorites response for Huma.
type ListFavoritesOutput struct {
	Body ListFavoritesResponse
}

// FavoriteInput contains parameters addressing one favorite.
type FavoriteInput struct {
	CatalogID string `path:"catalogId" doc:"Catalog ID"`
}

// FavoriteStateResponse reports a catalog's favorite membership.
type FavoriteStateResponse struct {
	CatalogID string `json:"catalog_id" doc:"Catalog ID"`
	Favorited bool   `json:"favorited" doc:"Whether the catalog is in the visitor's favorites"`
}

// FavoriteStateOutput wraps the favorite state response for Huma.
type FavoriteStateOutput struct {
	Body FavoriteStateResponse
}

// === Handlers ===

func (s *Server) handleListFavorites(ctx context.Context, _ *struct{}) (*ListFavoritesOutput, error) {
	visitorID := GetVisitorID(ctx)
	if visitorID == "" {
		return &ListFavoritesOutput{Body: ListFavoritesResponse{Catalogs: []FavoriteCatalogResponse{}}}, nil
	}

	catalogs, err := s.services.Favorites.ListCatalogs(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	resp := make([]FavoriteCatalogResponse, len(catalogs))
	for i, catalog := range catalogs {
		resp[i] = mapFavoriteCatalog(catalog)
	}

	return &ListFavoritesOutput{Body: ListFavoritesResponse{Catalogs: resp}}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, input *FavoriteInput) (*FavoriteStateOutput, error) {
	visitorID := GetVisitorID(ctx)
	if visitorID == "" {
		return nil, huma.Error400BadRequest("Visitor identity required")
	}

	favorited, err := s.services.Favorites.Toggle(ctx, visitorID, input.CatalogID)
	if err != nil {
		return nil, err
	}

	return &FavoriteStateOutput{
		Body: FavoriteStateResponse{
			CatalogID: input.CatalogID,
			Favorited: favorited,
		},
	}, nil
}

func (s *Server) handleGetFavorite(ctx context.Context, input *FavoriteInput) (*FavoriteStateOutput, error) {
	visitorID := GetVisitorID(ctx)

	favorited := false
	if visitorID != "" {
		var err error
		favorited, err = s.services.Favorites.IsFavorited(ctx, visitorID, input.CatalogID)
		if err != nil {
			return nil, err
		}
	}

	return &FavoriteStateOutput{
		Body: FavoriteStateResponse{
			CatalogID: input.CatalogID,
			Favorited: favorited,
		},
	}, nil
}

func mapFavoriteCatalog(catalog *domain.Catalog) FavoriteCatalogResponse {
	return FavoriteCatalogResponse{
		ID:           catalog.ID,
		Slug:         catalog.Slug,
		BusinessName: catalog.BusinessName,
		LogoURL:      catalog.LogoURL,
		ItemCount:    len(catalog.Items),
	}
}
