package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/service"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createCatalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalogs",
		Summary:     "Create catalog",
		Description: "Creates a new catalog owned by the caller",
		Tags:        []string{"Catalogs"},
	}, s.handleCreateCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "listMyCatalogs",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalogs",
		Summary:     "List my catalogs",
		Description: "Returns all catalogs owned by the caller",
		Tags:        []string{"Catalogs"},
	}, s.handleListMyCatalogs)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalogs/{id}",
		Summary:     "Get catalog",
		Description: "Returns one of the caller's catalogs by ID",
		Tags:        []string{"Catalogs"},
	}, s.handleGetCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCatalog",
		Method:      http.MethodPut,
		Path:        "/api/v1/catalogs/{id}",
		Summary:     "Update catalog",
		Description: "Replaces a catalog's content (owner only)",
		Tags:        []string{"Catalogs"},
	}, s.handleUpdateCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCatalog",
		Method:      http.MethodDelete,
		Path:        "/api/v1/catalogs/{id}",
		Summary:     "Delete catalog",
		Description: "Deletes a catalog and its engagement data (owner only)",
		Tags:        []string{"Catalogs"},
	}, s.handleDeleteCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalogs/{id}/stats",
		Summary:     "Get catalog stats",
		Description: "Returns engagement counters and recent events (owner only)",
		Tags:        []string{"Catalogs"},
	}, s.handleGetCatalogStats)
}

// === DTOs ===

// CreateCatalogInput wraps the create catalog request for Huma.
type CreateCatalogInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
	Body     service.CatalogInput
}

// CatalogOutput wraps a single catalog for Huma.
type CatalogOutput struct {
	Body domain.Catalog
}

// ListCatalogsInput contains parameters for listing owned catalogs.
type ListCatalogsInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
}

// ListCatalogsResponse contains a list of catalogs.
type ListCatalogsResponse struct {
	Catalogs []*domain.Catalog `json:"catalogs" doc:"Catalogs owned by the caller"`
}

// ListCatalogsOutput wraps the list catalogs response for Huma.
type ListCatalogsOutput struct {
	Body ListCatalogsResponse
}

// GetCatalogInput contains parameters for getting a catalog.
type GetCatalogInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
	ID       string `path:"id" doc:"Catalog ID"`
}

// UpdateCatalogInput wraps the update catalog request for Huma.
type UpdateCatalogInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
	ID       string `path:"id" doc:"Catalog ID"`
	Body     service.CatalogInput
}

// DeleteCatalogInput contains parameters for deleting a catalog.
type DeleteCatalogInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
	ID       string `path:"id" doc:"Catalog ID"`
}

// CatalogStatsInput contains parameters for reading catalog stats.
type CatalogStatsInput struct {
	XOwnerID string `header:"X-Owner-ID" doc:"Owner identity"`
	ID       string `path:"id" doc:"Catalog ID"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=500" doc:"Max recent events to return (default 50)"`
}

// CatalogStatsResponse contains engagement counters and recent events.
type CatalogStatsResponse struct {
	Counters *domain.EngagementCounters `json:"counters" doc:"Aggregated engagement counters"`
	Recent   []*domain.EngagementEvent  `json:"recent" doc:"Most recent engagement events"`
}

// CatalogStatsOutput wraps the stats response for Huma.
type CatalogStatsOutput struct {
	Body CatalogStatsResponse
}

// === Handlers ===

func (s *Server) handleCreateCatalog(ctx context.Context, input *CreateCatalogInput) (*CatalogOutput, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := s.services.Catalog.CreateCatalog(ctx, ownerID, input.Body)
	if err != nil {
		return nil, err
	}

	return &CatalogOutput{Body: *catalog}, nil
}

func (s *Server) handleListMyCatalogs(ctx context.Context, _ *ListCatalogsInput) (*ListCatalogsOutput, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	catalogs, err := s.services.Catalog.ListMyCatalogs(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if catalogs == nil {
		catalogs = []*domain.Catalog{}
	}

	return &ListCatalogsOutput{Body: ListCatalogsResponse{Catalogs: catalogs}}, nil
}

func (s *Server) handleGetCatalog(ctx context.Context, input *GetCatalogInput) (*CatalogOutput, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := s.services.Catalog.GetOwnedCatalog(ctx, ownerID, input.ID)
	if err != nil {
		return nil, err
	}

	return &CatalogOutput{Body: *catalog}, nil
}

func (s *Server) handleUpdateCatalog(ctx context.Context, input *UpdateCatalogInput) (*CatalogOutput, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := s.services.Catalog.UpdateCatalog(ctx, ownerID, input.ID, input.Body)
	if err != nil {
		return nil, err
	}

	return &CatalogOutput{Body: *catalog}, nil
}

func (s *Server) handleDeleteCatalog(ctx context.Context, input *DeleteCatalogInput) (*struct{}, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Catalog.DeleteCatalog(ctx, ownerID, input.ID); err != nil {
		return nil, err
	}

	return &struct{}{}, nil
}

func (s *Server) handleGetCatalogStats(ctx context.Context, input *CatalogStatsInput) (*CatalogStatsOutput, error) {
	ownerID, err := GetOwnerID(ctx)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	counters, recent, err := s.services.Catalog.GetStats(ctx, ownerID, input.ID, limit)
	if err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []*domain.EngagementEvent{}
	}

	return &CatalogStatsOutput{
		Body: CatalogStatsResponse{
			Counters: counters,
			Recent:   recent,
		},
	}, nil
}
