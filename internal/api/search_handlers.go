package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/showcaseapp/showcase-server/internal/search"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchCatalogs",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalogs/search",
		Summary:     "Search the catalog directory",
		Description: "Full-text search across published catalogs by business name, description, item names, and categories",
		Tags:        []string{"Search"},
	}, s.handleSearchCatalogs)

	huma.Register(s.api, huma.Operation{
		OperationID: "reindexCatalogs",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalogs/search/reindex",
		Summary:     "Rebuild the search index",
		Description: "Rebuilds the directory index from the catalog store",
		Tags:        []string{"Search"},
	}, s.handleReindexCatalogs)
}

// === DTOs ===

// SearchCatalogsInput contains parameters for searching the directory.
type SearchCatalogsInput struct {
	Query      string `query:"q" validate:"required,min=1,max=200" doc:"Search query"`
	Categories string `query:"categories" validate:"omitempty,max=200" doc:"Comma-separated categories to filter by"`
	Limit      int    `query:"limit" validate:"omitempty,gte=1,lte=100" doc:"Max results (default 20)"`
	Offset     int    `query:"offset" validate:"omitempty,gte=0" doc:"Pagination offset (default 0)"`
	SortBy     string `query:"sort" validate:"omitempty,oneof=relevance name recent" doc:"Sort order (default relevance)"`
	Facets     bool   `query:"facets" doc:"Include category facet counts"`
}

// SearchCatalogsOutput wraps the search result for Huma.
type SearchCatalogsOutput struct {
	Body search.SearchResult
}

// ReindexResponse reports the outcome of an index rebuild.
type ReindexResponse struct {
	Indexed int `json:"indexed" doc:"Number of catalogs indexed"`
}

// ReindexOutput wraps the reindex response for Huma.
type ReindexOutput struct {
	Body ReindexResponse
}

// === Handlers ===

func (s *Server) handleSearchCatalogs(ctx context.Context, input *SearchCatalogsInput) (*SearchCatalogsOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, huma.Error422UnprocessableEntity("search query is required")
	}

	params := search.DefaultSearchParams()
	params.Query = input.Query
	params.Offset = input.Offset
	params.IncludeFacets = input.Facets
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	if input.SortBy != "" {
		params.SortBy = input.SortBy
	}

	if input.Categories != "" {
		for _, category := range strings.Split(input.Categories, ",") {
			if category = strings.TrimSpace(category); category != "" {
				params.Categories = append(params.Categories, category)
			}
		}
	}

	result, err := s.services.Search.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	return &SearchCatalogsOutput{Body: *result}, nil
}

func (s *Server) handleReindexCatalogs(ctx context.Context, _ *struct{}) (*ReindexOutput, error) {
	indexed, err := s.services.Search.Reindex(ctx)
	if err != nil {
		return nil, err
	}

	return &ReindexOutput{Body: ReindexResponse{Indexed: indexed}}, nil
}
