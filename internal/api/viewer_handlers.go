package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/http/response"
	"github.com/showcaseapp/showcase-server/internal/service"
)

// ctaActions maps the /go/ path segment onto the click kind it records.
var ctaActions = map[string]domain.EventKind{
	"call":       domain.KindCallClicks,
	"whatsapp":   domain.KindWhatsAppClicks,
	"directions": domain.KindDirectionClicks,
}

// handleViewBySlug serves the public storefront for a catalog slug.
func (s *Server) handleViewBySlug(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, service.CatalogRef{Slug: chi.URLParam(r, "slug")})
}

// handleViewByID serves the public storefront for a catalog ID.
func (s *Server) handleViewByID(w http.ResponseWriter, r *http.Request) {
	s.serveView(w, r, service.CatalogRef{ID: chi.URLParam(r, "id")})
}

// serveView resolves a catalog reference into its view model under the
// filter carried in the query string. A missing catalog and a broken
// store both read as "catalog not available" to the visitor.
func (s *Server) serveView(w http.ResponseWriter, r *http.Request, ref service.CatalogRef) {
	ctx := r.Context()

	filter := domain.ItemFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	view, err := s.services.Viewer.ResolveView(ctx, ref, filter, GetVisitorID(ctx))
	if err != nil {
		s.logger.Debug("storefront not served", "slug", ref.Slug, "id", ref.ID, "error", err)
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, view, s.logger)
}

// handleViewItem serves the item detail view. Opening an item is not a
// page load; no views event is recorded.
func (s *Server) handleViewItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref := service.CatalogRef{Slug: chi.URLParam(r, "slug")}
	itemID := chi.URLParam(r, "itemID")

	item, err := s.services.Viewer.ResolveItem(ctx, ref, itemID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, item, s.logger)
}

// handleCTARedirect records the click for a call-to-action and sends the
// visitor on to the external target with a 303. The redirect happens
// regardless of the tracking outcome.
func (s *Server) handleCTARedirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogID := chi.URLParam(r, "id")

	kind, ok := ctaActions[chi.URLParam(r, "action")]
	if !ok {
		response.BadRequest(w, "Unknown call-to-action", s.logger)
		return
	}

	target, err := s.services.Viewer.DispatchCTA(ctx, catalogID, kind, GetVisitorID(ctx))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// trackEngagementRequest is the beacon body posted by storefront pages.
type trackEngagementRequest struct {
	Kind domain.EventKind `json:"kind"`
}

// handleTrackEngagement accepts an engagement beacon and returns 202.
// The write is fire-and-forget.
func (s *Server) handleTrackEngagement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	catalogID := chi.URLParam(r, "id")

	var req trackEngagementRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.services.Engagement.RecordAsync(ctx, catalogID, req.Kind, GetVisitorID(ctx)); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.JSON(w, http.StatusAccepted, map[string]string{"status": "accepted"}, s.logger)
}
