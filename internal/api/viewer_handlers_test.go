package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBySlug(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/corner-cafe", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[domain.CatalogView](t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, catalog.ID, env.Data.CatalogID)
	assert.Equal(t, "Corner Cafe", env.Data.BusinessName)
	assert.Len(t, env.Data.Tiles, 2)
	assert.ElementsMatch(t, []string{"Drinks", "Bakery"}, env.Data.Categories)

	// Defaults resolved.
	assert.Equal(t, "#2563EB", env.Data.Theme.PrimaryColor)

	// One views event reaches the store.
	ts.engagement.Drain()
	counters, _, err := ts.engagement.Stats(context.Background(), catalog.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters.Views)
}

func TestViewByID(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/id/"+catalog.ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[domain.CatalogView](t, rec)
	assert.Equal(t, "corner-cafe", env.Data.Slug)
}

func TestViewApplyingFilter(t *testing.T) {
	ts := newTestServer(t)
	ts.seedCatalog(t, "own-1", "corner-cafe")

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/corner-cafe?q=latte", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[domain.CatalogView](t, rec)
	require.Len(t, env.Data.Tiles, 1)
	assert.Equal(t, "Latte", env.Data.Tiles[0].Name)
	// Category facets always cover the whole catalog.
	assert.ElementsMatch(t, []string{"Drinks", "Bakery"}, env.Data.Categories)
}

func TestViewMissingCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/no-such-shop", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope[struct{}](t, rec)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestViewItem(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")
	itemID := catalog.Items[0].ID

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/corner-cafe/items/"+itemID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[domain.CatalogItem](t, rec)
	assert.Equal(t, "Latte", env.Data.Name)

	// Opening an item is not a page load.
	ts.engagement.Drain()
	counters, _, err := ts.engagement.Stats(context.Background(), catalog.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), counters.Views)
}

func TestViewItem_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.seedCatalog(t, "own-1", "corner-cafe")

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/view/corner-cafe/items/itm-missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCTARedirect(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	tests := []struct {
		action string
		target string
		kind   domain.EventKind
	}{
		{"call", "tel:+15550100", domain.KindCallClicks},
		{"whatsapp", "https://wa.me/15550100999", domain.KindWhatsAppClicks},
		{"directions", "https://maps.google.com/?q=1+Main+St", domain.KindDirectionClicks},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/go/"+catalog.ID+"/"+tt.action, nil))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.target, rec.Header().Get("Location"))
		})
	}

	ts.engagement.Drain()
	counters, _, err := ts.engagement.Stats(context.Background(), catalog.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters.CallClicks)
	assert.Equal(t, int64(1), counters.WhatsAppClicks)
	assert.Equal(t, int64(1), counters.DirectionClicks)
	assert.Equal(t, int64(0), counters.Views)
}

func TestCTARedirect_UnknownAction(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/go/"+catalog.ID+"/fax", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCTARedirect_MissingCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/go/cat-missing/call", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackEngagement(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	body := strings.NewReader(`{"kind":"views"}`)
	rec := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/"+catalog.ID+"/engagement", body))

	require.Equal(t, http.StatusAccepted, rec.Code)

	ts.engagement.Drain()
	counters, _, err := ts.engagement.Stats(context.Background(), catalog.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counters.Views)
}

func TestTrackEngagement_UnknownKind(t *testing.T) {
	ts := newTestServer(t)
	catalog := ts.seedCatalog(t, "own-1", "corner-cafe")

	body := strings.NewReader(`{"kind":"page_loads"}`)
	rec := ts.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/"+catalog.ID+"/engagement", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
