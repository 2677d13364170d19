package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/search"
	"github.com/showcaseapp/showcase-server/internal/service"
	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/showcaseapp/showcase-server/internal/store/sqlite"
	"github.com/showcaseapp/showcase-server/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer wires a full server against real stores in temp dirs.
type testServer struct {
	*Server
	engagement *service.EngagementService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	events, err := sqlite.Open(t.TempDir()+"/engagement.db", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = events.Close() })

	index, err := search.NewSearchIndex(search.Options{DataPath: t.TempDir(), Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	st.SetSearchIndexer(service.IndexCatalogStoreAdapter{Index: index})

	engagement := service.NewEngagementService(events, nil, 0, logger)
	t.Cleanup(engagement.Drain)

	services := &Services{
		Catalog:    service.NewCatalogService(st, engagement, validation.New(), logger),
		Viewer:     service.NewViewerService(st, engagement, logger),
		Favorites:  service.NewFavoritesService(st, logger),
		Engagement: engagement,
		Search:     service.NewSearchService(index, st, 25, logger),
	}

	return &testServer{
		Server:     NewServer(st, services, logger),
		engagement: engagement,
	}
}

// do runs one request through the full middleware stack.
func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)
	return rec
}

// seedCatalog creates a catalog through the service layer.
func (ts *testServer) seedCatalog(t *testing.T, ownerID, slug string) *domain.Catalog {
	t.Helper()

	catalog, err := ts.services.Catalog.CreateCatalog(context.Background(), ownerID, service.CatalogInput{
		Slug:           slug,
		BusinessName:   "Corner Cafe",
		PhoneNumber:    "+15550100",
		WhatsAppNumber: "+15550100999",
		Address:        "1 Main St",
		Items: []service.CatalogItemInput{
			{Name: "Latte", Price: 4.5, Category: "Drinks"},
			{Name: "Croissant", Price: 3, Category: "Bakery"},
		},
	})
	require.NoError(t, err)
	return catalog
}

// envelope mirrors the response package's wire format for decoding.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Components["database"].Status)
}

func TestVisitorCookieAssigned(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	var found bool
	for _, c := range cookies {
		if c.Name == visitorCookieName {
			found = true
			assert.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "visitor cookie should be set")
}

func TestVisitorCookiePreserved(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.AddCookie(&http.Cookie{Name: visitorCookieName, Value: "b1946ac9-2f6e-4bbe-9a03-29b5e8ccb6aa"})
	rec := ts.do(t, req)

	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, visitorCookieName, c.Name, "valid cookie must not be reissued")
	}
}
