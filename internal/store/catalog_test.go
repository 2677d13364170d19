package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "showcase-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		_ = store.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func testCatalog(id, slug string) *domain.Catalog {
	return &domain.Catalog{
		ID:           id,
		OwnerID:      "own-001",
		Slug:         slug,
		BusinessName: "Corner Cafe",
		PhoneNumber:  "+15550100",
		Items: []domain.CatalogItem{
			{ID: "1", Name: "Latte", Price: 4.5, Category: "Drinks"},
			{ID: "2", Name: "Croissant", Price: 3, Category: "Bakery"},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestCreateCatalog(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	catalog := testCatalog("cat-001", "corner-cafe")
	err := store.CreateCatalog(ctx, catalog)
	require.NoError(t, err)

	retrieved, err := store.GetCatalog(ctx, catalog.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ID, retrieved.ID)
	assert.Equal(t, catalog.Slug, retrieved.Slug)
	assert.Equal(t, catalog.BusinessName, retrieved.BusinessName)
	assert.Len(t, retrieved.Items, 2)
}

func TestCreateCatalog_DuplicateSlug(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-001", "corner-cafe")))

	err := store.CreateCatalog(ctx, testCatalog("cat-002", "corner-cafe"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestGetCatalog_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetCatalog(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestGetCatalogBySlug(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-001", "corner-cafe")))

	retrieved, err := store.GetCatalogBySlug(ctx, "corner-cafe")
	require.NoError(t, err)
	assert.Equal(t, "cat-001", retrieved.ID)

	_, err = store.GetCatalogBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestUpdateCatalog(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	catalog := testCatalog("cat-001", "corner-cafe")
	require.NoError(t, store.CreateCatalog(ctx, catalog))

	catalog.BusinessName = "Corner Cafe & Bakery"
	catalog.Items = append(catalog.Items, domain.CatalogItem{ID: "3", Name: "Muffin", Price: 2.5})
	require.NoError(t, store.UpdateCatalog(ctx, catalog))

	retrieved, err := store.GetCatalog(ctx, catalog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe & Bakery", retrieved.BusinessName)
	assert.Len(t, retrieved.Items, 3)
}

func TestUpdateCatalog_SlugChange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	catalog := testCatalog("cat-001", "corner-cafe")
	require.NoError(t, store.CreateCatalog(ctx, catalog))

	catalog.Slug = "corner-cafe-bakery"
	require.NoError(t, store.UpdateCatalog(ctx, catalog))

	retrieved, err := store.GetCatalogBySlug(ctx, "corner-cafe-bakery")
	require.NoError(t, err)
	assert.Equal(t, "cat-001", retrieved.ID)

	// Old slug is released.
	_, err = store.GetCatalogBySlug(ctx, "corner-cafe")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestUpdateCatalog_SlugConflict(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-001", "corner-cafe")))
	other := testCatalog("cat-002", "other-shop")
	require.NoError(t, store.CreateCatalog(ctx, other))

	other.Slug = "corner-cafe"
	err := store.UpdateCatalog(ctx, other)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestUpdateCatalog_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.UpdateCatalog(context.Background(), testCatalog("cat-404", "ghost"))
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestDeleteCatalog(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-001", "corner-cafe")))
	require.NoError(t, store.DeleteCatalog(ctx, "cat-001"))

	_, err := store.GetCatalog(ctx, "cat-001")
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	// Slug is reusable after delete.
	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-002", "corner-cafe")))
}

func TestDeleteCatalog_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DeleteCatalog(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestListCatalogsByOwner(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	a := testCatalog("cat-001", "shop-a")
	b := testCatalog("cat-002", "shop-b")
	other := testCatalog("cat-003", "shop-c")
	other.OwnerID = "own-002"

	require.NoError(t, store.CreateCatalog(ctx, a))
	require.NoError(t, store.CreateCatalog(ctx, b))
	require.NoError(t, store.CreateCatalog(ctx, other))

	mine, err := store.ListCatalogsByOwner(ctx, "own-001")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	ids := []string{mine[0].ID, mine[1].ID}
	assert.ElementsMatch(t, []string{"cat-001", "cat-002"}, ids)

	empty, err := store.ListCatalogsByOwner(ctx, "own-999")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListAllCatalogs(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-001", "shop-a")))
	require.NoError(t, store.CreateCatalog(ctx, testCatalog("cat-002", "shop-b")))

	all, err := store.ListAllCatalogs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// recordingIndexer captures search index calls for assertions.
type recordingIndexer struct {
	indexed []string
	deleted []string
}

func (r *recordingIndexer) IndexCatalog(_ context.Context, c *domain.Catalog) error {
	r.indexed = append(r.indexed, c.ID)
	return nil
}

func (r *recordingIndexer) DeleteCatalog(_ context.Context, catalogID string) error {
	r.deleted = append(r.deleted, catalogID)
	return nil
}

func TestCatalogWrites_SyncSearchIndex(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	indexer := &recordingIndexer{}
	store.SetSearchIndexer(indexer)

	ctx := context.Background()

	catalog := testCatalog("cat-001", "corner-cafe")
	require.NoError(t, store.CreateCatalog(ctx, catalog))
	require.NoError(t, store.UpdateCatalog(ctx, catalog))
	require.NoError(t, store.DeleteCatalog(ctx, "cat-001"))

	assert.Equal(t, []string{"cat-001", "cat-001"}, indexer.indexed)
	assert.Equal(t, []string{"cat-001"}, indexer.deleted)
}
