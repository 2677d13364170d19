package service

import (
	"context"
	"testing"

	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_AddAndRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog := seedCatalog(t, env, "own-1", "corner-cafe")

	added, err := env.favorites.Toggle(ctx, "vis-1", catalog.ID)
	require.NoError(t, err)
	assert.True(t, added)

	favorited, err := env.favorites.IsFavorited(ctx, "vis-1", catalog.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	added, err = env.favorites.Toggle(ctx, "vis-1", catalog.ID)
	require.NoError(t, err)
	assert.False(t, added)

	favorited, err = env.favorites.IsFavorited(ctx, "vis-1", catalog.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestToggle_GhostCatalogRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.favorites.Toggle(ctx, "vis-1", "cat-nope")
	assert.ErrorIs(t, err, store.ErrCatalogNotFound)

	favs, err := env.favorites.List(ctx, "vis-1")
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestToggle_VisitorsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	catalog := seedCatalog(t, env, "own-1", "corner-cafe")

	_, err := env.favorites.Toggle(ctx, "vis-1", catalog.ID)
	require.NoError(t, err)

	favorited, err := env.favorites.IsFavorited(ctx, "vis-2", catalog.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestListCatalogs_ResolvesInOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := seedCatalog(t, env, "own-1", "shop-a")
	second := seedCatalog(t, env, "own-1", "shop-b")

	_, err := env.favorites.Toggle(ctx, "vis-1", second.ID)
	require.NoError(t, err)
	_, err = env.favorites.Toggle(ctx, "vis-1", first.ID)
	require.NoError(t, err)

	catalogs, err := env.favorites.ListCatalogs(ctx, "vis-1")
	require.NoError(t, err)
	require.Len(t, catalogs, 2)
	assert.Equal(t, second.ID, catalogs[0].ID)
	assert.Equal(t, first.ID, catalogs[1].ID)
}

func TestListCatalogs_CompactsDeleted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	kept := seedCatalog(t, env, "own-1", "shop-a")
	doomed := seedCatalog(t, env, "own-1", "shop-b")

	_, err := env.favorites.Toggle(ctx, "vis-1", kept.ID)
	require.NoError(t, err)
	_, err = env.favorites.Toggle(ctx, "vis-1", doomed.ID)
	require.NoError(t, err)

	require.NoError(t, env.catalogs.DeleteCatalog(ctx, "own-1", doomed.ID))

	catalogs, err := env.favorites.ListCatalogs(ctx, "vis-1")
	require.NoError(t, err)
	require.Len(t, catalogs, 1)
	assert.Equal(t, kept.ID, catalogs[0].ID)

	// Compaction persisted: the dead ID is gone from the stored list.
	favs, err := env.favorites.List(ctx, "vis-1")
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, []string(favs))
}

func TestList_UnknownVisitorIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	favs, err := env.favorites.List(context.Background(), "vis-stranger")
	require.NoError(t, err)
	assert.Empty(t, favs)
}
