package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/showcaseapp/showcase-server/internal/domain"
)

// Key prefixes for catalog storage.
const (
	catalogPrefix         = "catalog:"
	catalogBySlugPrefix   = "idx:catalogs:slug:"  // idx:catalogs:slug:{slug} -> catalogID
	catalogsByOwnerPrefix = "idx:catalogs:owner:" // idx:catalogs:owner:{ownerID}:{catalogID}
)

// Catalog errors.
var (
	ErrCatalogNotFound = ErrNotFound.WithMessage("catalog not found")
	ErrDuplicateSlug   = ErrAlreadyExists.WithMessage("slug already in use")
)

// CreateCatalog creates a new catalog and its slug and owner indexes.
// The slug must not be claimed by another catalog.
func (s *Store) CreateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	key := []byte(catalogPrefix + catalog.ID)

	err := s.db.Update(func(txn *badger.Txn) error {
		slugKey := []byte(catalogBySlugPrefix + catalog.Slug)
		if _, err := txn.Get(slugKey); err == nil {
			return ErrDuplicateSlug
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check slug index: %w", err)
		}

		data, err := json.Marshal(catalog)
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		if err := txn.Set(slugKey, []byte(catalog.ID)); err != nil {
			return fmt.Errorf("set slug index: %w", err)
		}

		// Owner index: idx:catalogs:owner:{ownerID}:{catalogID}
		ownerKey := fmt.Appendf(nil, "%s%s:%s", catalogsByOwnerPrefix, catalog.OwnerID, catalog.ID)
		if err := txn.Set(ownerKey, []byte{}); err != nil {
			return fmt.Errorf("set owner index: %w", err)
		}

		return nil
	})
	if err != nil {
		var storeErr *Error
		if errors.As(err, &storeErr) {
			return err
		}
		return fmt.Errorf("create catalog: %w", err)
	}

	s.indexCatalog(ctx, catalog)

	if s.logger != nil {
		s.logger.Info("catalog created",
			"id", catalog.ID,
			"slug", catalog.Slug,
			"owner_id", catalog.OwnerID,
			"item_count", len(catalog.Items),
		)
	}
	return nil
}

// GetCatalog retrieves a catalog by ID.
func (s *Store) GetCatalog(_ context.Context, id string) (*domain.Catalog, error) {
	key := []byte(catalogPrefix + id)

	var catalog domain.Catalog
	if err := s.get(key, &catalog); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	return &catalog, nil
}

// GetCatalogBySlug retrieves a catalog by its public slug.
func (s *Store) GetCatalogBySlug(ctx context.Context, slug string) (*domain.Catalog, error) {
	var catalogID string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(catalogBySlugPrefix + slug))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			catalogID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("get slug index: %w", err)
	}

	return s.GetCatalog(ctx, catalogID)
}

// UpdateCatalog updates an existing catalog. When the slug changes the
// old index entry is released and the new slug checked for conflicts.
func (s *Store) UpdateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	old, err := s.GetCatalog(ctx, catalog.ID)
	if err != nil {
		return err
	}

	key := []byte(catalogPrefix + catalog.ID)

	err = s.db.Update(func(txn *badger.Txn) error {
		if catalog.Slug != old.Slug {
			newSlugKey := []byte(catalogBySlugPrefix + catalog.Slug)
			if _, err := txn.Get(newSlugKey); err == nil {
				return ErrDuplicateSlug
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("check slug index: %w", err)
			}

			if err := txn.Delete([]byte(catalogBySlugPrefix + old.Slug)); err != nil {
				if !errors.Is(err, badger.ErrKeyNotFound) {
					return fmt.Errorf("delete old slug index: %w", err)
				}
			}
			if err := txn.Set(newSlugKey, []byte(catalog.ID)); err != nil {
				return fmt.Errorf("set slug index: %w", err)
			}
		}

		data, err := json.Marshal(catalog)
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		var storeErr *Error
		if errors.As(err, &storeErr) {
			return err
		}
		return fmt.Errorf("update catalog: %w", err)
	}

	s.indexCatalog(ctx, catalog)

	if s.logger != nil {
		s.logger.Info("catalog updated",
			"id", catalog.ID,
			"slug", catalog.Slug,
		)
	}
	return nil
}

// DeleteCatalog deletes a catalog and all its indexes.
func (s *Store) DeleteCatalog(ctx context.Context, id string) error {
	catalog, err := s.GetCatalog(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(catalogPrefix + id)); err != nil {
			return fmt.Errorf("delete catalog: %w", err)
		}

		if err := txn.Delete([]byte(catalogBySlugPrefix + catalog.Slug)); err != nil {
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete slug index: %w", err)
			}
		}

		ownerKey := fmt.Appendf(nil, "%s%s:%s", catalogsByOwnerPrefix, catalog.OwnerID, id)
		if err := txn.Delete(ownerKey); err != nil {
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete owner index: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}

	if s.searchIndexer != nil {
		if err := s.searchIndexer.DeleteCatalog(ctx, id); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove catalog from search index", "catalog_id", id, "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("catalog deleted", "id", id, "slug", catalog.Slug)
	}
	return nil
}

// ListCatalogsByOwner returns all catalogs owned by a merchant.
func (s *Store) ListCatalogsByOwner(ctx context.Context, ownerID string) ([]*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var catalogIDs []string

	// Scan owner index: idx:catalogs:owner:{ownerID}:{catalogID}
	prefix := fmt.Appendf(nil, "%s%s:", catalogsByOwnerPrefix, ownerID)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // We only need keys.
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			if len(key) > len(prefix) {
				catalogIDs = append(catalogIDs, string(key[len(prefix):]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan owner index: %w", err)
	}

	catalogs := make([]*domain.Catalog, 0, len(catalogIDs))
	for _, catalogID := range catalogIDs {
		catalog, err := s.GetCatalog(ctx, catalogID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to get catalog from index", "catalog_id", catalogID, "error", err)
			}
			continue
		}
		catalogs = append(catalogs, catalog)
	}

	return catalogs, nil
}

// ListAllCatalogs returns every catalog in the store. Used by the search
// reindex path and the seed tool.
func (s *Store) ListAllCatalogs(ctx context.Context) ([]*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var catalogs []*domain.Catalog

	prefix := []byte(catalogPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var catalog domain.Catalog
				if err := json.Unmarshal(val, &catalog); err != nil {
					return err
				}
				catalogs = append(catalogs, &catalog)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}

	return catalogs, nil
}

// indexCatalog pushes a catalog into the search index, logging rather
// than failing the write when indexing is unavailable.
func (s *Store) indexCatalog(ctx context.Context, catalog *domain.Catalog) {
	if s.searchIndexer == nil {
		return
	}
	if err := s.searchIndexer.IndexCatalog(ctx, catalog); err != nil && s.logger != nil {
		s.logger.Warn("failed to index catalog", "catalog_id", catalog.ID, "error", err)
	}
}
