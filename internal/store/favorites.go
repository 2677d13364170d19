package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/showcaseapp/showcase-server/internal/domain"
)

// favoritesPrefix keys a visitor's favorites list: favorites:{visitorID}.
const favoritesPrefix = "favorites:"

// GetFavorites returns a visitor's favorites list. A visitor with no
// stored list, or a corrupt stored payload, gets an empty list rather
// than an error.
func (s *Store) GetFavorites(_ context.Context, visitorID string) (domain.Favorites, error) {
	key := []byte(favoritesPrefix + visitorID)

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.Favorites{}, nil
		}
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	return domain.DecodeFavorites(raw), nil
}

// SetFavorites replaces a visitor's favorites list.
func (s *Store) SetFavorites(_ context.Context, visitorID string, favorites domain.Favorites) error {
	data, err := favorites.Encode()
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}

	key := []byte(favoritesPrefix + visitorID)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("set favorites: %w", err)
	}
	return nil
}

// DeleteFavorites removes a visitor's favorites list entirely.
func (s *Store) DeleteFavorites(_ context.Context, visitorID string) error {
	if err := s.delete([]byte(favoritesPrefix + visitorID)); err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}
