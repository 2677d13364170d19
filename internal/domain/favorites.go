package domain

import (
	"encoding/json/v2"
	"slices"
)

// Favorites is a visitor-local set of saved catalog IDs. It is not tied
// to any authenticated identity; it lives in the visitor's key-value
// storage and persists until the visitor clears it.
//
// The persistence format is a JSON array of unique IDs. Decoding is
// self-healing: corrupt or missing content yields the empty set, never
// an error, and the next write repairs the stored value.
type Favorites []string

// DecodeFavorites parses the persisted favorites payload. Any payload
// that does not decode as a JSON string array is treated as empty.
func DecodeFavorites(data []byte) Favorites {
	if len(data) == 0 {
		return Favorites{}
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return Favorites{}
	}
	// Drop duplicates a foreign writer may have introduced.
	out := make(Favorites, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Encode serializes the set for persistence.
func (f Favorites) Encode() ([]byte, error) {
	if f == nil {
		f = Favorites{}
	}
	return json.Marshal([]string(f))
}

// Contains reports membership of a catalog ID.
func (f Favorites) Contains(catalogID string) bool {
	return slices.Contains(f, catalogID)
}

// Toggle adds the ID if absent and removes it if present, returning the
// updated set and the new membership state. Toggling twice returns the
// set to its original value.
func (f Favorites) Toggle(catalogID string) (Favorites, bool) {
	for i, id := range f {
		if id == catalogID {
			return slices.Delete(slices.Clone(f), i, i+1), false
		}
	}
	return append(slices.Clone(f), catalogID), true
}
