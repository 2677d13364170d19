// Package id generates the prefixed NanoIDs used across the server.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for the entity families that get generated IDs. The prefix
// makes an ID self-describing in logs and URLs (e.g.
// "cat-V1StGXR8_Z5jdHi6B-myT").
const (
	Catalog = "cat"
	Item    = "itm"
	Event   = "evt"
)

// Generate creates a prefixed unique ID. NanoIDs are URL-safe and
// shorter than UUIDs (21 characters vs 36).
//
// Returns an error when the system cannot supply secure randomness.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics on failure. Only for callers
// where an entropy failure should crash the program.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
