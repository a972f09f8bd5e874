// Package docstore writes documents into named collections.
//
// Collection paths use Firestore's slash form: "users" or "users/userID2/stats".
// Set writes a document under a caller-chosen id, replacing any existing one.
// Add writes under a generated id, so repeated calls never overwrite.
package docstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is the write surface the seeder needs from a document database.
type Store interface {
	Set(ctx context.Context, collection, id string, doc any) error
	Add(ctx context.Context, collection string, doc any) (string, error)
	Close() error
}

// Op is the kind of write performed.
type Op string

const (
	OpSet Op = "set"
	OpAdd Op = "add"
)

// Write records a single completed document write.
type Write struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Op         Op        `json:"op"`
	At         time.Time `json:"at"`
}

// Path returns collection/id.
func (w Write) Path() string {
	return w.Collection + "/" + w.ID
}

// validateCollection checks that path names a collection: an odd number of
// non-empty segments.
func validateCollection(path string) error {
	if path == "" {
		return fmt.Errorf("empty collection path")
	}
	parts := strings.Split(path, "/")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("collection path %q has an empty segment", path)
		}
		if reservedID(p) {
			return fmt.Errorf("collection path %q uses reserved id %q", path, p)
		}
	}
	if len(parts)%2 == 0 {
		return fmt.Errorf("collection path %q names a document, not a collection", path)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("empty document id")
	}
	if strings.Contains(id, "/") {
		return fmt.Errorf("document id %q contains a slash", id)
	}
	if reservedID(id) {
		return fmt.Errorf("document id %q is reserved", id)
	}
	return nil
}

// reservedID matches Firestore's reserved __name__ form.
func reservedID(s string) bool {
	return len(s) >= 4 && strings.HasPrefix(s, "__") && strings.HasSuffix(s, "__")
}
