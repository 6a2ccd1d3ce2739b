package service

import (
	"context"

	"hubmark/internal/domain/entity"
)

// BookmarkCache is a keyed, time-bounded store mapping a user ID to that
// user's ordered bookmark collection. Collections carry a sliding TTL that
// resets on every write; reads never extend it. An expired or absent
// collection reads as empty, and the next write recreates it fresh.
//
// Implementations must serialize Mutate calls per key so that concurrent
// read-modify-write sequences for the same user never lose an update.
type BookmarkCache interface {
	// Fetch returns the user's current collection in insertion order.
	// Absent or expired entries yield an empty slice, never an error.
	Fetch(ctx context.Context, userID int64) ([]entity.Bookmark, error)

	// Mutate atomically applies fn to the user's current collection and
	// stores the result, resetting the TTL window. If fn returns an error
	// nothing is written and the TTL is left untouched; the error is
	// returned as-is. The stored (or untouched) collection is returned.
	Mutate(ctx context.Context, userID int64, fn MutateFunc) ([]entity.Bookmark, error)
}

// MutateFunc transforms a bookmark collection. It receives the current list
// (possibly empty) and returns the list to store.
type MutateFunc func(current []entity.Bookmark) ([]entity.Bookmark, error)
