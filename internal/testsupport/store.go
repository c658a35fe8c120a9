package testsupport

import (
	"context"
	"testing"
	"time"

	"mazecache/internal/catalog"
	"mazecache/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedSeries inserts a series row for tests, committing immediately.
func SeedSeries(t testing.TB, store *catalog.Store, series *catalog.Series) {
	t.Helper()

	ctx := context.Background()
	tx, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("store.Begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.CreateSeries(ctx, series); err != nil {
		t.Fatalf("tx.CreateSeries: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("tx.Commit: %v", err)
	}
}

// RefreshedAgo returns a pointer to a timestamp the given duration in the
// past, for seeding last-refreshed columns.
func RefreshedAgo(age time.Duration) *time.Time {
	ts := time.Now().Add(-age).UTC()
	return &ts
}
