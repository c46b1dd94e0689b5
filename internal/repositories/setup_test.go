package repositories

import (
	"path/filepath"
	"testing"
)

func newTestContext(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("could not create db context: %v", err)
	}
	t.Cleanup(func() { _ = dbCtx.Close() })

	if err := dbCtx.Migrate(); err != nil {
		t.Fatalf("could not migrate db: %v", err)
	}
	return dbCtx
}
