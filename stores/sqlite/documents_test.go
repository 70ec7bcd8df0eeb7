package sqlite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"console-draw/core"
)

func TestMain(m *testing.M) {
	if !CGOEnabled {
		fmt.Println("skipping sqlite store tests: CGO disabled")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

const drawing = "-----\n|x x|\n| x |\n-----"

func setupTestDB(t *testing.T) (*documentStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "drawings.db")
	store := NewDocumentStore(dbPath).(*documentStore)
	t.Cleanup(func() { store.db.Close() })
	return store, dbPath
}

func TestNewDocumentStore_TablesCreated(t *testing.T) {
	store, dbPath := setupTestDB(t)

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("Database file not created: %v", err)
	}
	for _, table := range []string{"documents", "sessions"} {
		var name string
		err := store.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("%s table not created: %v", table, err)
		}
	}
}

func TestCreateAndFind(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &core.Document{Data: *bytes.NewBufferString(drawing)})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if len(id) != 26 {
		t.Errorf("ID length mismatch: got %d, want 26", len(id))
	}

	doc, err := store.FindID(ctx, id)
	if err != nil {
		t.Fatalf("FindID() failed: %v", err)
	}
	if got := doc.Data.String(); got != drawing {
		t.Errorf("Data mismatch: got %q, want %q", got, drawing)
	}
}

func TestFindID_NotFound(t *testing.T) {
	store, _ := setupTestDB(t)

	_, err := store.FindID(context.Background(), "missing")
	if err == nil {
		t.Fatal("FindID() should fail for an unknown ID")
	}
	if want := "document with id missing not found"; err.Error() != want {
		t.Errorf("Error mismatch: got %q, want %q", err.Error(), want)
	}
}

func TestFindID_SQLInjection(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, &core.Document{Data: *bytes.NewBufferString(drawing)}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := store.FindID(ctx, "' OR '1'='1"); err == nil {
		t.Error("FindID() matched an injected ID")
	}
}

func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "drawings.db")
	ctx := context.Background()

	first := NewDocumentStore(dbPath).(*documentStore)
	id, err := first.Create(ctx, &core.Document{Data: *bytes.NewBufferString(drawing)})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	first.db.Close()

	second := NewDocumentStore(dbPath).(*documentStore)
	defer second.db.Close()
	doc, err := second.FindID(ctx, id)
	if err != nil {
		t.Fatalf("FindID() after reopen failed: %v", err)
	}
	if got := doc.Data.String(); got != drawing {
		t.Errorf("Data mismatch: got %q, want %q", got, drawing)
	}
}

func TestSessionRegistry(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2", "s1"} {
		if err := store.TouchSession(ctx, id); err != nil {
			t.Fatalf("TouchSession(%q) failed: %v", id, err)
		}
	}
	if err := store.TouchSession(ctx, ""); err == nil {
		t.Error("TouchSession() should reject an empty ID")
	}

	sessions, err := store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Session count mismatch: got %d, want 2", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].LastActive > sessions[i-1].LastActive {
			t.Errorf("Sessions not ordered by activity: %+v", sessions)
		}
	}

	if err := store.DeleteSession(ctx, "s1"); err != nil {
		t.Fatalf("DeleteSession() failed: %v", err)
	}
	sessions, err = store.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s2" {
		t.Errorf("Sessions after delete mismatch: got %+v", sessions)
	}
}

func TestConcurrentCreate(t *testing.T) {
	store, _ := setupTestDB(t)
	store.db.SetMaxOpenConns(1)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc := &core.Document{Data: *bytes.NewBufferString(fmt.Sprintf("drawing-%d", i))}
			if _, err := store.Create(ctx, doc); err != nil {
				t.Errorf("Concurrent Create() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var count int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 8 {
		t.Errorf("Document count mismatch: got %d, want 8", count)
	}
}
