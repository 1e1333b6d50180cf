package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	rawUser := []byte(`{"id":7,"name":"Amina","userRole":"ADMIN"}`)
	if err := s.Save(ctx, "tok123", rawUser); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, gotUser, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok123" {
		t.Fatalf("token = %q", token)
	}
	if string(gotUser) != string(rawUser) {
		t.Fatalf("user = %s", gotUser)
	}
}

func TestFileStore_MissingFileIsAnonymous(t *testing.T) {
	s := tempStore(t)

	token, rawUser, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || rawUser != nil {
		t.Fatalf("expected empty session, got %q / %s", token, rawUser)
	}
}

func TestFileStore_CorruptBlobSurfacesForTeardown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{truncated`), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)

	token, rawUser, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// No token plus a non-empty snapshot is the shape hydration treats as
	// corrupted.
	if token != "" {
		t.Fatalf("token = %q, want empty", token)
	}
	if len(rawUser) == 0 {
		t.Fatal("expected raw bytes so hydration can tear down")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "old", []byte(`{"id":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, "new", []byte(`{"id":2}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, rawUser, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "new" || string(rawUser) != `{"id":2}` {
		t.Fatalf("got %q / %s", token, rawUser)
	}
}

func TestFileStore_Clear(t *testing.T) {
	s := tempStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "tok123", []byte(`{"id":7}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	token, rawUser, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || rawUser != nil {
		t.Fatal("expected empty session after clear")
	}

	// Clearing twice is fine.
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStore_Permissions(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(context.Background(), "tok123", []byte(`{"id":7}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}
}
