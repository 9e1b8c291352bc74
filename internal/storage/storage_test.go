package storage

import (
	"path/filepath"
	"testing"
)

func newTestProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	providers := map[string]Provider{
		"file":   NewFileStore(filepath.Join(dir, "slots")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "slots.db")),
	}
	for name, p := range providers {
		if err := p.Init(); err != nil {
			t.Fatalf("%s Init() error: %v", name, err)
		}
		t.Cleanup(func() { p.Close() })
	}
	return providers
}

func TestGetMissingSlot(t *testing.T) {
	for name, p := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			data, found, err := p.Get("nothing-here")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if found {
				t.Errorf("Get() found = true for absent slot, data = %q", data)
			}
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, p := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			want := []byte(`{"items":[],"last_updated":"2026-01-02T15:04:05Z"}`)
			if err := p.Set("vision-board-data", want); err != nil {
				t.Fatalf("Set() error: %v", err)
			}

			got, found, err := p.Get("vision-board-data")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if !found {
				t.Fatal("Get() found = false after Set()")
			}
			if string(got) != string(want) {
				t.Errorf("Get() = %q, want %q", got, want)
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, p := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Set("slot", []byte("first")); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			if err := p.Set("slot", []byte("second")); err != nil {
				t.Fatalf("Set() error: %v", err)
			}

			got, _, err := p.Get("slot")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if string(got) != "second" {
				t.Errorf("Get() = %q after overwrite, want %q", got, "second")
			}
		})
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	for name, p := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Set("vision-board-data", []byte("items")); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			if err := p.Set("vision-board-reflections", []byte("reflections")); err != nil {
				t.Fatalf("Set() error: %v", err)
			}

			got, _, err := p.Get("vision-board-data")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if string(got) != "items" {
				t.Errorf("items slot = %q after writing reflections slot", got)
			}
		})
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "db extension selects sqlite",
			path: "/tmp/visionboard/visionboard.db",
			want: "*storage.SQLiteStore",
		},
		{
			name: "plain directory selects file store",
			path: "/tmp/visionboard",
			want: "*storage.FileStore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ForPath(tt.path)
			switch p.(type) {
			case *SQLiteStore:
				if tt.want != "*storage.SQLiteStore" {
					t.Errorf("ForPath(%q) = SQLiteStore, want %s", tt.path, tt.want)
				}
			case *FileStore:
				if tt.want != "*storage.FileStore" {
					t.Errorf("ForPath(%q) = FileStore, want %s", tt.path, tt.want)
				}
			default:
				t.Errorf("ForPath(%q) returned unexpected type %T", tt.path, p)
			}
		})
	}
}
