package assetstore

import (
	"bytes"
	"strings"
	"testing"

	"hangar/internal/hangar"
)

// storeUnderTest exercises the AssetStore contract shared by all
// backends.
func storeUnderTest(t *testing.T, store hangar.AssetStore) {
	t.Helper()

	t.Run("put then get round-trips", func(t *testing.T) {
		data := "encrypted image bytes"
		if err := store.PutAsset("a-1", strings.NewReader(data), int64(len(data))); err != nil {
			t.Fatalf("PutAsset() error = %v", err)
		}

		var out bytes.Buffer
		if err := store.GetAsset("a-1", &out); err != nil {
			t.Fatalf("GetAsset() error = %v", err)
		}
		if out.String() != data {
			t.Errorf("GetAsset() = %q, want %q", out.String(), data)
		}
	})

	t.Run("put overwrites", func(t *testing.T) {
		store.PutAsset("a-2", strings.NewReader("v1"), 2)
		if err := store.PutAsset("a-2", strings.NewReader("v2!"), 3); err != nil {
			t.Fatalf("PutAsset() error = %v", err)
		}

		var out bytes.Buffer
		store.GetAsset("a-2", &out)
		if out.String() != "v2!" {
			t.Errorf("GetAsset() = %q, want v2!", out.String())
		}
	})

	t.Run("size mismatch is rejected", func(t *testing.T) {
		if err := store.PutAsset("a-3", strings.NewReader("short"), 999); err == nil {
			t.Error("PutAsset() accepted a size mismatch")
		}
	})

	t.Run("get of a missing asset fails", func(t *testing.T) {
		if err := store.GetAsset("missing", &bytes.Buffer{}); err == nil {
			t.Error("GetAsset() succeeded for a missing asset")
		}
	})

	t.Run("delete is a no-op for missing assets", func(t *testing.T) {
		if err := store.DeleteAsset("missing"); err != nil {
			t.Errorf("DeleteAsset(missing) error = %v", err)
		}

		store.PutAsset("a-4", strings.NewReader("x"), 1)
		if err := store.DeleteAsset("a-4"); err != nil {
			t.Fatalf("DeleteAsset() error = %v", err)
		}
		if err := store.GetAsset("a-4", &bytes.Buffer{}); err == nil {
			t.Error("asset readable after delete")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, NewMemoryStore())
}

func TestFileSystemStore(t *testing.T) {
	store, err := NewFileSystemStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSystemStore() error = %v", err)
	}
	storeUnderTest(t, store)
}
