package assetstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hangar/internal/hangar"
)

// FileSystemStore stores assets as files under a root directory:
//
//	<root>/
//	  assets/
//	    <id>    (asset files, named by opaque asset id)
type FileSystemStore struct {
	root      string
	assetsDir string
}

var _ hangar.AssetStore = (*FileSystemStore)(nil)

// NewFileSystemStore creates a filesystem asset store rooted at the
// given path.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	assetsDir := filepath.Join(root, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}
	return &FileSystemStore{root: root, assetsDir: assetsDir}, nil
}

// PutAsset stores an asset. The file is written to a temp name and
// renamed so a partially written asset is never visible under its id.
func (s *FileSystemStore) PutAsset(id string, r io.Reader, size int64) error {
	destPath := filepath.Join(s.assetsDir, id)

	tmp, err := os.CreateTemp(s.assetsDir, ".put-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write asset: %w", err)
	}
	if written != size {
		os.Remove(tmpPath)
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, written)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize asset: %w", err)
	}
	return nil
}

// GetAsset retrieves an asset by id and writes it to w.
func (s *FileSystemStore) GetAsset(id string, w io.Writer) error {
	f, err := os.Open(filepath.Join(s.assetsDir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("asset not found: %s", id)
		}
		return fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to read asset: %w", err)
	}
	return nil
}

// DeleteAsset removes an asset. Deleting a missing asset is a no-op.
func (s *FileSystemStore) DeleteAsset(id string) error {
	err := os.Remove(filepath.Join(s.assetsDir, id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
