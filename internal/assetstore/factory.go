package assetstore

import (
	"fmt"

	"hangar/internal/config"
	"hangar/internal/hangar"
)

// NewAssetStoreFromConfig creates an AssetStore implementation based on
// the assets config type.
func NewAssetStoreFromConfig(cfg config.AssetsConfig) (hangar.AssetStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.FSRoot == "" {
			return nil, fmt.Errorf("filesystem asset store requires fs_root to be set")
		}
		return NewFileSystemStore(cfg.FSRoot)
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown asset store type: %s", cfg.Type)
	}
}
