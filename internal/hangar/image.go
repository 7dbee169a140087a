package hangar

import (
	"bytes"
	"fmt"
	"io"

	"hangar/internal/model"
)

// AttachImage encrypts image bytes, stores them in the asset store
// under a fresh asset id, and records the id on the build through the
// normal update path — so attaching an image to a PUBLISHED build
// stages a revision like any other edit. Returns the asset id and the
// row the edit landed on.
//
// The engine never inspects image bytes; it only moves them into the
// external store and tracks the id.
func (s *Service) AttachImage(ownerID, buildID string, r io.Reader) (string, *model.Build, error) {
	// Resolve the owner's effective content first: for a published build
	// with a staged revision, the edit must carry the revision's fields,
	// not the published row's.
	view, err := s.GetBuild(ownerID, buildID)
	if err != nil {
		return "", nil, err
	}

	assetID := s.idgen.New()

	var ciphertext bytes.Buffer
	if err := s.encryptor.Encrypt(r, &ciphertext); err != nil {
		return "", nil, fmt.Errorf("encrypting image: %w", err)
	}
	size := int64(ciphertext.Len())
	if err := s.assets.PutAsset(assetID, &ciphertext, size); err != nil {
		return "", nil, fmt.Errorf("storing image asset: %w", err)
	}

	content := contentOf(view.Build)
	content.ImageAssetID = assetID

	updated, err := s.UpdateBuild(ownerID, buildID, content, nil, false)
	if err != nil {
		// The row mutated between read and write. Reclaim the asset; the
		// store delete is best effort.
		if derr := s.assets.DeleteAsset(assetID); derr != nil {
			s.logger.Warn("reclaiming orphaned image asset failed", "asset", assetID, "error", derr)
		}
		return "", nil, err
	}

	s.logger.Info("image attached", "build", updated.ID, "asset", assetID)
	return assetID, updated, nil
}

// LoadImage decrypts a stored image asset to w. The passphrase unlocks
// the private key for this call only.
func (s *Service) LoadImage(assetID string, w io.Writer, passphrase string) error {
	if assetID == "" {
		return fmt.Errorf("%w: asset id required", ErrInvalidInput)
	}

	dctx, err := s.encryptor.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking encryption key: %w", err)
	}

	var ciphertext bytes.Buffer
	if err := s.assets.GetAsset(assetID, &ciphertext); err != nil {
		return fmt.Errorf("fetching image asset: %w", err)
	}

	if err := dctx.Decrypt(&ciphertext, w); err != nil {
		return fmt.Errorf("decrypting image: %w", err)
	}
	return nil
}
