package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"hangar/internal/assetstore"
	"hangar/internal/catalog"
	"hangar/internal/config"
	"hangar/internal/database"
	"hangar/internal/encryption"
	"hangar/internal/hangar"
	"hangar/internal/model"
)

// HangarApp is the application layer between the CLI and the Service.
// It constructs all dependencies from config, exposes high-level operations
// that accept raw strings, and manages the DB lifecycle on Close.
type HangarApp struct {
	cfg       *config.Config
	db        hangar.Database
	encryptor hangar.Encryptor
	service   *hangar.Service
	logFile   *os.File
}

// NewHangarApp creates a fully wired HangarApp from the given config.
// operation identifies the CLI command being run (e.g. "CreateDraft", "Sweep").
// The caller must call Close when done.
func NewHangarApp(cfg *config.Config, operation string) (*HangarApp, error) {
	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := db.CheckMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database schema out of date (run `hangar migrate`): %w", err)
	}

	assets, err := assetstore.NewAssetStoreFromConfig(cfg.Assets)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating asset store: %w", err)
	}

	cat, err := catalog.NewCatalogFromConfig(cfg.Catalog)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog: %w", err)
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z") + "-" + operation
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := hangar.NewService(db, cat, assets, enc, &slogAdapter{l: logger},
		hangar.RealClock{}, hangar.UUIDGenerator{}, hangar.SecretTokenGenerator{})

	return &HangarApp{
		cfg:       cfg,
		db:        db,
		encryptor: enc,
		service:   svc,
		logFile:   logFile,
	}, nil
}

// Migrate brings the database schema up to the latest version. It is the
// one entry point that does not require the schema to already be current.
func Migrate(cfg *config.Config) error {
	db, err := database.NewDatabaseFromConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	migrator, ok := db.(interface{ MigrateUp() error })
	if !ok {
		return fmt.Errorf("database type %q does not support migrations", cfg.Database.Type)
	}
	if err := migrator.MigrateUp(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// SetupKeys generates the encryption key pair used for image assets.
// Refuses to overwrite an existing pair.
func (a *HangarApp) SetupKeys(passphrase string) error {
	if a.encryptor.IsConfigured() {
		return fmt.Errorf("encryption keys already exist")
	}
	if err := a.encryptor.Setup(passphrase); err != nil {
		return fmt.Errorf("setting up encryption keys: %w", err)
	}
	return nil
}

// CreateDraft creates an owned draft build from content fields and raw
// part specs.
func (a *HangarApp) CreateDraft(ownerID string, content hangar.BuildContent, partSpecs []string) (*model.Build, error) {
	parts, err := ParsePartSpecs(partSpecs)
	if err != nil {
		return nil, err
	}
	return a.service.CreateDraft(ownerID, content, parts)
}

// GetBuild returns the owner's view of a build.
func (a *HangarApp) GetBuild(ownerID, id string) (*hangar.BuildView, error) {
	return a.service.GetBuild(ownerID, id)
}

// GetPublicBuild returns the public view of a published build.
func (a *HangarApp) GetPublicBuild(id string) (*hangar.BuildView, error) {
	return a.service.GetPublicBuild(id)
}

// ListBuilds returns an owner's builds newest-first.
func (a *HangarApp) ListBuilds(ownerID string) ([]*model.Build, error) {
	return a.service.ListBuilds(ownerID)
}

// UpdateBuild edits a build's content and optionally replaces its parts.
func (a *HangarApp) UpdateBuild(ownerID, id string, content hangar.BuildContent, partSpecs []string, replaceParts bool) (*model.Build, error) {
	parts, err := ParsePartSpecs(partSpecs)
	if err != nil {
		return nil, err
	}
	return a.service.UpdateBuild(ownerID, id, content, parts, replaceParts)
}

// SubmitForReview moves an owned build into the moderation queue.
func (a *HangarApp) SubmitForReview(ownerID, id string) error {
	return a.service.SubmitForReview(ownerID, id)
}

// DeleteBuild deletes an owned draft or unpublished build.
func (a *HangarApp) DeleteBuild(ownerID, id string) error {
	return a.service.DeleteBuild(ownerID, id)
}

// AttachImage reads the image file at rawPath, encrypts and stores it,
// and records it on the build. Returns the new asset id and the row the
// edit landed on.
func (a *HangarApp) AttachImage(ownerID, buildID, rawPath string) (string, *model.Build, error) {
	f, err := os.Open(rawPath)
	if err != nil {
		return "", nil, fmt.Errorf("opening image file: %w", err)
	}
	defer f.Close()
	return a.service.AttachImage(ownerID, buildID, f)
}

// ExportImage decrypts a stored image asset to w.
func (a *HangarApp) ExportImage(assetID string, w io.Writer, passphrase string) error {
	return a.service.LoadImage(assetID, w, passphrase)
}

// ModerationQueue returns pending-review builds oldest-first.
func (a *HangarApp) ModerationQueue() ([]*model.Build, error) {
	return a.service.ModerationQueue()
}

// Approve publishes a pending-review build if it passes validation.
func (a *HangarApp) Approve(id string) (*hangar.ValidationResult, error) {
	return a.service.Approve(id)
}

// Publish publishes a build directly, skipping the submit step.
func (a *HangarApp) Publish(id string) (*hangar.ValidationResult, error) {
	return a.service.Publish(id)
}

// Decline moves a build to unpublished with a mandatory reason.
func (a *HangarApp) Decline(id, reason string) error {
	return a.service.Decline(id, reason)
}

// Unpublish retires a published build; the reason is optional.
func (a *HangarApp) Unpublish(id, reason string) error {
	return a.service.Unpublish(id, reason)
}

// CreateTemp creates an anonymous temp build addressed by a secret token.
func (a *HangarApp) CreateTemp(content hangar.BuildContent, partSpecs []string) (*model.Build, error) {
	parts, err := ParsePartSpecs(partSpecs)
	if err != nil {
		return nil, err
	}
	return a.service.CreateTemp(content, parts)
}

// GetTemp fetches the build at a share token.
func (a *HangarApp) GetTemp(token string) (*hangar.BuildView, error) {
	return a.service.GetTempByToken(token)
}

// UpdateTemp edits a temp build copy-on-write, returning the new row
// with its fresh token.
func (a *HangarApp) UpdateTemp(token string, content hangar.BuildContent, partSpecs []string, replaceParts bool) (*model.Build, error) {
	parts, err := ParsePartSpecs(partSpecs)
	if err != nil {
		return nil, err
	}
	return a.service.UpdateTempByToken(token, content, parts, replaceParts)
}

// ShareTemp promotes a temp build to a permanent shared snapshot.
func (a *HangarApp) ShareTemp(token string) (*model.Build, error) {
	return a.service.ShareTempByToken(token)
}

// Sweep deletes expired temp builds and returns the number removed.
func (a *HangarApp) Sweep() (int64, error) {
	return a.service.SweepExpiredTemp()
}

// SetReaction records a user's like or dislike on a published build.
func (a *HangarApp) SetReaction(userID, buildID, value string) error {
	return a.service.SetReaction(userID, buildID, value)
}

// ClearReaction removes a user's reaction from a published build.
func (a *HangarApp) ClearReaction(userID, buildID string) error {
	return a.service.ClearReaction(userID, buildID)
}

// GetReactions returns fresh reaction counts and the viewer's own reaction.
func (a *HangarApp) GetReactions(buildID, viewerID string) (*hangar.ReactionSummary, error) {
	return a.service.GetReactions(buildID, viewerID)
}

// Close closes the database and the log file.
func (a *HangarApp) Close() error {
	var firstErr error
	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}
