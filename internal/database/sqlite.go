package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"hangar/internal/database/migrations"
	"hangar/internal/hangar"
	"hangar/internal/model"
)

// SQLiteDatabase implements the hangar.Database interface using SQLite.
type SQLiteDatabase struct {
	db    *sql.DB
	path  string
	clock hangar.Clock
	idgen hangar.IDGenerator
}

var _ hangar.Database = (*SQLiteDatabase)(nil)

// errNoMatch aborts a transaction whose conditional update matched zero
// rows. Mapped to (false, nil) at the method boundary.
var errNoMatch = errors.New("no rows matched")

// NewSQLiteDatabase creates a new SQLite database connection.
// path can be a file path or ":memory:" for in-memory database.
// clock and idgen may be nil, in which case real implementations are used.
func NewSQLiteDatabase(path string, clock hangar.Clock, idgen hangar.IDGenerator) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteDatabaseFromDB(db, clock, idgen), nil
}

// NewSQLiteDatabaseFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteDatabaseFromDB(db *sql.DB, clock hangar.Clock, idgen hangar.IDGenerator) *SQLiteDatabase {
	if clock == nil {
		clock = hangar.RealClock{}
	}
	if idgen == nil {
		idgen = hangar.UUIDGenerator{}
	}
	return &SQLiteDatabase{db: db, clock: clock, idgen: idgen}
}

// OpenConnection opens and configures a SQLite database connection with
// appropriate PRAGMAs. Exported for tools and tests that need a properly
// configured connection. path can be a file path or ":memory:".
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign key constraints (SQLite default is OFF for backward
	// compatibility). Cascade deletes on parts and reactions depend on it.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// CheckMigrations verifies the schema is at the latest version.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// MigrateUp applies all pending migrations.
func (s *SQLiteDatabase) MigrateUp() error {
	return migrations.MigrateUp(s.db)
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a transaction, rolling back on any error.
func (s *SQLiteDatabase) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is SQLite's unique-constraint
// failure. This is the one store error with a defined recovery path
// (revision staging races).
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

const buildColumns = `id, owner_user_id, status, revision_of_build_id,
	title, description, build_video_url, flight_video_url,
	source_aircraft_id, image_asset_id, moderation_reason,
	token, expires_at, created_at, updated_at, published_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBuild reads one build row in buildColumns order.
func scanBuild(r rowScanner) (*model.Build, error) {
	var b model.Build
	var owner, revisionOf, token sql.NullString
	var expiresAt, publishedAt sql.NullTime

	err := r.Scan(&b.ID, &owner, &b.Status, &revisionOf,
		&b.Title, &b.Description, &b.BuildVideoURL, &b.FlightVideoURL,
		&b.SourceAircraftID, &b.ImageAssetID, &b.ModerationReason,
		&token, &expiresAt, &b.CreatedAt, &b.UpdatedAt, &publishedAt)
	if err != nil {
		return nil, err
	}

	b.OwnerUserID = owner.String
	b.RevisionOfBuildID = revisionOf.String
	b.Token = token.String
	if expiresAt.Valid {
		t := expiresAt.Time
		b.ExpiresAt = &t
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		b.PublishedAt = &t
	}
	return &b, nil
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime maps nil to NULL for optional time columns.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// statusSet renders a status list as SQL placeholders plus args.
func statusSet(statuses []hangar.Status) (string, []any) {
	marks := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, st := range statuses {
		marks[i] = "?"
		args[i] = string(st)
	}
	return strings.Join(marks, ", "), args
}

// getBuildWhere runs a single-row build lookup; nil when absent.
func (s *SQLiteDatabase) getBuildWhere(where string, args ...any) (*model.Build, error) {
	row := s.db.QueryRow("SELECT "+buildColumns+" FROM builds WHERE "+where, args...)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning build: %w", err)
	}
	return b, nil
}

// Build lookups

func (s *SQLiteDatabase) GetBuild(id string) (*model.Build, error) {
	return s.getBuildWhere("id = ?", id)
}

func (s *SQLiteDatabase) GetBuildForOwner(id, ownerID string) (*model.Build, error) {
	return s.getBuildWhere("id = ? AND owner_user_id = ?", id, ownerID)
}

func (s *SQLiteDatabase) GetPublicBuild(id string) (*model.Build, error) {
	return s.getBuildWhere("id = ? AND status = ?", id, string(hangar.StatusPublished))
}

// GetOwnerView returns the owner's presentation of a build. For a
// PUBLISHED row the text content prefers an open staged revision via
// COALESCE; the join is keyed on status = PUBLISHED so every other
// status returns the row untouched. The partial unique index over open
// revisions guarantees the join matches at most one row.
func (s *SQLiteDatabase) GetOwnerView(id, ownerID string) (*model.Build, string, error) {
	openSet, openArgs := statusSet(hangar.RevisionOpenStatuses)

	query := `
		SELECT b.id, b.owner_user_id, b.status, b.revision_of_build_id,
			COALESCE(r.title, b.title),
			COALESCE(r.description, b.description),
			COALESCE(r.build_video_url, b.build_video_url),
			COALESCE(r.flight_video_url, b.flight_video_url),
			COALESCE(r.source_aircraft_id, b.source_aircraft_id),
			COALESCE(r.image_asset_id, b.image_asset_id),
			COALESCE(r.moderation_reason, b.moderation_reason),
			b.token, b.expires_at, b.created_at, b.updated_at, b.published_at,
			r.id, r.updated_at
		FROM builds b
		LEFT JOIN builds r
			ON b.status = ?
			AND r.revision_of_build_id = b.id
			AND r.owner_user_id = b.owner_user_id
			AND r.status IN (` + openSet + `)
		WHERE b.id = ? AND b.owner_user_id = ?`

	args := append([]any{string(hangar.StatusPublished)}, openArgs...)
	args = append(args, id, ownerID)

	row := s.db.QueryRow(query, args...)

	var b model.Build
	var owner, revisionOf, token, stagedID sql.NullString
	var expiresAt, publishedAt, stagedUpdatedAt sql.NullTime

	err := row.Scan(&b.ID, &owner, &b.Status, &revisionOf,
		&b.Title, &b.Description, &b.BuildVideoURL, &b.FlightVideoURL,
		&b.SourceAircraftID, &b.ImageAssetID, &b.ModerationReason,
		&token, &expiresAt, &b.CreatedAt, &b.UpdatedAt, &publishedAt,
		&stagedID, &stagedUpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("scanning owner view: %w", err)
	}

	b.OwnerUserID = owner.String
	b.RevisionOfBuildID = revisionOf.String
	b.Token = token.String
	if expiresAt.Valid {
		t := expiresAt.Time
		b.ExpiresAt = &t
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		b.PublishedAt = &t
	}
	if stagedUpdatedAt.Valid {
		b.UpdatedAt = stagedUpdatedAt.Time
	}
	return &b, stagedID.String, nil
}

func (s *SQLiteDatabase) ListBuildsForOwner(ownerID string) ([]*model.Build, error) {
	rows, err := s.db.Query(
		"SELECT "+buildColumns+" FROM builds WHERE owner_user_id = ? AND revision_of_build_id IS NULL ORDER BY created_at DESC, id",
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing builds: %w", err)
	}
	return collectBuilds(rows)
}

func (s *SQLiteDatabase) ListPendingReview() ([]*model.Build, error) {
	rows, err := s.db.Query(
		"SELECT "+buildColumns+" FROM builds WHERE status = ? ORDER BY updated_at ASC, id",
		string(hangar.StatusPendingReview))
	if err != nil {
		return nil, fmt.Errorf("listing pending review: %w", err)
	}
	return collectBuilds(rows)
}

func collectBuilds(rows *sql.Rows) ([]*model.Build, error) {
	defer rows.Close()
	var builds []*model.Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning build: %w", err)
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating builds: %w", err)
	}
	return builds, nil
}

// Build mutations

func (s *SQLiteDatabase) CreateBuild(b *model.Build, parts []*model.BuildPart) error {
	return s.withTx(func(tx *sql.Tx) error {
		if err := insertBuild(tx, b); err != nil {
			return fmt.Errorf("inserting build: %w", err)
		}
		if err := insertParts(tx, parts); err != nil {
			return fmt.Errorf("inserting parts: %w", err)
		}
		return nil
	})
}

func insertBuild(tx *sql.Tx, b *model.Build) error {
	_, err := tx.Exec(`
		INSERT INTO builds (`+buildColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, nullable(b.OwnerUserID), b.Status, nullable(b.RevisionOfBuildID),
		b.Title, b.Description, b.BuildVideoURL, b.FlightVideoURL,
		b.SourceAircraftID, b.ImageAssetID, b.ModerationReason,
		nullable(b.Token), nullableTime(b.ExpiresAt), b.CreatedAt, b.UpdatedAt,
		nullableTime(b.PublishedAt))
	return err
}

func insertParts(tx *sql.Tx, parts []*model.BuildPart) error {
	for _, p := range parts {
		_, err := tx.Exec(`
			INSERT INTO build_parts (id, build_id, gear_type, catalog_item_id, position, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.BuildID, p.GearType, p.CatalogItemID, p.Position, p.Notes)
		if err != nil {
			return err
		}
	}
	return nil
}

// replaceParts deletes a build's parts and inserts the supplied list.
// Wholesale replacement within the enclosing transaction is the only way
// parts change.
func replaceParts(tx *sql.Tx, buildID string, parts []*model.BuildPart) error {
	if _, err := tx.Exec("DELETE FROM build_parts WHERE build_id = ?", buildID); err != nil {
		return fmt.Errorf("deleting parts: %w", err)
	}
	if err := insertParts(tx, parts); err != nil {
		return fmt.Errorf("inserting parts: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) UpdateBuildContent(id, ownerID string, from []hangar.Status, content hangar.BuildContent, parts []*model.BuildPart, doReplaceParts bool) (bool, error) {
	fromSet, fromArgs := statusSet(from)
	err := s.withTx(func(tx *sql.Tx) error {
		args := []any{
			content.Title, content.Description, content.BuildVideoURL,
			content.FlightVideoURL, content.SourceAircraftID, content.ImageAssetID,
			s.clock.Now(), id, ownerID,
		}
		args = append(args, fromArgs...)
		res, err := tx.Exec(`
			UPDATE builds SET
				title = ?, description = ?, build_video_url = ?,
				flight_video_url = ?, source_aircraft_id = ?, image_asset_id = ?,
				updated_at = ?
			WHERE id = ? AND owner_user_id = ? AND status IN (`+fromSet+`)`,
			args...)
		if err != nil {
			return fmt.Errorf("updating build content: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking rows affected: %w", err)
		}
		if n == 0 {
			return errNoMatch
		}
		if doReplaceParts {
			return replaceParts(tx, id, parts)
		}
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteDatabase) ChangeStatus(id, ownerID string, from []hangar.Status, to hangar.Status, moderationReason string) (bool, error) {
	fromSet, fromArgs := statusSet(from)
	now := s.clock.Now()

	set := "status = ?, updated_at = ?"
	args := []any{string(to), now}

	// Side effects follow the target status. A PUBLISHED row never has
	// an expiry and always has published_at; every other status has
	// published_at cleared.
	switch to {
	case hangar.StatusPublished:
		set += ", published_at = ?, moderation_reason = '', expires_at = NULL"
		args = append(args, now)
	case hangar.StatusUnpublished:
		set += ", published_at = NULL, moderation_reason = ?"
		args = append(args, moderationReason)
	default:
		set += ", published_at = NULL"
	}

	where := "id = ? AND status IN (" + fromSet + ")"
	args = append(args, id)
	args = append(args, fromArgs...)
	if ownerID != "" {
		where += " AND owner_user_id = ?"
		args = append(args, ownerID)
	}

	res, err := s.db.Exec("UPDATE builds SET "+set+" WHERE "+where, args...)
	if err != nil {
		return false, fmt.Errorf("changing status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteDatabase) DeleteBuild(id, ownerID string, from []hangar.Status) (bool, error) {
	fromSet, fromArgs := statusSet(from)
	args := []any{id, ownerID}
	args = append(args, fromArgs...)

	// Parts, reactions, and open revision rows go with the build via
	// ON DELETE CASCADE.
	res, err := s.db.Exec(
		"DELETE FROM builds WHERE id = ? AND owner_user_id = ? AND status IN ("+fromSet+")",
		args...)
	if err != nil {
		return false, fmt.Errorf("deleting build: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}
	return n > 0, nil
}

// Revision staging

func (s *SQLiteDatabase) FindOpenRevision(ownerID, publishedID string) (*model.Build, error) {
	openSet, openArgs := statusSet(hangar.RevisionOpenStatuses)
	args := []any{ownerID, publishedID}
	args = append(args, openArgs...)

	row := s.db.QueryRow(
		"SELECT "+buildColumns+" FROM builds WHERE owner_user_id = ? AND revision_of_build_id = ? AND status IN ("+openSet+") ORDER BY updated_at DESC LIMIT 1",
		args...)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning revision: %w", err)
	}
	return b, nil
}

func (s *SQLiteDatabase) CreateRevision(rev *model.Build, parts []*model.BuildPart) error {
	err := s.withTx(func(tx *sql.Tx) error {
		if err := insertBuild(tx, rev); err != nil {
			return err
		}
		return insertParts(tx, parts)
	})
	if isUniqueViolation(err) {
		return hangar.ErrDuplicateRevision
	}
	if err != nil {
		return fmt.Errorf("inserting revision: %w", err)
	}
	return nil
}

// MergeRevision folds an approved revision into its published
// counterpart: content fields are copied (moderation reason cleared,
// updated_at bumped), the published row's parts are replaced wholesale
// with the revision's, and the revision row is deleted. The published
// id survives untouched, so share links and reactions keep working.
func (s *SQLiteDatabase) MergeRevision(revisionID, publishedID string) (bool, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		row := tx.QueryRow(
			"SELECT "+buildColumns+" FROM builds WHERE id = ? AND revision_of_build_id = ?",
			revisionID, publishedID)
		rev, err := scanBuild(row)
		if errors.Is(err, sql.ErrNoRows) {
			return errNoMatch
		}
		if err != nil {
			return fmt.Errorf("reading revision: %w", err)
		}

		res, err := tx.Exec(`
			UPDATE builds SET
				title = ?, description = ?, build_video_url = ?,
				flight_video_url = ?, source_aircraft_id = ?, image_asset_id = ?,
				moderation_reason = '', updated_at = ?
			WHERE id = ? AND status = ?`,
			rev.Title, rev.Description, rev.BuildVideoURL,
			rev.FlightVideoURL, rev.SourceAircraftID, rev.ImageAssetID,
			s.clock.Now(), publishedID, string(hangar.StatusPublished))
		if err != nil {
			return fmt.Errorf("copying revision content: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("checking rows affected: %w", err)
		}
		if n == 0 {
			// Published row vanished or is no longer PUBLISHED.
			return errNoMatch
		}

		revParts, err := getPartsTx(tx, revisionID)
		if err != nil {
			return fmt.Errorf("reading revision parts: %w", err)
		}
		merged := make([]*model.BuildPart, 0, len(revParts))
		for _, p := range revParts {
			merged = append(merged, &model.BuildPart{
				ID:            s.idgen.New(),
				BuildID:       publishedID,
				GearType:      p.GearType,
				CatalogItemID: p.CatalogItemID,
				Position:      p.Position,
				Notes:         p.Notes,
			})
		}
		if err := replaceParts(tx, publishedID, merged); err != nil {
			return err
		}

		if _, err := tx.Exec("DELETE FROM builds WHERE id = ?", revisionID); err != nil {
			return fmt.Errorf("deleting revision row: %w", err)
		}
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Temp/shared links

// liveTokenWhere matches a retrievable token row: TEMP within its TTL,
// or SHARED unconditionally.
const liveTokenWhere = "token = ? AND (status = ? OR (status = ? AND (expires_at IS NULL OR expires_at > ?)))"

func (s *SQLiteDatabase) GetBuildByToken(token string, now time.Time) (*model.Build, error) {
	return s.getBuildWhere(liveTokenWhere,
		token, string(hangar.StatusShared), string(hangar.StatusTemp), now)
}

func (s *SQLiteDatabase) PromoteTemp(token string, now time.Time) (*model.Build, error) {
	var promoted *model.Build
	err := s.withTx(func(tx *sql.Tx) error {
		row := tx.QueryRow("SELECT "+buildColumns+" FROM builds WHERE "+liveTokenWhere,
			token, string(hangar.StatusShared), string(hangar.StatusTemp), now)
		b, err := scanBuild(row)
		if errors.Is(err, sql.ErrNoRows) {
			return errNoMatch
		}
		if err != nil {
			return fmt.Errorf("reading token row: %w", err)
		}

		if hangar.Status(b.Status) == hangar.StatusShared {
			// Already promoted; idempotent success.
			promoted = b
			return nil
		}

		if _, err := tx.Exec(
			"UPDATE builds SET status = ?, expires_at = NULL, updated_at = ? WHERE id = ? AND status = ?",
			string(hangar.StatusShared), now, b.ID, string(hangar.StatusTemp)); err != nil {
			return fmt.Errorf("promoting temp build: %w", err)
		}

		b.Status = string(hangar.StatusShared)
		b.ExpiresAt = nil
		b.UpdatedAt = now
		promoted = b
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

// SweepExpiredTemp deletes exactly the TEMP rows expired at the cutoff.
// The predicate names the status explicitly so rows in any other status
// are never candidates, even if they somehow carry an expiry.
func (s *SQLiteDatabase) SweepExpiredTemp(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM builds WHERE status = ? AND expires_at IS NOT NULL AND expires_at <= ?",
		string(hangar.StatusTemp), cutoff)
	if err != nil {
		return 0, fmt.Errorf("sweeping expired temp builds: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return n, nil
}

// Parts

func (s *SQLiteDatabase) GetParts(buildID string) ([]*model.BuildPart, error) {
	rows, err := s.db.Query(
		"SELECT id, build_id, gear_type, catalog_item_id, position, notes FROM build_parts WHERE build_id = ? ORDER BY gear_type, position, id",
		buildID)
	if err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}
	defer rows.Close()
	return collectParts(rows)
}

func getPartsTx(tx *sql.Tx, buildID string) ([]*model.BuildPart, error) {
	rows, err := tx.Query(
		"SELECT id, build_id, gear_type, catalog_item_id, position, notes FROM build_parts WHERE build_id = ? ORDER BY gear_type, position, id",
		buildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectParts(rows)
}

func collectParts(rows *sql.Rows) ([]*model.BuildPart, error) {
	var parts []*model.BuildPart
	for rows.Next() {
		var p model.BuildPart
		if err := rows.Scan(&p.ID, &p.BuildID, &p.GearType, &p.CatalogItemID, &p.Position, &p.Notes); err != nil {
			return nil, fmt.Errorf("scanning part: %w", err)
		}
		parts = append(parts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parts: %w", err)
	}
	return parts, nil
}

// Reactions

func (s *SQLiteDatabase) UpsertReaction(buildID, userID, value string, now time.Time) (bool, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		if err := requirePublished(tx, buildID); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO build_reactions (id, build_id, user_id, value, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (build_id, user_id)
			DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			s.idgen.New(), buildID, userID, value, now)
		if err != nil {
			return fmt.Errorf("upserting reaction: %w", err)
		}
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteDatabase) ClearReaction(buildID, userID string) (bool, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		if err := requirePublished(tx, buildID); err != nil {
			return err
		}
		if _, err := tx.Exec(
			"DELETE FROM build_reactions WHERE build_id = ? AND user_id = ?",
			buildID, userID); err != nil {
			return fmt.Errorf("deleting reaction: %w", err)
		}
		return nil
	})
	if errors.Is(err, errNoMatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// requirePublished fails with errNoMatch unless the build exists and is
// PUBLISHED. Reactions are only meaningful on published builds.
func requirePublished(tx *sql.Tx, buildID string) error {
	var status string
	err := tx.QueryRow("SELECT status FROM builds WHERE id = ?", buildID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return errNoMatch
	}
	if err != nil {
		return fmt.Errorf("checking build status: %w", err)
	}
	if hangar.Status(status) != hangar.StatusPublished {
		return errNoMatch
	}
	return nil
}

func (s *SQLiteDatabase) CountReactions(buildID string) (int64, int64, error) {
	rows, err := s.db.Query(
		"SELECT value, COUNT(*) FROM build_reactions WHERE build_id = ? GROUP BY value",
		buildID)
	if err != nil {
		return 0, 0, fmt.Errorf("counting reactions: %w", err)
	}
	defer rows.Close()

	var likes, dislikes int64
	for rows.Next() {
		var value string
		var count int64
		if err := rows.Scan(&value, &count); err != nil {
			return 0, 0, fmt.Errorf("scanning reaction count: %w", err)
		}
		switch value {
		case hangar.ReactionLike:
			likes = count
		case hangar.ReactionDislike:
			dislikes = count
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("iterating reaction counts: %w", err)
	}
	return likes, dislikes, nil
}

func (s *SQLiteDatabase) GetReaction(buildID, userID string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM build_reactions WHERE build_id = ? AND user_id = ?",
		buildID, userID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching reaction: %w", err)
	}
	return value, nil
}
