package database_test

import (
	"testing"
	"time"

	"hangar/internal/database"
	"hangar/internal/hangar"
	"hangar/internal/model"
	"hangar/internal/testutil"
)

func newDB(t *testing.T) (*database.SQLiteDatabase, *testutil.StubClock) {
	t.Helper()
	clock := testutil.FixedClock()
	return testutil.NewTestSQLiteDatabase(t, clock, testutil.NewStubIDGenerator()), clock
}

func seedBuild(t *testing.T, db *database.SQLiteDatabase, clock *testutil.StubClock, mutate func(*model.Build)) *model.Build {
	t.Helper()
	now := clock.Now()
	b := &model.Build{
		ID:          "b-" + time.Now().Format("150405.000000000"),
		OwnerUserID: "alice",
		Status:      "DRAFT",
		Title:       "Seed build",
		Description: "Seed description",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if mutate != nil {
		mutate(b)
	}
	if err := db.CreateBuild(b, nil); err != nil {
		t.Fatalf("CreateBuild() error = %v", err)
	}
	return b
}

func TestSQLiteDatabase_ChangeStatus(t *testing.T) {
	t.Run("publishing sets published_at and clears moderation state", func(t *testing.T) {
		db, clock := newDB(t)
		b := seedBuild(t, db, clock, func(b *model.Build) {
			b.Status = "PENDING_REVIEW"
			b.ModerationReason = "old reason"
		})

		matched, err := db.ChangeStatus(b.ID, "", []hangar.Status{hangar.StatusPendingReview}, hangar.StatusPublished, "")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v", err)
		}
		if !matched {
			t.Fatal("ChangeStatus() matched = false")
		}

		got, err := db.GetBuild(b.ID)
		if err != nil {
			t.Fatalf("GetBuild() error = %v", err)
		}
		if got.Status != "PUBLISHED" {
			t.Errorf("status = %q", got.Status)
		}
		if got.PublishedAt == nil || !got.PublishedAt.Equal(clock.Now()) {
			t.Errorf("PublishedAt = %v, want %v", got.PublishedAt, clock.Now())
		}
		if got.ModerationReason != "" {
			t.Errorf("ModerationReason = %q, want cleared", got.ModerationReason)
		}
		if got.ExpiresAt != nil {
			t.Errorf("ExpiresAt = %v, want cleared", got.ExpiresAt)
		}
	})

	t.Run("unpublishing records the reason and clears published_at", func(t *testing.T) {
		db, clock := newDB(t)
		b := seedBuild(t, db, clock, func(b *model.Build) {
			b.Status = "PUBLISHED"
			now := clock.Now()
			b.PublishedAt = &now
		})

		matched, err := db.ChangeStatus(b.ID, "", []hangar.Status{hangar.StatusPublished}, hangar.StatusUnpublished, "reported")
		if err != nil || !matched {
			t.Fatalf("ChangeStatus() matched = %v, err = %v", matched, err)
		}

		got, _ := db.GetBuild(b.ID)
		if got.PublishedAt != nil {
			t.Errorf("PublishedAt = %v, want nil", got.PublishedAt)
		}
		if got.ModerationReason != "reported" {
			t.Errorf("ModerationReason = %q", got.ModerationReason)
		}
	})

	t.Run("wrong current status matches zero rows", func(t *testing.T) {
		db, clock := newDB(t)
		b := seedBuild(t, db, clock, nil) // DRAFT

		matched, err := db.ChangeStatus(b.ID, "", []hangar.Status{hangar.StatusPublished}, hangar.StatusUnpublished, "")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v", err)
		}
		if matched {
			t.Error("ChangeStatus() matched a row in the wrong status")
		}
	})

	t.Run("owner scoping", func(t *testing.T) {
		db, clock := newDB(t)
		b := seedBuild(t, db, clock, nil)

		matched, err := db.ChangeStatus(b.ID, "mallory", []hangar.Status{hangar.StatusDraft}, hangar.StatusPendingReview, "")
		if err != nil {
			t.Fatalf("ChangeStatus() error = %v", err)
		}
		if matched {
			t.Error("ChangeStatus() matched with the wrong owner")
		}
	})
}

func TestSQLiteDatabase_TokenLookup(t *testing.T) {
	db, clock := newDB(t)
	now := clock.Now()

	expiresSoon := now.Add(time.Hour)
	temp := seedBuild(t, db, clock, func(b *model.Build) {
		b.OwnerUserID = ""
		b.Status = "TEMP"
		b.Token = "tok-temp"
		b.ExpiresAt = &expiresSoon
	})

	t.Run("temp row is live strictly before its expiry", func(t *testing.T) {
		got, err := db.GetBuildByToken("tok-temp", now)
		if err != nil {
			t.Fatalf("GetBuildByToken() error = %v", err)
		}
		if got == nil || got.ID != temp.ID {
			t.Fatalf("GetBuildByToken() = %+v, want %s", got, temp.ID)
		}

		// Exactly at the expiry instant the row is gone.
		got, err = db.GetBuildByToken("tok-temp", expiresSoon)
		if err != nil {
			t.Fatalf("GetBuildByToken() error = %v", err)
		}
		if got != nil {
			t.Errorf("token live at its own expiry instant")
		}
	})

	t.Run("shared rows ignore expiry", func(t *testing.T) {
		stale := now.Add(-time.Hour)
		seedBuild(t, db, clock, func(b *model.Build) {
			b.ID = "b-shared"
			b.OwnerUserID = ""
			b.Status = "SHARED"
			b.Token = "tok-shared"
			b.ExpiresAt = &stale
		})

		got, err := db.GetBuildByToken("tok-shared", now)
		if err != nil {
			t.Fatalf("GetBuildByToken() error = %v", err)
		}
		if got == nil {
			t.Fatal("shared token not retrievable")
		}
	})

	t.Run("non-token statuses never match", func(t *testing.T) {
		seedBuild(t, db, clock, func(b *model.Build) {
			b.ID = "b-draft-tok"
			b.Status = "DRAFT"
			b.Token = "tok-draft"
		})

		got, err := db.GetBuildByToken("tok-draft", now)
		if err != nil {
			t.Fatalf("GetBuildByToken() error = %v", err)
		}
		if got != nil {
			t.Error("draft row matched a token lookup")
		}
	})
}

func TestSQLiteDatabase_SweepExpiredTemp(t *testing.T) {
	db, clock := newDB(t)
	now := clock.Now()

	atCutoff := now
	after := now.Add(time.Minute)
	seedBuild(t, db, clock, func(b *model.Build) {
		b.ID = "b-at"
		b.OwnerUserID = ""
		b.Status = "TEMP"
		b.Token = "tok-at"
		b.ExpiresAt = &atCutoff
	})
	seedBuild(t, db, clock, func(b *model.Build) {
		b.ID = "b-after"
		b.OwnerUserID = ""
		b.Status = "TEMP"
		b.Token = "tok-after"
		b.ExpiresAt = &after
	})
	// A stray expiry on a non-TEMP row must never be swept.
	seedBuild(t, db, clock, func(b *model.Build) {
		b.ID = "b-stray"
		b.Status = "DRAFT"
		b.ExpiresAt = &atCutoff
	})

	n, err := db.SweepExpiredTemp(now)
	if err != nil {
		t.Fatalf("SweepExpiredTemp() error = %v", err)
	}
	if n != 1 {
		t.Errorf("swept %d rows, want 1 (expiry at cutoff is expired)", n)
	}

	if got, _ := db.GetBuild("b-at"); got != nil {
		t.Error("row at cutoff survived the sweep")
	}
	if got, _ := db.GetBuild("b-after"); got == nil {
		t.Error("future row was swept")
	}
	if got, _ := db.GetBuild("b-stray"); got == nil {
		t.Error("non-TEMP row was swept")
	}
}

func TestSQLiteDatabase_MergeRevision(t *testing.T) {
	stage := func(t *testing.T, db *database.SQLiteDatabase, clock *testutil.StubClock) (*model.Build, *model.Build) {
		t.Helper()
		now := clock.Now()
		pub := seedBuild(t, db, clock, func(b *model.Build) {
			b.ID = "b-pub"
			b.Status = "PUBLISHED"
			b.PublishedAt = &now
		})
		rev := &model.Build{
			ID:                "b-rev",
			OwnerUserID:       "alice",
			Status:            "PENDING_REVIEW",
			RevisionOfBuildID: pub.ID,
			Title:             "Revised title",
			Description:       "Revised description",
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		parts := []*model.BuildPart{
			{ID: "p-1", BuildID: rev.ID, GearType: "frame", CatalogItemID: "frame-1"},
		}
		if err := db.CreateRevision(rev, parts); err != nil {
			t.Fatalf("CreateRevision() error = %v", err)
		}
		return pub, rev
	}

	t.Run("copies content, replaces parts, deletes the revision", func(t *testing.T) {
		db, clock := newDB(t)
		pub, rev := stage(t, db, clock)

		matched, err := db.MergeRevision(rev.ID, pub.ID)
		if err != nil {
			t.Fatalf("MergeRevision() error = %v", err)
		}
		if !matched {
			t.Fatal("MergeRevision() matched = false")
		}

		got, _ := db.GetBuild(pub.ID)
		if got.Title != "Revised title" {
			t.Errorf("title = %q, want revision content", got.Title)
		}
		if got.Status != "PUBLISHED" {
			t.Errorf("status = %q, want PUBLISHED preserved", got.Status)
		}

		parts, _ := db.GetParts(pub.ID)
		if len(parts) != 1 || parts[0].GearType != "frame" {
			t.Errorf("merged parts = %+v", parts)
		}

		if gone, _ := db.GetBuild(rev.ID); gone != nil {
			t.Error("revision row survived the merge")
		}
	})

	t.Run("fails when the published row was unpublished meanwhile", func(t *testing.T) {
		db, clock := newDB(t)
		pub, rev := stage(t, db, clock)

		if _, err := db.ChangeStatus(pub.ID, "", []hangar.Status{hangar.StatusPublished}, hangar.StatusUnpublished, "pulled"); err != nil {
			t.Fatalf("ChangeStatus() error = %v", err)
		}

		matched, err := db.MergeRevision(rev.ID, pub.ID)
		if err != nil {
			t.Fatalf("MergeRevision() error = %v", err)
		}
		if matched {
			t.Error("MergeRevision() merged into a non-published row")
		}

		// The revision survives for a later retry.
		if still, _ := db.GetBuild(rev.ID); still == nil {
			t.Error("revision row deleted despite failed merge")
		}
	})
}

func TestSQLiteDatabase_GetOwnerView(t *testing.T) {
	db, clock := newDB(t)
	now := clock.Now()

	pub := seedBuild(t, db, clock, func(b *model.Build) {
		b.ID = "b-pub"
		b.Status = "PUBLISHED"
		b.PublishedAt = &now
	})

	t.Run("without a revision the row is returned untouched", func(t *testing.T) {
		got, revisionID, err := db.GetOwnerView(pub.ID, "alice")
		if err != nil {
			t.Fatalf("GetOwnerView() error = %v", err)
		}
		if revisionID != "" {
			t.Errorf("revisionID = %q, want empty", revisionID)
		}
		if got.Title != "Seed build" {
			t.Errorf("title = %q", got.Title)
		}
	})

	t.Run("projects staged content under the published identity", func(t *testing.T) {
		clock.Advance(time.Hour)
		later := clock.Now()
		rev := &model.Build{
			ID:                "b-rev",
			OwnerUserID:       "alice",
			Status:            "DRAFT",
			RevisionOfBuildID: pub.ID,
			Title:             "Staged title",
			Description:       "Staged description",
			CreatedAt:         later,
			UpdatedAt:         later,
		}
		if err := db.CreateRevision(rev, nil); err != nil {
			t.Fatalf("CreateRevision() error = %v", err)
		}

		got, revisionID, err := db.GetOwnerView(pub.ID, "alice")
		if err != nil {
			t.Fatalf("GetOwnerView() error = %v", err)
		}
		if revisionID != rev.ID {
			t.Errorf("revisionID = %q, want %q", revisionID, rev.ID)
		}
		if got.ID != pub.ID {
			t.Errorf("id = %q, want published id", got.ID)
		}
		if got.Status != "PUBLISHED" {
			t.Errorf("status = %q, want published status", got.Status)
		}
		if got.Title != "Staged title" {
			t.Errorf("title = %q, want staged content", got.Title)
		}
		if !got.UpdatedAt.Equal(later) {
			t.Errorf("UpdatedAt = %v, want revision's %v", got.UpdatedAt, later)
		}
	})

	t.Run("wrong owner sees nothing", func(t *testing.T) {
		got, _, err := db.GetOwnerView(pub.ID, "mallory")
		if err != nil {
			t.Fatalf("GetOwnerView() error = %v", err)
		}
		if got != nil {
			t.Error("wrong owner got a view")
		}
	})
}

func TestSQLiteDatabase_DeleteCascades(t *testing.T) {
	db, clock := newDB(t)
	now := clock.Now()

	b := seedBuild(t, db, clock, func(b *model.Build) {
		b.ID = "b-del"
		b.Status = "PUBLISHED"
		b.PublishedAt = &now
	})
	if err := db.CreateBuild(&model.Build{
		ID: "ignore-parts-host", OwnerUserID: "alice", Status: "DRAFT",
		CreatedAt: now, UpdatedAt: now,
	}, []*model.BuildPart{
		{ID: "p-keep", BuildID: "ignore-parts-host", GearType: "frame", CatalogItemID: "frame-1"},
	}); err != nil {
		t.Fatalf("CreateBuild() error = %v", err)
	}

	if _, err := db.UpsertReaction(b.ID, "bob", "LIKE", now); err != nil {
		t.Fatalf("UpsertReaction() error = %v", err)
	}
	if matched, err := db.ChangeStatus(b.ID, "", []hangar.Status{hangar.StatusPublished}, hangar.StatusUnpublished, ""); err != nil || !matched {
		t.Fatalf("ChangeStatus() matched = %v, err = %v", matched, err)
	}

	matched, err := db.DeleteBuild(b.ID, "alice", []hangar.Status{hangar.StatusUnpublished})
	if err != nil || !matched {
		t.Fatalf("DeleteBuild() matched = %v, err = %v", matched, err)
	}

	likes, dislikes, err := db.CountReactions(b.ID)
	if err != nil {
		t.Fatalf("CountReactions() error = %v", err)
	}
	if likes != 0 || dislikes != 0 {
		t.Errorf("reactions survived the delete: %d/%d", likes, dislikes)
	}

	// Unrelated parts are untouched.
	parts, _ := db.GetParts("ignore-parts-host")
	if len(parts) != 1 {
		t.Errorf("unrelated parts = %d, want 1", len(parts))
	}
}
