package hangar_test

import (
	"errors"
	"testing"

	"hangar/internal/hangar"
	"hangar/internal/model"
	"hangar/internal/testutil"
)

// blindDB hides the open revision from the first n FindOpenRevision
// calls, simulating a concurrent request that staged the revision
// between this request's lookup and insert.
type blindDB struct {
	hangar.Database
	misses int
}

func (d *blindDB) FindOpenRevision(ownerID, publishedID string) (*model.Build, error) {
	if d.misses > 0 {
		d.misses--
		return nil, nil
	}
	return d.Database.FindOpenRevision(ownerID, publishedID)
}

func TestService_RevisionRace(t *testing.T) {
	t.Run("losing the insert race adopts the winner's revision", func(t *testing.T) {
		db := testutil.NewTestDatabase(t)
		blind := &blindDB{Database: db, misses: 1}
		f := newFixtureWithDB(t, blind)

		pub := createPublished(t, f, "alice")

		// The winner's revision, staged through the normal path.
		winner := validContent()
		winner.Title = "Winner edit"
		rev1, err := f.svc.UpdateBuild("alice", pub.ID, winner, nil, false)
		if err != nil {
			t.Fatalf("first UpdateBuild() error = %v", err)
		}

		// The next edit's lookup misses (blindDB), its insert hits the
		// open-revision unique index, and recovery lands it on rev1.
		loser := validContent()
		loser.Title = "Loser edit"
		rev2, err := f.svc.UpdateBuild("alice", pub.ID, loser, nil, false)
		if err != nil {
			t.Fatalf("racing UpdateBuild() error = %v", err)
		}
		if rev2.ID != rev1.ID {
			t.Errorf("racing edit landed on %s, want winner's revision %s", rev2.ID, rev1.ID)
		}
		if rev2.Title != "Loser edit" {
			t.Errorf("revision title = %q, want the later edit", rev2.Title)
		}
		if blind.misses != 0 {
			t.Fatalf("test wiring: %d forced misses unconsumed", blind.misses)
		}

		// Exactly one revision row exists.
		open, err := db.FindOpenRevision("alice", pub.ID)
		if err != nil {
			t.Fatalf("FindOpenRevision() error = %v", err)
		}
		if open == nil || open.ID != rev1.ID {
			t.Errorf("open revision = %+v, want %s", open, rev1.ID)
		}
	})

	t.Run("direct duplicate insert returns ErrDuplicateRevision", func(t *testing.T) {
		f := newFixture(t)
		pub := createPublished(t, f, "alice")

		content := validContent()
		content.Title = "Edit"
		if _, err := f.svc.UpdateBuild("alice", pub.ID, content, nil, false); err != nil {
			t.Fatalf("UpdateBuild() error = %v", err)
		}

		dup := &model.Build{
			ID:                "dup-revision",
			OwnerUserID:       "alice",
			Status:            "DRAFT",
			RevisionOfBuildID: pub.ID,
			CreatedAt:         f.clock.Now(),
			UpdatedAt:         f.clock.Now(),
		}
		if err := f.db.CreateRevision(dup, nil); !errors.Is(err, hangar.ErrDuplicateRevision) {
			t.Errorf("CreateRevision() error = %v, want ErrDuplicateRevision", err)
		}
	})

	t.Run("approved revision reopens staging for the next edit", func(t *testing.T) {
		f := newFixture(t)
		pub := createPublished(t, f, "alice")

		first := validContent()
		first.Title = "First cycle"
		rev1, _ := f.svc.UpdateBuild("alice", pub.ID, first, nil, false)
		f.svc.SubmitForReview("alice", rev1.ID)
		if res, err := f.svc.Approve(rev1.ID); err != nil || !res.OK() {
			t.Fatalf("Approve() res = %+v, err = %v", res, err)
		}

		// The unique index slot is free again; a new edit stages a fresh
		// revision.
		second := validContent()
		second.Title = "Second cycle"
		rev2, err := f.svc.UpdateBuild("alice", pub.ID, second, nil, false)
		if err != nil {
			t.Fatalf("post-merge UpdateBuild() error = %v", err)
		}
		if rev2.ID == rev1.ID {
			t.Error("post-merge edit reused the merged revision id")
		}
		if rev2.RevisionOfBuildID != pub.ID {
			t.Errorf("RevisionOfBuildID = %q, want %q", rev2.RevisionOfBuildID, pub.ID)
		}
	})
}
