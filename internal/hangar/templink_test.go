package hangar_test

import (
	"errors"
	"testing"
	"time"

	"hangar/internal/hangar"
	"hangar/internal/model"
)

func TestService_CreateTemp(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.CreateTemp(validContent(), validParts())
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	if b.Status != "TEMP" {
		t.Errorf("status = %q, want TEMP", b.Status)
	}
	if b.Token == "" {
		t.Error("temp build has no token")
	}
	if b.OwnerUserID != "" {
		t.Errorf("owner = %q, want anonymous", b.OwnerUserID)
	}

	wantExpiry := f.clock.Now().Add(hangar.TempBuildTTL)
	if b.ExpiresAt == nil || !b.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", b.ExpiresAt, wantExpiry)
	}
}

func TestService_GetTempByToken(t *testing.T) {
	t.Run("fetches a live temp build with parts", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), validParts())

		view, err := f.svc.GetTempByToken(b.Token)
		if err != nil {
			t.Fatalf("GetTempByToken() error = %v", err)
		}
		if view.Build.ID != b.ID {
			t.Errorf("build = %s, want %s", view.Build.ID, b.ID)
		}
		if len(view.Parts) != 4 {
			t.Errorf("parts = %d, want 4", len(view.Parts))
		}
	})

	t.Run("expired token reads as not found", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), nil)

		f.clock.Advance(hangar.TempBuildTTL + time.Second)

		if _, err := f.svc.GetTempByToken(b.Token); !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("GetTempByToken() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown token reads as not found", func(t *testing.T) {
		f := newFixture(t)

		if _, err := f.svc.GetTempByToken("no-such-token"); !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("GetTempByToken() error = %v, want ErrNotFound", err)
		}
	})
}

func TestService_UpdateTempByToken(t *testing.T) {
	t.Run("edit lands on a fresh row with a fresh token", func(t *testing.T) {
		f := newFixture(t)
		old, _ := f.svc.CreateTemp(validContent(), validParts())

		edit := hangar.BuildContent{Title: "Edited title"}
		fork, err := f.svc.UpdateTempByToken(old.Token, edit, nil, false)
		if err != nil {
			t.Fatalf("UpdateTempByToken() error = %v", err)
		}
		if fork.ID == old.ID {
			t.Error("edit mutated the old row")
		}
		if fork.Token == old.Token {
			t.Error("fork reused the old token")
		}

		// Empty edit fields keep the base values.
		if fork.Title != "Edited title" {
			t.Errorf("title = %q", fork.Title)
		}
		if fork.Description != validContent().Description {
			t.Errorf("description = %q, want carried over", fork.Description)
		}

		// Parts are copied when not replaced.
		view, _ := f.svc.GetTempByToken(fork.Token)
		if len(view.Parts) != 4 {
			t.Errorf("fork parts = %d, want 4", len(view.Parts))
		}

		// The old token still serves its last-known state.
		oldView, err := f.svc.GetTempByToken(old.Token)
		if err != nil {
			t.Fatalf("old token unreadable after fork: %v", err)
		}
		if oldView.Build.Title != validContent().Title {
			t.Errorf("old title = %q, want unchanged", oldView.Build.Title)
		}
	})

	t.Run("edit refreshes the TTL on the fork only", func(t *testing.T) {
		f := newFixture(t)
		old, _ := f.svc.CreateTemp(validContent(), nil)

		f.clock.Advance(20 * time.Hour)
		fork, err := f.svc.UpdateTempByToken(old.Token, hangar.BuildContent{Title: "x"}, nil, false)
		if err != nil {
			t.Fatalf("UpdateTempByToken() error = %v", err)
		}

		// 5 more hours: the old row is past its 24h, the fork is not.
		f.clock.Advance(5 * time.Hour)
		if _, err := f.svc.GetTempByToken(old.Token); !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("old token error = %v, want ErrNotFound", err)
		}
		if _, err := f.svc.GetTempByToken(fork.Token); err != nil {
			t.Errorf("fork token error = %v, want live", err)
		}
	})

	t.Run("replaceParts swaps the fork's parts", func(t *testing.T) {
		f := newFixture(t)
		old, _ := f.svc.CreateTemp(validContent(), validParts())

		newParts := []*model.BuildPart{{GearType: "frame", CatalogItemID: "frame-1"}}
		fork, err := f.svc.UpdateTempByToken(old.Token, hangar.BuildContent{}, newParts, true)
		if err != nil {
			t.Fatalf("UpdateTempByToken() error = %v", err)
		}

		view, _ := f.svc.GetTempByToken(fork.Token)
		if len(view.Parts) != 1 {
			t.Errorf("fork parts = %d, want 1", len(view.Parts))
		}
	})

	t.Run("shared builds are read-only", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), nil)
		if _, err := f.svc.ShareTempByToken(b.Token); err != nil {
			t.Fatalf("ShareTempByToken() error = %v", err)
		}

		_, err := f.svc.UpdateTempByToken(b.Token, hangar.BuildContent{Title: "x"}, nil, false)
		if !errors.Is(err, hangar.ErrSharedReadOnly) {
			t.Errorf("UpdateTempByToken() error = %v, want ErrSharedReadOnly", err)
		}
	})
}

func TestService_ShareTempByToken(t *testing.T) {
	t.Run("promotes in place and clears the expiry", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), validParts())

		shared, err := f.svc.ShareTempByToken(b.Token)
		if err != nil {
			t.Fatalf("ShareTempByToken() error = %v", err)
		}
		if shared.ID != b.ID {
			t.Errorf("share moved the row: %s, want %s", shared.ID, b.ID)
		}
		if shared.Token != b.Token {
			t.Errorf("share changed the token")
		}
		if shared.Status != "SHARED" {
			t.Errorf("status = %q, want SHARED", shared.Status)
		}
		if shared.ExpiresAt != nil {
			t.Errorf("ExpiresAt = %v, want cleared", shared.ExpiresAt)
		}

		// Shared links never expire.
		f.clock.Advance(1000 * time.Hour)
		if _, err := f.svc.GetTempByToken(b.Token); err != nil {
			t.Errorf("shared token error = %v after a long time, want live", err)
		}
	})

	t.Run("sharing twice is idempotent", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), nil)

		if _, err := f.svc.ShareTempByToken(b.Token); err != nil {
			t.Fatalf("first share error = %v", err)
		}
		again, err := f.svc.ShareTempByToken(b.Token)
		if err != nil {
			t.Fatalf("second share error = %v", err)
		}
		if again.Status != "SHARED" {
			t.Errorf("status = %q, want SHARED", again.Status)
		}
	})

	t.Run("sharing an expired token reads as not found", func(t *testing.T) {
		f := newFixture(t)
		b, _ := f.svc.CreateTemp(validContent(), nil)
		f.clock.Advance(hangar.TempBuildTTL + time.Minute)

		if _, err := f.svc.ShareTempByToken(b.Token); !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("ShareTempByToken() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("share after edit snapshots only the forked row", func(t *testing.T) {
		f := newFixture(t)
		v1, _ := f.svc.CreateTemp(validContent(), nil)
		v2, err := f.svc.UpdateTempByToken(v1.Token, hangar.BuildContent{Title: "v2"}, nil, false)
		if err != nil {
			t.Fatalf("UpdateTempByToken() error = %v", err)
		}

		if _, err := f.svc.ShareTempByToken(v2.Token); err != nil {
			t.Fatalf("ShareTempByToken() error = %v", err)
		}

		// v1 is still a plain temp row and expires as usual.
		f.clock.Advance(hangar.TempBuildTTL + time.Minute)
		if _, err := f.svc.GetTempByToken(v1.Token); !errors.Is(err, hangar.ErrNotFound) {
			t.Errorf("v1 token error = %v, want expired", err)
		}
		view, err := f.svc.GetTempByToken(v2.Token)
		if err != nil {
			t.Fatalf("v2 token error = %v, want live", err)
		}
		if view.Build.Title != "v2" {
			t.Errorf("shared title = %q", view.Build.Title)
		}
	})
}

func TestService_SweepExpiredTemp(t *testing.T) {
	t.Run("reclaims only expired temp rows", func(t *testing.T) {
		f := newFixture(t)

		expired1, _ := f.svc.CreateTemp(hangar.BuildContent{Title: "old-1"}, nil)
		expired2, _ := f.svc.CreateTemp(hangar.BuildContent{Title: "old-2"}, nil)
		sharedB, _ := f.svc.CreateTemp(hangar.BuildContent{Title: "kept"}, nil)
		f.svc.ShareTempByToken(sharedB.Token)

		f.clock.Advance(12 * time.Hour)
		live, _ := f.svc.CreateTemp(hangar.BuildContent{Title: "fresh"}, nil)

		// 13 more hours: the first two are past 24h, the fresh one is not.
		f.clock.Advance(13 * time.Hour)

		n, err := f.svc.SweepExpiredTemp()
		if err != nil {
			t.Fatalf("SweepExpiredTemp() error = %v", err)
		}
		if n != 2 {
			t.Errorf("swept %d rows, want 2", n)
		}

		for _, token := range []string{expired1.Token, expired2.Token} {
			if _, err := f.svc.GetTempByToken(token); !errors.Is(err, hangar.ErrNotFound) {
				t.Errorf("swept token %s still readable", token)
			}
		}
		if _, err := f.svc.GetTempByToken(live.Token); err != nil {
			t.Errorf("live token error = %v, want kept", err)
		}
		if _, err := f.svc.GetTempByToken(sharedB.Token); err != nil {
			t.Errorf("shared token error = %v, want kept", err)
		}
	})

	t.Run("sweep of an empty set reports zero", func(t *testing.T) {
		f := newFixture(t)

		n, err := f.svc.SweepExpiredTemp()
		if err != nil {
			t.Fatalf("SweepExpiredTemp() error = %v", err)
		}
		if n != 0 {
			t.Errorf("swept %d rows, want 0", n)
		}
	})
}
