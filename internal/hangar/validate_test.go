package hangar_test

import (
	"testing"

	"hangar/internal/hangar"
	"hangar/internal/model"
)

// gateErrors runs the publish gate on a fresh draft via Publish and
// returns the validation errors, failing the test on a hard error.
func gateErrors(t *testing.T, f *fixture, content hangar.BuildContent, parts []*model.BuildPart) []hangar.ValidationError {
	t.Helper()
	b, err := f.svc.CreateDraft("alice", content, parts)
	if err != nil {
		t.Fatalf("CreateDraft() error = %v", err)
	}
	res, err := f.svc.Publish(b.ID)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if res == nil {
		return nil
	}
	return res.Errors
}

func hasError(errs []hangar.ValidationError, category, code string) bool {
	for _, e := range errs {
		if e.Category == category && e.Code == code {
			return true
		}
	}
	return false
}

func TestPublishGate(t *testing.T) {
	t.Run("a complete build passes", func(t *testing.T) {
		f := newFixture(t)
		if errs := gateErrors(t, f, validContent(), validParts()); len(errs) != 0 {
			t.Errorf("gate errors = %+v, want none", errs)
		}
	})

	t.Run("reports missing content fields", func(t *testing.T) {
		f := newFixture(t)
		content := hangar.BuildContent{Title: "  "}
		errs := gateErrors(t, f, content, validParts())

		for _, category := range []string{"title", "description", "image"} {
			if !hasError(errs, category, hangar.CodeMissingRequired) {
				t.Errorf("missing %s/%s in %+v", category, hangar.CodeMissingRequired, errs)
			}
		}
	})

	t.Run("reports every absent required gear type", func(t *testing.T) {
		f := newFixture(t)
		parts := []*model.BuildPart{{GearType: "frame", CatalogItemID: "frame-1"}}
		errs := gateErrors(t, f, validContent(), parts)

		for _, gearType := range []string{"motor", "flight_controller", "propeller"} {
			if !hasError(errs, gearType, hangar.CodeMissingRequired) {
				t.Errorf("missing %s/%s in %+v", gearType, hangar.CodeMissingRequired, errs)
			}
		}
		if hasError(errs, "frame", hangar.CodeMissingRequired) {
			t.Errorf("frame reported missing despite being present: %+v", errs)
		}
	})

	t.Run("reports unknown catalog items", func(t *testing.T) {
		f := newFixture(t)
		parts := validParts()
		parts[1].CatalogItemID = "no-such-motor"
		errs := gateErrors(t, f, validContent(), parts)

		if !hasError(errs, "motor", hangar.CodeUnknownItem) {
			t.Errorf("missing motor/%s in %+v", hangar.CodeUnknownItem, errs)
		}
	})

	t.Run("reports items that are not published", func(t *testing.T) {
		f := newFixture(t)
		parts := append(validParts(),
			&model.BuildPart{GearType: "camera", CatalogItemID: "retired-1"})
		errs := gateErrors(t, f, validContent(), parts)

		if !hasError(errs, "camera", hangar.CodeItemNotPublished) {
			t.Errorf("missing camera/%s in %+v", hangar.CodeItemNotPublished, errs)
		}
	})

	t.Run("collects all problems in one pass", func(t *testing.T) {
		f := newFixture(t)
		parts := []*model.BuildPart{{GearType: "motor", CatalogItemID: "no-such-motor"}}
		errs := gateErrors(t, f, hangar.BuildContent{}, parts)

		// 3 content fields + 3 missing gear types + 1 unknown item.
		if len(errs) != 7 {
			t.Errorf("gate errors = %d (%+v), want 7", len(errs), errs)
		}
	})
}
