package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHangarHandler(t *testing.T) {
	t.Run("formats records as tab-separated fields", func(t *testing.T) {
		var buf bytes.Buffer
		h := &hangarHandler{w: &buf, opID: "20240115T103000Z-Sweep"}

		r := slog.NewRecord(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), slog.LevelInfo, "expired temp builds swept", 0)
		r.AddAttrs(slog.Int64("count", 3))

		if err := h.Handle(context.Background(), r); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}

		got := buf.String()
		want := "2024-01-15T10:30:00Z\tINFO\t20240115T103000Z-Sweep\texpired temp builds swept\tcount=3\n"
		if got != want {
			t.Errorf("Handle() output = %q, want %q", got, want)
		}
	})

	t.Run("WithAttrs carries pre-set attrs", func(t *testing.T) {
		var buf bytes.Buffer
		var h slog.Handler = &hangarHandler{w: &buf, opID: "op"}
		h = h.WithAttrs([]slog.Attr{slog.String("build", "b-1")})

		r := slog.NewRecord(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), slog.LevelWarn, "msg", 0)
		if err := h.Handle(context.Background(), r); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}

		if !strings.Contains(buf.String(), "\tbuild=b-1") {
			t.Errorf("output missing pre-set attr: %q", buf.String())
		}
		if !strings.Contains(buf.String(), "\tWARN\t") {
			t.Errorf("output missing level: %q", buf.String())
		}
	})
}
