package history_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wordcloud/internal/history"
	"wordcloud/internal/testsupport"
)

func sampleRun(started time.Time) history.Run {
	return history.Run{
		ID:            uuid.NewString(),
		StartedAt:     started,
		SourcePath:    "/texts/speech.txt",
		SourceBytes:   2048,
		StopWordsPath: "/texts/stop.txt",
		Mode:          "lines",
		TopN:          50,
		Returned:      52,
		DistinctWords: 700,
		TotalTokens:   3100,
		ElapsedMS:     12,
		Outcome:       "ok",
	}
}

func TestRecordAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	started := time.Date(2026, 10, 17, 9, 30, 0, 123000000, time.UTC)
	run := sampleRun(started)
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected run to be found")
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("started_at mismatch: %v vs %v", got.StartedAt, started)
	}
	if got.StopWordsPath != run.StopWordsPath || got.OutputPath != "" || got.ErrorMessage != "" {
		t.Fatalf("unexpected nullable fields: %#v", got)
	}
	if got.Returned != 52 || got.TotalTokens != 3100 || !got.Succeeded() {
		t.Fatalf("unexpected run: %#v", got)
	}

	byPrefix, err := store.Get(ctx, run.ID[:8])
	if err != nil {
		t.Fatalf("Get by prefix failed: %v", err)
	}
	if byPrefix == nil || byPrefix.ID != run.ID {
		t.Fatalf("expected prefix lookup to find %s, got %#v", run.ID, byPrefix)
	}

	missing, err := store.Get(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("Get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown id, got %#v", missing)
	}
}

func TestRecordRequiresID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	if err := store.Record(context.Background(), history.Run{}); err == nil {
		t.Fatal("expected error for run without id")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 4; i++ {
		run := sampleRun(base.Add(time.Duration(i) * 500 * time.Millisecond))
		if i == 2 {
			run.Outcome = "io"
			run.ErrorMessage = "io failure: tokenize: open source"
		}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record %d failed: %v", i, err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	want := []string{ids[3], ids[2], ids[1]}
	for i, run := range runs {
		if run.ID != want[i] {
			t.Fatalf("position %d: got %s want %s", i, run.ID, want[i])
		}
	}
	if runs[1].Succeeded() || runs[1].ErrorMessage == "" {
		t.Fatalf("expected failed run details, got %#v", runs[1])
	}

	all, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected all 4 runs, got %d", len(all))
	}
}

func TestClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.Record(ctx, sampleRun(time.Now())); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty history, got %d runs", len(runs))
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path := cfg.HistoryPath()
	ctx := context.Background()

	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	run := sampleRun(time.Now())
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if store.Path() != path {
		t.Fatalf("unexpected path %q", store.Path())
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenHistory(t, cfg)
	got, err := reopened.Get(ctx, run.ID)
	if err != nil || got == nil {
		t.Fatalf("expected run after reopen, got %#v (%v)", got, err)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path := cfg.HistoryPath()

	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	_, err = history.Open(path)
	if !errors.Is(err, history.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := history.Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
