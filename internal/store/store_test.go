package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	var fk, sync string
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	require.NoError(t, s.DB().QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, "1", fk)
	assert.Equal(t, "1", sync) // NORMAL = 1
}

func TestLessonImportAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "lessons/power-rule.yaml")
	require.NoError(t, err)
	assert.Nil(t, rec, "absent path should return nil")

	err = repo.Import(ctx, &LessonRecord{
		Path:     "lessons/power-rule.yaml",
		Title:    "The Power Rule",
		Subject:  "calculus",
		Format:   "v1.0.0",
		Document: []byte("title: The Power Rule\n"),
	})
	require.NoError(t, err)

	rec, err = repo.Get(ctx, "lessons/power-rule.yaml")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "The Power Rule", rec.Title)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.ImportedAt.IsZero())
}

func TestLessonReimportReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, &LessonRecord{
		Path: "l.yaml", Title: "Old Title", Format: "v1.0.0", Document: []byte("a"),
	}))
	require.NoError(t, repo.Import(ctx, &LessonRecord{
		Path: "l.yaml", Title: "New Title", Format: "v1.1.0", Document: []byte("b"),
	}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New Title", all[0].Title)
	assert.Equal(t, []byte("b"), all[0].Document)
}

func TestLessonListOrderedByTitle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Lessons()
	ctx := context.Background()

	for _, title := range []string{"Quotient Rule", "Chain Rule", "Power Rule"} {
		require.NoError(t, repo.Import(ctx, &LessonRecord{
			Path: title + ".yaml", Title: title, Format: "v1.0.0", Document: []byte("x"),
		}))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Chain Rule", all[0].Title)
	assert.Equal(t, "Quotient Rule", all[2].Title)
}

func TestReportAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reports()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, ReportData{
			LessonPath:     "l.yaml",
			LessonTitle:    "The Power Rule",
			Clean:          i == 2,
			ViolationCount: 2 - i,
		}))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Clean, "newest report first")
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence)
}

func TestLLMEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "draft-hints",
		InputTokens:  120,
		OutputTokens: 80,
		Success:      true,
	}))

	events, err := repo.RecentLLMEvents(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "draft-hints", events[0].Purpose)
	assert.Equal(t, 120, events[0].InputTokens)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Reports().Append(ctx, ReportData{LessonPath: "a.yaml"}))
	require.NoError(t, s.LLMEvents().AppendLLMEvent(ctx, LLMEventData{Provider: "mock", Model: "mock", Purpose: "draft-hints"}))
	require.NoError(t, s.Reports().Append(ctx, ReportData{LessonPath: "b.yaml"}))

	reports, err := s.Reports().Recent(ctx, 0)
	require.NoError(t, err)
	events, err := s.LLMEvents().RecentLLMEvents(ctx, 0)
	require.NoError(t, err)

	require.Len(t, reports, 2)
	require.Len(t, events, 1)
	// Interleaved ordering: a.yaml < event < b.yaml.
	assert.Less(t, reports[1].Sequence, events[0].Sequence)
	assert.Less(t, events[0].Sequence, reports[0].Sequence)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "catalog.db")
	t.Setenv("LESSONLINT_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
