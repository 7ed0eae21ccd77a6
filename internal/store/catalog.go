package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// lessonRepo implements LessonRepo over raw SQL.
type lessonRepo struct {
	db *sql.DB
}

func (r *lessonRepo) Import(ctx context.Context, rec *LessonRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ImportedAt.IsZero() {
		rec.ImportedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lessons (id, path, title, subject, format, document, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			subject = excluded.subject,
			format = excluded.format,
			document = excluded.document,
			imported_at = excluded.imported_at`,
		rec.ID, rec.Path, rec.Title, rec.Subject, rec.Format, rec.Document, rec.ImportedAt)
	if err != nil {
		return fmt.Errorf("import lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) Get(ctx context.Context, path string) (*LessonRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, path, title, subject, format, document, imported_at
		FROM lessons WHERE path = ?`, path)

	var rec LessonRecord
	err := row.Scan(&rec.ID, &rec.Path, &rec.Title, &rec.Subject, &rec.Format, &rec.Document, &rec.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return &rec, nil
}

func (r *lessonRepo) List(ctx context.Context) ([]LessonRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, path, title, subject, format, document, imported_at
		FROM lessons ORDER BY title, path`)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var out []LessonRecord
	for rows.Next() {
		var rec LessonRecord
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.Title, &rec.Subject, &rec.Format, &rec.Document, &rec.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// reportRepo implements ReportRepo over raw SQL.
type reportRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *reportRepo) Append(ctx context.Context, data ReportData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (id, sequence, lesson_path, lesson_title, clean,
			violation_count, consistency_errors, body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seqNum, data.LessonPath, data.LessonTitle, data.Clean,
		data.ViolationCount, data.ConsistencyErrors, data.Body, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append report: %w", err)
	}
	return nil
}

func (r *reportRepo) Recent(ctx context.Context, limit int) ([]ReportRecord, error) {
	q := `
		SELECT id, sequence, lesson_path, lesson_title, clean,
			violation_count, consistency_errors, body, created_at
		FROM reports ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}
	defer rows.Close()

	var out []ReportRecord
	for rows.Next() {
		var rec ReportRecord
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.LessonPath, &rec.LessonTitle, &rec.Clean,
			&rec.ViolationCount, &rec.ConsistencyErrors, &rec.Body, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// llmEventRepo implements LLMEventRepo over raw SQL.
type llmEventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *llmEventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO llm_events (id, sequence, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message,
			request_body, response_body, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seqNum, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

func (r *llmEventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := `
		SELECT id, sequence, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message,
			request_body, response_body, created_at
		FROM llm_events ORDER BY sequence DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("recent LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		var rec LLMEventRecord
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success, &rec.ErrorMessage,
			&rec.RequestBody, &rec.ResponseBody, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
