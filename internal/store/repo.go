package store

import (
	"context"
	"time"
)

// LessonRecord is one catalog entry for an imported lesson document.
type LessonRecord struct {
	ID         string
	Path       string
	Title      string
	Subject    string
	Format     string
	Document   []byte // raw YAML as imported
	ImportedAt time.Time
}

// LessonRepo manages the lesson catalog.
type LessonRepo interface {
	// Import stores a lesson document. Re-importing the same path
	// replaces the previous entry.
	Import(ctx context.Context, rec *LessonRecord) error

	// Get returns the catalog entry for a path, or nil if absent.
	Get(ctx context.Context, path string) (*LessonRecord, error)

	// List returns all catalog entries ordered by title.
	List(ctx context.Context) ([]LessonRecord, error)
}

// ReportData captures the outcome of one lint run.
type ReportData struct {
	LessonPath        string
	LessonTitle       string
	Clean             bool
	ViolationCount    int
	ConsistencyErrors int
	Body              string // rendered JSON report
}

// ReportRecord is a stored lint report.
type ReportRecord struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	ReportData
}

// ReportRepo provides append and query access to lint reports.
type ReportRepo interface {
	// Append records a lint run.
	Append(ctx context.Context, data ReportData) error

	// Recent returns the newest reports, most recent first.
	// limit <= 0 means no limit.
	Recent(ctx context.Context, limit int) ([]ReportRecord, error)
}

// LLMEventData captures one draft assistant request.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored draft assistant request event.
type LLMEventRecord struct {
	ID        string
	Sequence  int64
	CreatedAt time.Time
	LLMEventData
}

// LLMEventRepo provides append and query access to draft request events.
type LLMEventRepo interface {
	// AppendLLMEvent records a draft assistant API call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// RecentLLMEvents returns the newest events, most recent first.
	// limit <= 0 means no limit.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)
}
