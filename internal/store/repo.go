package store

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned by ReplaceKnowledgeGraph when the
// supplied version no longer matches the stored record. The caller
// re-reads and retries; this is what prevents two concurrent feedback
// submissions from silently dropping each other's update.
var ErrVersionConflict = errors.New("knowledge graph version conflict")

// LearnerRecord is one learner's persisted state.
type LearnerRecord struct {
	LearnerID string
	// KnowledgeGraph is the raw persisted map: topic masteries plus the
	// level/updated_at metadata keys. Absent learners get an empty map
	// and Version 0, never an error.
	KnowledgeGraph map[string]any
	Version        int64
	History        []HistoryEntry
}

// HistoryEntry is one completed learning activity.
type HistoryEntry struct {
	ID          int
	LearnerID   string
	Topic       string
	Kind        string // lesson, exercise, assessment
	TimeSpent   int    // minutes
	Correct     bool
	Payload     map[string]any
	CompletedAt time.Time
}

// UserStore is the persistence contract the engine consumes.
type UserStore interface {
	// Get loads a learner record with history ordered by completed_at
	// descending. An absent learner yields empty defaults.
	Get(ctx context.Context, learnerID string) (*LearnerRecord, error)

	// ReplaceKnowledgeGraph replaces the whole graph iff the stored
	// version still equals version; on success the stored version is
	// incremented. Returns ErrVersionConflict on mismatch. A learner
	// absent at version 0 is created.
	ReplaceKnowledgeGraph(ctx context.Context, learnerID string, graph map[string]any, version int64) error

	// AppendHistory appends one activity to the learner's history.
	AppendHistory(ctx context.Context, learnerID string, entry HistoryEntry) error

	// ListLearnerIDs returns every known learner ID, for batch jobs.
	// Batch processing loads each record independently so a restart
	// resumes from the next unprocessed learner.
	ListLearnerIDs(ctx context.Context) ([]string, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// FeedbackEventData captures one applied feedback observation.
type FeedbackEventData struct {
	LearnerID     string
	Topic         string
	Kind          string // exercise or session
	Score         float64
	MasterySample float64
	MasteryAfter  float64
	SessionID     string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
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

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to audit events.
type EventRepo interface {
	// AppendFeedback records an applied feedback observation.
	AppendFeedback(ctx context.Context, data FeedbackEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
}
