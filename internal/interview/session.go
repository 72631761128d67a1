package interview

import (
	"sync"
	"time"
)

// AnswerRecord is immutable once appended to a session.
type AnswerRecord struct {
	Question  string
	Answer    string
	Score     float64
	Timestamp time.Time
}

// Session is the mutable record of one candidate's interview. It is owned
// by the Store and mutated only through Engine operations, which serialize
// on mu so that two answers for the same session can never interleave.
type Session struct {
	ID          string
	CandidateID string
	VacancyID   string

	mu              sync.Mutex
	currentQuestion int
	answers         []AnswerRecord
	score           float64
	startedAt       time.Time
	endedAt         *time.Time
	duration        time.Duration
}

// Snapshot is the immutable view of a finalized session.
type Snapshot struct {
	SessionID   string
	CandidateID string
	VacancyID   string
	Score       float64
	Answers     []AnswerRecord
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    time.Duration
}
