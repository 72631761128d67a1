package repository

import (
	"context"
	"time"
)

type SaveResultInput struct {
	SessionID       string
	CandidateID     string
	VacancyID       string
	Score           float64
	TotalScore      float64
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds float64
	Answers         []AnswerInput
}

type AnswerInput struct {
	AnswerIndex int
	Question    string
	Answer      string
	Score       float64
	AnsweredAt  time.Time
}

// Repository archives completed interview results. In-flight sessions
// live only in memory; the archive is written once, after completion.
type Repository interface {
	SaveResult(ctx context.Context, input SaveResultInput) error
}
