package webhook

import (
	"context"
	"time"
)

type ResultAnswer struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

type ResultPayload struct {
	SessionID       string         `json:"session_id"`
	CandidateID     string         `json:"candidate_id"`
	VacancyID       string         `json:"vacancy_id"`
	Score           float64        `json:"score"`
	TotalScore      float64        `json:"total_score"`
	DurationSeconds float64        `json:"duration_seconds"`
	CompletedAt     time.Time      `json:"completed_at"`
	Answers         []ResultAnswer `json:"answers"`
}

// Sender delivers completed interview results to an external consumer.
type Sender interface {
	SendResult(ctx context.Context, payload ResultPayload) error
}
