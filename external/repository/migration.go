package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		session_id TEXT NOT NULL,
		candidate_id TEXT NOT NULL,
		vacancy_id TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		total_score DOUBLE PRECISION NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ NOT NULL,
		duration_seconds DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_candidate ON interviews (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_vacancy ON interviews (vacancy_id)`,
	`CREATE TABLE IF NOT EXISTS interview_answers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		interview_id UUID NOT NULL REFERENCES interviews(id) ON DELETE CASCADE,
		answer_index INTEGER NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		answered_at TIMESTAMPTZ NOT NULL,
		UNIQUE(interview_id, answer_index)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interview_answers_interview ON interview_answers (interview_id, answer_index)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
