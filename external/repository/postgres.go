package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sobeslab/intervox/internal/repository"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) SaveResult(ctx context.Context, input repository.SaveResultInput) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var interviewID string
		row := tx.QueryRow(ctx,
			`INSERT INTO interviews (session_id, candidate_id, vacancy_id, score, total_score, started_at, ended_at, duration_seconds)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			input.SessionID, input.CandidateID, input.VacancyID, input.Score, input.TotalScore,
			input.StartedAt, input.EndedAt, input.DurationSeconds)
		if err := row.Scan(&interviewID); err != nil {
			return err
		}
		for _, a := range input.Answers {
			if _, err := tx.Exec(ctx,
				`INSERT INTO interview_answers (interview_id, answer_index, question, answer, score, answered_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				interviewID, a.AnswerIndex, a.Question, a.Answer, a.Score, a.AnsweredAt); err != nil {
				return err
			}
		}
		return nil
	})
}
