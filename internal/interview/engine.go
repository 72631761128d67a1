package interview

import (
	"errors"
	"log/slog"
	"time"
)

var ErrAlreadyCompleted = errors.New("interview already completed")

// Question is a pending question addressed to the candidate.
type Question struct {
	Text   string
	Number int // 1-based
	Total  int
}

// Engine drives the per-session interview state machine over sessions
// held in the Store. A session is completed exactly when NextQuestion
// runs past the end of the question set.
type Engine struct {
	store     *Store
	questions *QuestionSet
}

func NewEngine(store *Store, questions *QuestionSet) *Engine {
	return &Engine{store: store, questions: questions}
}

func (e *Engine) Start(candidateID, vacancyID string) *Session {
	sess := e.store.Create(candidateID, vacancyID)
	slog.Info("interview session created", "session_id", sess.ID, "candidate_id", candidateID, "vacancy_id", vacancyID)
	return sess
}

// NextQuestion returns the question at the session's current index, or
// nil when every question has been answered. It never mutates the session.
func (e *Engine) NextQuestion(sessionID string) (*Question, error) {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	text, ok := e.questions.At(sess.currentQuestion)
	if !ok {
		return nil, nil
	}
	return &Question{
		Text:   text,
		Number: sess.currentQuestion + 1,
		Total:  e.questions.Len(),
	}, nil
}

// RecordAnswer appends the answer against the current question, adds the
// score to the running total and advances the question index by one. The
// score is taken as supplied; bounding it to [0,1] is the speech gateway's
// job.
func (e *Engine) RecordAnswer(sessionID, answer string, score float64) error {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	question, ok := e.questions.At(sess.currentQuestion)
	if !ok {
		return ErrAlreadyCompleted
	}
	sess.answers = append(sess.answers, AnswerRecord{
		Question:  question,
		Answer:    answer,
		Score:     score,
		Timestamp: time.Now(),
	})
	sess.score += score
	sess.currentQuestion++
	slog.Info("answer recorded", "session_id", sessionID, "question_number", sess.currentQuestion, "score", score, "answer_length", len(answer))
	return nil
}

// Finalize stamps the end time and duration once and returns a snapshot.
// Repeated calls return the snapshot computed on the first call.
func (e *Engine) Finalize(sessionID string) (Snapshot, error) {
	sess, err := e.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.endedAt == nil {
		now := time.Now()
		sess.endedAt = &now
		sess.duration = now.Sub(sess.startedAt)
		slog.Info("interview completed", "session_id", sessionID, "score", sess.score, "duration_seconds", sess.duration.Seconds())
	}
	answers := make([]AnswerRecord, len(sess.answers))
	copy(answers, sess.answers)
	return Snapshot{
		SessionID:   sess.ID,
		CandidateID: sess.CandidateID,
		VacancyID:   sess.VacancyID,
		Score:       sess.score,
		Answers:     answers,
		StartedAt:   sess.startedAt,
		EndedAt:     *sess.endedAt,
		Duration:    sess.duration,
	}, nil
}
