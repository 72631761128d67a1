package interview

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sobeslab/intervox/internal/metrics"
	"github.com/sobeslab/intervox/internal/repository"
	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/webhook"
)

// Raw cumulative score is on [0, len(questions)]; clients display 0–100.
const totalScoreScale = 25

const answerTimestampLayout = time.RFC3339

// Conn is the narrow view of a client connection the handler needs.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteJSON(v any) error
}

// Handler drives the interview protocol over one connection. Messages are
// processed strictly in arrival order; a message is only read after the
// previous one's response (or error) has been written.
type Handler struct {
	engine  *Engine
	gateway speech.Gateway
	repo    repository.Repository
	webhook webhook.Sender
	metrics *metrics.Metrics
}

func NewHandler(engine *Engine, gateway speech.Gateway, repo repository.Repository, wh webhook.Sender, m *metrics.Metrics) *Handler {
	return &Handler{
		engine:  engine,
		gateway: gateway,
		repo:    repo,
		webhook: wh,
		metrics: m,
	}
}

// Serve runs the message loop until the connection closes.
func (h *Handler) Serve(ctx context.Context, conn Conn) {
	for {
		raw, err := conn.ReadMessage()
		if err != nil {
			slog.Info("connection closed", "error", err)
			return
		}
		h.handleMessage(ctx, conn, raw)
	}
}

func (h *Handler) handleMessage(ctx context.Context, conn Conn, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		slog.Warn("received undecodable message", "error", err)
		h.sendError(conn, errorMessageInvalidJSON)
		return
	}
	slog.Info("message received", "type", msg.Type)

	switch msg.Type {
	case messageTypeStartInterview:
		h.handleStartInterview(ctx, conn, msg)
	case messageTypeAudioResponse:
		h.handleAudioResponse(ctx, conn, msg)
	default:
		slog.Warn("received message of unknown type", "type", msg.Type)
		h.sendError(conn, errorMessageUnknownType)
	}
}

func (h *Handler) handleStartInterview(ctx context.Context, conn Conn, msg inboundMessage) {
	if msg.CandidateID == "" || msg.VacancyID == "" {
		h.sendError(conn, errorMessageMissingFields)
		return
	}
	sess := h.engine.Start(msg.CandidateID, msg.VacancyID)
	h.metrics.IncrementInterviewsStarted()
	h.sendNextQuestion(ctx, conn, sess.ID)
}

func (h *Handler) handleAudioResponse(ctx context.Context, conn Conn, msg inboundMessage) {
	if msg.SessionID == "" || msg.Audio == "" {
		h.sendError(conn, errorMessageMissingFields)
		return
	}
	// Reject unknown sessions before any speech work; the store stays
	// untouched.
	if _, err := h.engine.store.Get(msg.SessionID); err != nil {
		slog.Warn("audio response for unknown session", "session_id", msg.SessionID)
		h.sendError(conn, errorMessageSessionNotFound)
		return
	}
	audio, err := base64.StdEncoding.DecodeString(msg.Audio)
	if err != nil {
		slog.Warn("audio response carries invalid base64", "session_id", msg.SessionID, "error", err)
		h.sendError(conn, errorMessageInvalidAudio)
		return
	}
	slog.Info("processing audio response", "session_id", msg.SessionID, "audio_bytes", len(audio))

	rec := h.gateway.Recognize(ctx, audio)
	h.metrics.IncrementSpeechCall(!rec.Degraded)

	if err := h.engine.RecordAnswer(msg.SessionID, rec.Text, rec.Score); err != nil {
		slog.Error("failed to record answer", "error", err, "session_id", msg.SessionID)
		switch err {
		case ErrSessionNotFound:
			h.sendError(conn, errorMessageSessionNotFound)
		case ErrAlreadyCompleted:
			h.sendError(conn, errorMessageAlreadyCompleted)
		default:
			h.sendError(conn, errorMessageAnswerProcessing)
		}
		return
	}

	question, err := h.engine.NextQuestion(msg.SessionID)
	if err != nil {
		h.sendError(conn, errorMessageSessionNotFound)
		return
	}
	if question != nil {
		h.sendQuestion(ctx, conn, msg.SessionID, question)
		return
	}
	h.completeInterview(ctx, conn, msg.SessionID)
}

func (h *Handler) sendNextQuestion(ctx context.Context, conn Conn, sessionID string) {
	question, err := h.engine.NextQuestion(sessionID)
	if err != nil {
		h.sendError(conn, errorMessageSessionNotFound)
		return
	}
	if question == nil {
		// An empty question set completes the interview immediately.
		h.completeInterview(ctx, conn, sessionID)
		return
	}
	h.sendQuestion(ctx, conn, sessionID, question)
}

func (h *Handler) sendQuestion(ctx context.Context, conn Conn, sessionID string, question *Question) {
	var audioBase64 *string
	audio, err := h.gateway.Synthesize(ctx, question.Text)
	h.metrics.IncrementSpeechCall(err == nil)
	if err != nil {
		slog.Warn("speech synthesis failed; sending text-only question", "error", err, "session_id", sessionID, "question_number", question.Number)
	} else {
		encoded := base64.StdEncoding.EncodeToString(audio)
		audioBase64 = &encoded
	}

	h.write(conn, questionMessage{
		Type:           messageTypeQuestion,
		SessionID:      sessionID,
		Question:       question.Text,
		QuestionAudio:  audioBase64,
		QuestionNumber: question.Number,
		TotalQuestions: question.Total,
	})
	h.metrics.IncrementQuestionsAsked()
	slog.Info("question sent", "session_id", sessionID, "question_number", question.Number, "with_audio", audioBase64 != nil)
}

func (h *Handler) completeInterview(ctx context.Context, conn Conn, sessionID string) {
	snap, err := h.engine.Finalize(sessionID)
	if err != nil {
		h.sendError(conn, errorMessageSessionNotFound)
		return
	}
	h.metrics.IncrementInterviewsCompleted()

	answers := make([]answerDetail, 0, len(snap.Answers))
	for _, a := range snap.Answers {
		answers = append(answers, answerDetail{
			Question:  a.Question,
			Answer:    a.Answer,
			Score:     a.Score,
			Timestamp: a.Timestamp.Format(answerTimestampLayout),
		})
	}
	h.write(conn, completedMessage{
		Type:       messageTypeCompleted,
		SessionID:  snap.SessionID,
		Score:      snap.Score,
		Answers:    answers,
		TotalScore: snap.Score * totalScoreScale,
		Duration:   snap.Duration.Seconds(),
	})

	h.archiveResult(ctx, snap)
}

// archiveResult persists and forwards the completed interview. Both are
// best-effort: failures are logged and never surfaced to the client.
func (h *Handler) archiveResult(ctx context.Context, snap Snapshot) {
	input := repository.SaveResultInput{
		SessionID:       snap.SessionID,
		CandidateID:     snap.CandidateID,
		VacancyID:       snap.VacancyID,
		Score:           snap.Score,
		TotalScore:      snap.Score * totalScoreScale,
		StartedAt:       snap.StartedAt,
		EndedAt:         snap.EndedAt,
		DurationSeconds: snap.Duration.Seconds(),
	}
	payload := webhook.ResultPayload{
		SessionID:       snap.SessionID,
		CandidateID:     snap.CandidateID,
		VacancyID:       snap.VacancyID,
		Score:           snap.Score,
		TotalScore:      snap.Score * totalScoreScale,
		DurationSeconds: snap.Duration.Seconds(),
		CompletedAt:     snap.EndedAt,
	}
	for i, a := range snap.Answers {
		input.Answers = append(input.Answers, repository.AnswerInput{
			AnswerIndex: i,
			Question:    a.Question,
			Answer:      a.Answer,
			Score:       a.Score,
			AnsweredAt:  a.Timestamp,
		})
		payload.Answers = append(payload.Answers, webhook.ResultAnswer{
			Question: a.Question,
			Answer:   a.Answer,
			Score:    a.Score,
		})
	}
	if err := h.repo.SaveResult(ctx, input); err != nil {
		slog.Error("failed to archive interview result", "error", err, "session_id", snap.SessionID)
	}
	if err := h.webhook.SendResult(ctx, payload); err != nil {
		slog.Error("failed to send result webhook", "error", err, "session_id", snap.SessionID)
	}
}

func (h *Handler) sendError(conn Conn, message string) {
	h.write(conn, errorMessage{Type: messageTypeError, Message: message})
}

// write logs and swallows transport failures; a send to a closed
// connection must never take the handler down.
func (h *Handler) write(conn Conn, v any) {
	if err := conn.WriteJSON(v); err != nil {
		slog.Warn("failed to write to connection", "error", err)
	}
}
