package interview

const (
	messageTypeStartInterview = "start_interview"
	messageTypeAudioResponse  = "audio_response"
	messageTypeQuestion       = "question"
	messageTypeCompleted      = "interview_completed"
	messageTypeError          = "error"
)

const (
	errorMessageInvalidJSON      = "Некорректный формат сообщения"
	errorMessageUnknownType      = "Неизвестный тип сообщения"
	errorMessageMissingFields    = "В сообщении отсутствуют обязательные поля"
	errorMessageInvalidAudio     = "Некорректные аудиоданные"
	errorMessageSessionNotFound  = "Сессия интервью не найдена"
	errorMessageAnswerProcessing = "Ошибка обработки аудио ответа"
	errorMessageAlreadyCompleted = "Интервью уже завершено"
)

type inboundMessage struct {
	Type        string `json:"type"`
	CandidateID string `json:"candidate_id"`
	VacancyID   string `json:"vacancy_id"`
	SessionID   string `json:"session_id"`
	Audio       string `json:"audio"`
}

type questionMessage struct {
	Type           string  `json:"type"`
	SessionID      string  `json:"session_id"`
	Question       string  `json:"question"`
	QuestionAudio  *string `json:"question_audio"`
	QuestionNumber int     `json:"question_number"`
	TotalQuestions int     `json:"total_questions"`
}

type answerDetail struct {
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

type completedMessage struct {
	Type       string         `json:"type"`
	SessionID  string         `json:"session_id"`
	Score      float64        `json:"score"`
	Answers    []answerDetail `json:"answers"`
	TotalScore float64        `json:"total_score"`
	Duration   float64        `json:"duration"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
