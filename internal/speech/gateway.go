package speech

import "context"

// Recognition is the outcome of a speech-to-text attempt. A transcode or
// provider failure is absorbed into a degraded result (placeholder text,
// zero score) so the interview keeps progressing; Recognize never errors.
type Recognition struct {
	Text  string
	Score float64
	// Degraded marks a placeholder result produced because transcoding
	// or the provider failed.
	Degraded bool
}

type Gateway interface {
	// Synthesize asks the provider for spoken audio of text. Errors are
	// recoverable: the caller falls back to text-only question delivery.
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Recognize(ctx context.Context, audio []byte) Recognition
}

// Placeholder answers recorded when recognition cannot run.
const (
	RecognitionFailedText = "Ошибка распознавания речи"
	TranscodeFailedText   = "Ошибка конвертации аудио"
)
