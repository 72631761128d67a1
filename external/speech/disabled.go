package speech

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sobeslab/intervox/internal/speech"
)

var errSpeechDisabled = errors.New("speech services are disabled")

// DisabledGateway stands in when no speech credential is configured.
// Every synthesis falls back to text-only delivery and every recognition
// degrades to a zero-score placeholder. The condition is reported once at
// startup rather than per call.
type DisabledGateway struct{}

func NewDisabledGateway() speech.Gateway {
	slog.Warn("no speech credential configured; synthesis and recognition are disabled")
	return &DisabledGateway{}
}

func (g *DisabledGateway) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return nil, errSpeechDisabled
}

func (g *DisabledGateway) Recognize(_ context.Context, _ []byte) speech.Recognition {
	return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
}
