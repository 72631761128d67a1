package speech

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/auth/credentials"
	speechv2 "cloud.google.com/go/speech/apiv2"
	speechpb "cloud.google.com/go/speech/apiv2/speechpb"
	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/transcode"
	"google.golang.org/api/option"
)

const (
	speechAPIEndpointPort = 443
	audioSampleRateHertz  = 48000
	audioChannelCount     = 1
)

type GoogleConfig struct {
	ProjectID       string
	CredentialsJSON string
	Location        string
	Model           string
	Language        string
	Timeout         time.Duration
}

// GoogleGateway recognizes answers through Cloud Speech v2. The API has
// no synthesizer, so questions served through this provider always fall
// back to text-only delivery.
type GoogleGateway struct {
	cfg        GoogleConfig
	transcoder transcode.Transcoder
}

func NewGoogleGateway(cfg GoogleConfig, transcoder transcode.Transcoder) speech.Gateway {
	cfg.Location = strings.TrimSpace(cfg.Location)
	cfg.Model = strings.TrimSpace(cfg.Model)
	slog.Info("google speech provider selected; questions will be delivered as text only", "location", cfg.Location, "model", cfg.Model)
	return &GoogleGateway{cfg: cfg, transcoder: transcoder}
}

func (g *GoogleGateway) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return nil, fmt.Errorf("google speech provider does not support synthesis")
}

func (g *GoogleGateway) Recognize(ctx context.Context, audio []byte) speech.Recognition {
	pcm, err := g.transcoder.Transcode(ctx, audio)
	if err != nil {
		slog.Warn("audio transcode failed; recording degraded answer", "error", err)
		return speech.Recognition{Text: speech.TranscodeFailedText, Score: 0.0, Degraded: true}
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	text, confidence, err := g.recognizePCM(ctx, pcm)
	if err != nil {
		slog.Warn("google stt request failed", "error", err)
		return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
	}

	score := float64(confidence)
	if score <= 0 || score > 1 {
		score = speech.ConfidenceScore(text)
	}
	slog.Info("google stt succeeded", "transcript_length", len(text), "score", score)
	return speech.Recognition{Text: text, Score: score}
}

func (g *GoogleGateway) recognizePCM(ctx context.Context, pcm []byte) (string, float32, error) {
	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(g.cfg.CredentialsJSON),
		Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
	})
	if err != nil {
		return "", 0, fmt.Errorf("detect credentials: %w", err)
	}

	opts := []option.ClientOption{
		option.WithAuthCredentials(creds),
	}
	if g.cfg.Location != "global" {
		opts = append(opts, option.WithEndpoint(fmt.Sprintf("%s-speech.googleapis.com:%d", g.cfg.Location, speechAPIEndpointPort)))
	}

	client, err := speechv2.NewClient(ctx, opts...)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = client.Close()
	}()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Recognizer: fmt.Sprintf("projects/%s/locations/%s/recognizers/_", g.cfg.ProjectID, g.cfg.Location),
		Config: &speechpb.RecognitionConfig{
			Model:         g.cfg.Model,
			LanguageCodes: []string{g.cfg.Language},
			DecodingConfig: &speechpb.RecognitionConfig_ExplicitDecodingConfig{
				ExplicitDecodingConfig: &speechpb.ExplicitDecodingConfig{
					Encoding:          speechpb.ExplicitDecodingConfig_LINEAR16,
					SampleRateHertz:   audioSampleRateHertz,
					AudioChannelCount: audioChannelCount,
				},
			},
			Features: &speechpb.RecognitionFeatures{},
		},
		AudioSource: &speechpb.RecognizeRequest_Content{Content: pcm},
	})
	if err != nil {
		return "", 0, err
	}

	var parts []string
	var confidence float32
	for _, result := range resp.GetResults() {
		if len(result.GetAlternatives()) == 0 {
			continue
		}
		best := result.GetAlternatives()[0]
		parts = append(parts, best.GetTranscript())
		if best.GetConfidence() > confidence {
			confidence = best.GetConfidence()
		}
	}
	return strings.Join(parts, " "), confidence, nil
}
