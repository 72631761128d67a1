package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/transcode"
)

const yandexSampleRateHertz = "48000"

type YandexConfig struct {
	APIKey  string
	TTSURL  string
	STTURL  string
	Voice   string
	Timeout time.Duration
}

// YandexGateway talks to the SpeechKit HTTP endpoints. Recognition input
// goes through the transcoder first because SpeechKit expects raw PCM.
type YandexGateway struct {
	cfg        YandexConfig
	client     *http.Client
	transcoder transcode.Transcoder
}

func NewYandexGateway(cfg YandexConfig, transcoder transcode.Transcoder) speech.Gateway {
	return &YandexGateway{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.Timeout},
		transcoder: transcoder,
	}
}

func (g *YandexGateway) Synthesize(ctx context.Context, text string) ([]byte, error) {
	form := url.Values{
		"text":            {text},
		"voice":           {g.cfg.Voice},
		"emotion":         {"neutral"},
		"format":          {"lpcm"},
		"sampleRateHertz": {yandexSampleRateHertz},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TTSURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Api-Key "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yandex tts request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("yandex tts returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yandex tts read body: %w", err)
	}
	slog.Debug("yandex tts succeeded", "audio_bytes", len(audio))
	return audio, nil
}

func (g *YandexGateway) Recognize(ctx context.Context, audio []byte) speech.Recognition {
	pcm, err := g.transcoder.Transcode(ctx, audio)
	if err != nil {
		slog.Warn("audio transcode failed; recording degraded answer", "error", err)
		return speech.Recognition{Text: speech.TranscodeFailedText, Score: 0.0, Degraded: true}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.STTURL, bytes.NewReader(pcm))
	if err != nil {
		slog.Warn("yandex stt request build failed", "error", err)
		return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
	}
	req.Header.Set("Authorization", "Api-Key "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "audio/x-pcm")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Warn("yandex stt request failed", "error", err)
		return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		slog.Warn("yandex stt returned non-success status", "status", resp.StatusCode, "detail", strings.TrimSpace(string(detail)))
		return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		slog.Warn("yandex stt returned malformed payload", "error", err)
		return speech.Recognition{Text: speech.RecognitionFailedText, Score: 0.0, Degraded: true}
	}

	score := speech.ConfidenceScore(body.Result)
	slog.Info("yandex stt succeeded", "transcript_length", len(body.Result), "score", score)
	return speech.Recognition{Text: body.Result, Score: score}
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
