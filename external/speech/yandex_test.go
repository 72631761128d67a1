package speech

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/transcode"
)

type mockTranscoder struct {
	pcm   []byte
	err   error
	calls int
}

func (m *mockTranscoder) Transcode(_ context.Context, _ []byte) ([]byte, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.pcm, nil
}

func newTestYandexGateway(ttsURL, sttURL string, tr transcode.Transcoder) speech.Gateway {
	return NewYandexGateway(YandexConfig{
		APIKey:  "test-key",
		TTSURL:  ttsURL,
		STTURL:  sttURL,
		Voice:   "alena",
		Timeout: 5 * time.Second,
	}, tr)
}

func TestSynthesize_Success(t *testing.T) {
	var gotAuth, gotVoice string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotVoice = r.PostFormValue("voice")
		_, _ = w.Write([]byte("pcm-audio"))
	}))
	defer server.Close()

	g := newTestYandexGateway(server.URL, server.URL, &mockTranscoder{})
	audio, err := g.Synthesize(context.Background(), "Расскажите о себе")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if string(audio) != "pcm-audio" {
		t.Fatalf("unexpected audio: %q", audio)
	}
	if gotAuth != "Api-Key test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotVoice != "alena" {
		t.Fatalf("unexpected voice: %q", gotVoice)
	}
}

func TestSynthesize_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad api key"))
	}))
	defer server.Close()

	g := newTestYandexGateway(server.URL, server.URL, &mockTranscoder{})
	if _, err := g.Synthesize(context.Background(), "вопрос"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestSynthesize_Unreachable(t *testing.T) {
	g := newTestYandexGateway("http://127.0.0.1:1/tts", "http://127.0.0.1:1/stt", &mockTranscoder{})
	if _, err := g.Synthesize(context.Background(), "вопрос"); err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}

func TestRecognize_TranscodeFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called when transcoding fails")
	}))
	defer server.Close()

	tr := &mockTranscoder{err: &transcode.Error{Output: "broken container", Err: errors.New("exit status 1")}}
	g := newTestYandexGateway(server.URL, server.URL, tr)

	rec := g.Recognize(context.Background(), []byte("garbage"))
	if rec.Score != 0.0 {
		t.Fatalf("expected score exactly 0.0, got %f", rec.Score)
	}
	if rec.Text != speech.TranscodeFailedText {
		t.Fatalf("expected transcode placeholder, got %q", rec.Text)
	}
	if !rec.Degraded {
		t.Fatal("expected degraded result")
	}
}

func TestRecognize_Success(t *testing.T) {
	transcript := strings.Repeat("а", 50)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "audio/x-pcm" {
			t.Fatalf("unexpected content type: %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "pcm-data" {
			t.Fatalf("expected transcoded pcm body, got %q", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"` + transcript + `"}`))
	}))
	defer server.Close()

	tr := &mockTranscoder{pcm: []byte("pcm-data")}
	g := newTestYandexGateway(server.URL, server.URL, tr)

	rec := g.Recognize(context.Background(), []byte("compressed"))
	if rec.Degraded {
		t.Fatal("expected non-degraded result")
	}
	if rec.Text != transcript {
		t.Fatalf("unexpected transcript: %q", rec.Text)
	}
	// 50 runes / 100 = 0.5 by the length heuristic.
	if math.Abs(rec.Score-0.5) > 1e-9 {
		t.Fatalf("expected score 0.5, got %f", rec.Score)
	}
	if tr.calls != 1 {
		t.Fatalf("expected exactly one transcode call, got %d", tr.calls)
	}
}

func TestRecognize_ScoreCappedAtOne(t *testing.T) {
	transcript := strings.Repeat("б", 250)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"` + transcript + `"}`))
	}))
	defer server.Close()

	g := newTestYandexGateway(server.URL, server.URL, &mockTranscoder{pcm: []byte("pcm")})
	rec := g.Recognize(context.Background(), []byte("compressed"))
	if rec.Score != 1.0 {
		t.Fatalf("expected score capped at 1.0, got %f", rec.Score)
	}
}

func TestRecognize_ProviderFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := newTestYandexGateway(server.URL, server.URL, &mockTranscoder{pcm: []byte("pcm")})
	rec := g.Recognize(context.Background(), []byte("compressed"))
	if rec.Score != 0.0 || rec.Text != speech.RecognitionFailedText || !rec.Degraded {
		t.Fatalf("expected degraded recognition, got %+v", rec)
	}
}

func TestDisabledGateway(t *testing.T) {
	g := NewDisabledGateway()
	if _, err := g.Synthesize(context.Background(), "вопрос"); err == nil {
		t.Fatal("expected error from disabled synthesizer")
	}
	rec := g.Recognize(context.Background(), []byte("audio"))
	if !rec.Degraded || rec.Score != 0.0 {
		t.Fatalf("expected degraded recognition, got %+v", rec)
	}
}
