package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:            "development",
		ListenAddr:     ":8765",
		SpeechVoice:    "alena",
		SpeechTimeout:  30 * time.Second,
		YandexAPIKey:   "key",
		YandexTTSURL:   "https://tts.example/synthesize",
		YandexSTTURL:   "https://stt.example/recognize",
		FFmpegPath:     "ffmpeg",
		HealthInterval: time.Minute,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestValidate_UnknownSpeechProvider(t *testing.T) {
	cfg := validConfig()
	cfg.SpeechProvider = "acme"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown speech provider")
	}
}

func TestValidate_YandexWithoutAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.SpeechProvider = SpeechProviderYandex
	cfg.YandexAPIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for yandex provider without api key")
	}
}

func TestValidate_GoogleWithoutCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.SpeechProvider = SpeechProviderGoogle
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for google provider without credentials")
	}
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.SpeechTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive speech timeout")
	}
}

func TestResolveSpeechProvider(t *testing.T) {
	cfg := validConfig()
	if got := cfg.ResolveSpeechProvider(); got != SpeechProviderYandex {
		t.Fatalf("expected yandex provider with api key set, got %q", got)
	}

	cfg.YandexAPIKey = ""
	if got := cfg.ResolveSpeechProvider(); got != SpeechProviderDisabled {
		t.Fatalf("expected disabled provider without credentials, got %q", got)
	}

	cfg.GoogleCloudProjectID = "project-id"
	cfg.GoogleCloudCredentialsJSON = `{"type":"service_account"}`
	if got := cfg.ResolveSpeechProvider(); got != SpeechProviderGoogle {
		t.Fatalf("expected google provider with google credentials, got %q", got)
	}

	cfg.SpeechProvider = SpeechProviderDisabled
	if got := cfg.ResolveSpeechProvider(); got != SpeechProviderDisabled {
		t.Fatalf("expected explicit provider to win, got %q", got)
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}
