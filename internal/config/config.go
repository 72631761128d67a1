package config

import (
	"fmt"
	"time"
)

const (
	SpeechProviderYandex   = "yandex"
	SpeechProviderGoogle   = "google"
	SpeechProviderDisabled = "disabled"
)

type Config struct {
	Env                        string
	ListenAddr                 string
	SpeechProvider             string
	SpeechVoice                string
	SpeechTimeout              time.Duration
	YandexAPIKey               string
	YandexTTSURL               string
	YandexSTTURL               string
	GoogleCloudProjectID       string
	GoogleCloudCredentialsJSON string
	GoogleCloudSpeechLocation  string
	GoogleCloudSpeechModel     string
	GoogleCloudSpeechLanguage  string
	FFmpegPath                 string
	QuestionsPath              string
	DatabaseURL                string
	ResultsWebhookURL          string
	HealthInterval             time.Duration
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	switch c.SpeechProvider {
	case "", SpeechProviderDisabled:
	case SpeechProviderYandex:
		if c.YandexAPIKey == "" {
			return fmt.Errorf("YANDEX_API_KEY is required when SPEECH_PROVIDER=yandex")
		}
	case SpeechProviderGoogle:
		if c.GoogleCloudProjectID == "" || c.GoogleCloudCredentialsJSON == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT_ID and GOOGLE_CLOUD_CREDENTIALS_JSON are required when SPEECH_PROVIDER=google")
		}
	default:
		return fmt.Errorf("SPEECH_PROVIDER must be one of yandex, google, disabled, got %q", c.SpeechProvider)
	}
	if c.SpeechTimeout <= 0 {
		return fmt.Errorf("SPEECH_TIMEOUT must be positive, got %s", c.SpeechTimeout)
	}
	if c.HealthInterval <= 0 {
		return fmt.Errorf("HEALTH_INTERVAL must be positive, got %s", c.HealthInterval)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "LISTEN_ADDR", value: c.ListenAddr},
		{name: "SPEECH_VOICE", value: c.SpeechVoice},
		{name: "YANDEX_TTS_URL", value: c.YandexTTSURL},
		{name: "YANDEX_STT_URL", value: c.YandexSTTURL},
		{name: "FFMPEG_PATH", value: c.FFmpegPath},
	}
}

// ResolveSpeechProvider picks the effective provider. With no explicit
// SPEECH_PROVIDER the choice follows whichever credential is present;
// with none, speech runs disabled and questions are delivered as text.
func (c *Config) ResolveSpeechProvider() string {
	if c.SpeechProvider != "" {
		return c.SpeechProvider
	}
	if c.YandexAPIKey != "" {
		return SpeechProviderYandex
	}
	if c.GoogleCloudProjectID != "" && c.GoogleCloudCredentialsJSON != "" {
		return SpeechProviderGoogle
	}
	return SpeechProviderDisabled
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
