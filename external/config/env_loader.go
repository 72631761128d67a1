package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	internalconfig "github.com/sobeslab/intervox/internal/config"
)

type envConfig struct {
	Env                        string        `env:"ENV" envDefault:"production"`
	ListenAddr                 string        `env:"LISTEN_ADDR" envDefault:":8765"`
	SpeechProvider             string        `env:"SPEECH_PROVIDER"`
	SpeechVoice                string        `env:"SPEECH_VOICE" envDefault:"alena"`
	SpeechTimeout              time.Duration `env:"SPEECH_TIMEOUT" envDefault:"30s"`
	YandexAPIKey               string        `env:"YANDEX_API_KEY"`
	YandexTTSURL               string        `env:"YANDEX_TTS_URL" envDefault:"https://tts.api.cloud.yandex.net/speech/v1/tts:synthesize"`
	YandexSTTURL               string        `env:"YANDEX_STT_URL" envDefault:"https://stt.api.cloud.yandex.net/speech/v1/stt:recognize"`
	GoogleCloudProjectID       string        `env:"GOOGLE_CLOUD_PROJECT_ID"`
	GoogleCloudCredentialsJSON string        `env:"GOOGLE_CLOUD_CREDENTIALS_JSON"`
	GoogleCloudSpeechLocation  string        `env:"GOOGLE_CLOUD_SPEECH_LOCATION" envDefault:"global"`
	GoogleCloudSpeechModel     string        `env:"GOOGLE_CLOUD_SPEECH_MODEL" envDefault:"chirp_3"`
	GoogleCloudSpeechLanguage  string        `env:"GOOGLE_CLOUD_SPEECH_LANGUAGE" envDefault:"ru-RU"`
	FFmpegPath                 string        `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	QuestionsPath              string        `env:"QUESTIONS_PATH"`
	DatabaseURL                string        `env:"DATABASE_URL"`
	ResultsWebhookURL          string        `env:"RESULTS_WEBHOOK_URL"`
	HealthInterval             time.Duration `env:"HEALTH_INTERVAL" envDefault:"60s"`
}

func Load() (*internalconfig.Config, error) {
	// A local .env is a development convenience only.
	_ = godotenv.Load()

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                        raw.Env,
		ListenAddr:                 raw.ListenAddr,
		SpeechProvider:             raw.SpeechProvider,
		SpeechVoice:                raw.SpeechVoice,
		SpeechTimeout:              raw.SpeechTimeout,
		YandexAPIKey:               raw.YandexAPIKey,
		YandexTTSURL:               raw.YandexTTSURL,
		YandexSTTURL:               raw.YandexSTTURL,
		GoogleCloudProjectID:       raw.GoogleCloudProjectID,
		GoogleCloudCredentialsJSON: raw.GoogleCloudCredentialsJSON,
		GoogleCloudSpeechLocation:  raw.GoogleCloudSpeechLocation,
		GoogleCloudSpeechModel:     raw.GoogleCloudSpeechModel,
		GoogleCloudSpeechLanguage:  raw.GoogleCloudSpeechLanguage,
		FFmpegPath:                 raw.FFmpegPath,
		QuestionsPath:              raw.QuestionsPath,
		DatabaseURL:                raw.DatabaseURL,
		ResultsWebhookURL:          raw.ResultsWebhookURL,
		HealthInterval:             raw.HealthInterval,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
