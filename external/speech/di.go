package speech

import (
	"github.com/samber/do/v2"
	"github.com/sobeslab/intervox/internal/config"
	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/transcode"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (speech.Gateway, error) {
		c := do.MustInvoke[*config.Config](i)
		t := do.MustInvoke[transcode.Transcoder](i)
		switch c.ResolveSpeechProvider() {
		case config.SpeechProviderYandex:
			return NewYandexGateway(YandexConfig{
				APIKey:  c.YandexAPIKey,
				TTSURL:  c.YandexTTSURL,
				STTURL:  c.YandexSTTURL,
				Voice:   c.SpeechVoice,
				Timeout: c.SpeechTimeout,
			}, t), nil
		case config.SpeechProviderGoogle:
			return NewGoogleGateway(GoogleConfig{
				ProjectID:       c.GoogleCloudProjectID,
				CredentialsJSON: c.GoogleCloudCredentialsJSON,
				Location:        c.GoogleCloudSpeechLocation,
				Model:           c.GoogleCloudSpeechModel,
				Language:        c.GoogleCloudSpeechLanguage,
				Timeout:         c.SpeechTimeout,
			}, t), nil
		default:
			return NewDisabledGateway(), nil
		}
	})
}
