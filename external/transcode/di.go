package transcode

import (
	"github.com/samber/do/v2"
	"github.com/sobeslab/intervox/internal/config"
	"github.com/sobeslab/intervox/internal/transcode"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (transcode.Transcoder, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewFFmpegTranscoder(c.FFmpegPath, c.SpeechTimeout), nil
	})
}
