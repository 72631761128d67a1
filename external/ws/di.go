package ws

import (
	"github.com/samber/do/v2"
	"github.com/sobeslab/intervox/internal/config"
	"github.com/sobeslab/intervox/internal/interview"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		handler := do.MustInvoke[*interview.Handler](i)
		return NewServer(cfg.ListenAddr, handler), nil
	})
}
