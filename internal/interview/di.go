package interview

import (
	"github.com/samber/do/v2"
	"github.com/sobeslab/intervox/internal/config"
	"github.com/sobeslab/intervox/internal/metrics"
	"github.com/sobeslab/intervox/internal/repository"
	"github.com/sobeslab/intervox/internal/speech"
	"github.com/sobeslab/intervox/internal/webhook"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Store, error) {
		return NewStore(), nil
	})
	do.Provide(injector, func(i do.Injector) (*QuestionSet, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return LoadQuestionSet(cfg.QuestionsPath)
	})
	do.Provide(injector, func(i do.Injector) (*metrics.Metrics, error) {
		return metrics.New(), nil
	})
	do.Provide(injector, func(i do.Injector) (*Engine, error) {
		store := do.MustInvoke[*Store](i)
		questions := do.MustInvoke[*QuestionSet](i)
		return NewEngine(store, questions), nil
	})
	do.Provide(injector, func(i do.Injector) (*Handler, error) {
		engine := do.MustInvoke[*Engine](i)
		gateway := do.MustInvoke[speech.Gateway](i)
		repo := do.MustInvoke[repository.Repository](i)
		wh := do.MustInvoke[webhook.Sender](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return NewHandler(engine, gateway, repo, wh, m), nil
	})
	do.Provide(injector, func(i do.Injector) (*HealthMonitor, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store := do.MustInvoke[*Store](i)
		m := do.MustInvoke[*metrics.Metrics](i)
		return NewHealthMonitor(store, m, cfg.HealthInterval), nil
	})
}
