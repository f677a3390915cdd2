package router

import (
	"context"

	"github.com/oksasatya/go-ddd-signup/internal/application"
	"github.com/oksasatya/go-ddd-signup/internal/container"
	pginfra "github.com/oksasatya/go-ddd-signup/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-ddd-signup/internal/interface/http"
	"github.com/oksasatya/go-ddd-signup/internal/router/modules"
	"github.com/oksasatya/go-ddd-signup/pkg/helpers"
)

type SignupModuleDeps struct {
	Service *application.Service
	Handler *handlers.SignupHandler
}

func buildSignupDeps() SignupModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())

	service := application.NewService(
		repo,
		container.GetMailer(),
		container.GetRedis(),
		container.GetLogger(),
		container.GetSignupMetrics(),
	)

	return SignupModuleDeps{
		Service: service,
		Handler: handlers.NewSignupHandler(service, container.GetLogger()),
	}
}

func buildHealthHandler() *handlers.HealthHandler {
	required := map[string]handlers.Check{}
	if pool := container.GetPGPool(); pool != nil {
		required["postgres"] = pool.Ping
	}
	// Redis only backs the verified flag cache, so losing it degrades but does not fail.
	optional := map[string]handlers.Check{}
	if rdb := container.GetRedis(); rdb != nil {
		optional["redis"] = func(ctx context.Context) error { return helpers.PingRedis(ctx, rdb) }
	}
	return handlers.NewHealthHandler(required, optional)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	signupDeps := buildSignupDeps()
	r.Add(modules.NewSignupModule(signupDeps.Handler))
	r.Add(modules.NewHealthModule(buildHealthHandler()))

	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(container.GetMetricsRegistry()))
	}
}
