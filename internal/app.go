package internal

import (
	"context"

	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/userdesk/userdesk/internal/auth"
	"github.com/userdesk/userdesk/internal/config"
	"github.com/userdesk/userdesk/internal/server"
	"github.com/userdesk/userdesk/internal/users"
	"github.com/userdesk/userdesk/pkg/badgerfx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.0.1", ReleaseID: 1} }),
		users.Module(),
		auth.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("🚀 userdesk application starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 userdesk application shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
