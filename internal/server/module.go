package server

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/fiberfx/validation"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	authhandler "github.com/userdesk/userdesk/internal/server/handlers/auth"
	usershandler "github.com/userdesk/userdesk/internal/server/handlers/users"
	"github.com/userdesk/userdesk/internal/server/handlers/web"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(usershandler.NewHandler, fx.ResultTags(`group:"handlers"`)), fx.Private,
			fx.Annotate(authhandler.NewHandler, fx.ResultTags(`group:"root-handlers"`)), fx.Private,
			fx.Annotate(web.NewHandler, fx.ResultTags(`group:"root-handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(handlers []handler.Handler, rootHandlers []handler.Handler, healthHandler handler.Handler, app *fiber.App) {
					// Health endpoint
					healthHandler.Register(app)

					// Browser pages and OAuth2-compatible auth endpoints
					for _, h := range rootHandlers {
						h.Register(app)
					}

					// Version 1 API group
					v1 := app.Group("/api/v1")
					v1.Use(validation.Middleware)

					for _, h := range handlers {
						h.Register(v1)
					}
				},
				fx.ParamTags(`group:"handlers"`, `group:"root-handlers"`, `name:"health-handler"`),
			),
		),
	)
}
