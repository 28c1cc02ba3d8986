package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/userdesk/userdesk/internal/auth"
	"github.com/userdesk/userdesk/internal/server/handlers/web"
	"github.com/userdesk/userdesk/pkg/badgerfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey: []byte(cfg.Auth.SecretKey),
				Issuer:    cfg.Auth.Issuer,
				TokenTTL:  cfg.Auth.TokenTTL,
			}
		}),
		fx.Provide(func(cfg Config) web.Config {
			return web.Config{
				TemplatesDir: cfg.Web.TemplatesDir,
				StaticDir:    cfg.Web.StaticDir,
			}
		}),
	)
}
