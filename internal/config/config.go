package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type storageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type authConfig struct {
	// SecretKey signs session tokens. Rotating it invalidates every
	// outstanding token.
	SecretKey string        `koanf:"secret_key"`
	Issuer    string        `koanf:"issuer"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

type webConfig struct {
	TemplatesDir string `koanf:"templates_dir"`
	StaticDir    string `koanf:"static_dir"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage storageConfig `koanf:"storage"`
	Auth    authConfig    `koanf:"auth"`
	Web     webConfig     `koanf:"web"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Auth: authConfig{
			SecretKey: "",
			Issuer:    "userdesk",
			TokenTTL:  30 * time.Minute,
		},

		Web: webConfig{
			TemplatesDir: "./web/templates",
			StaticDir:    "./web/static",
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Auth.SecretKey == "" {
		return Config{}, ErrMissingSecretKey
	}

	return cfg, nil
}
