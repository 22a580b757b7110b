package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Settings control the loader itself and are read before any file is loaded.
type Settings struct {
	Path          string `env:"DOTENV_PATH" envDefault:".env"`
	MaxLineLength int    `env:"DOTENV_MAX_LINE_LENGTH" envDefault:"4096"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	Serve         bool   `env:"DOTENV_SERVE" envDefault:"false"`
	ExportPath    string `env:"DOTENV_EXPORT"`

	RateLimit  int           `env:"DOTENV_RATE_LIMIT" envDefault:"60"`
	RateWindow time.Duration `env:"DOTENV_RATE_WINDOW" envDefault:"1m"`
}

// App is what the demo reads back after the file has been applied.
type App struct {
	Port string `env:"PORT"`
	Host string `env:"HOST"`
	Addr string `env:"ADDR"`
}

func LoadSettings() (Settings, error) {
	var cfg Settings
	if err := env.Parse(&cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func LoadApp() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// ListenAddr is ADDR when set, otherwise HOST:PORT with PORT defaulting
// to 8080.
func (a App) ListenAddr() string {
	if a.Addr != "" {
		return a.Addr
	}
	port := a.Port
	if port == "" {
		port = "8080"
	}
	return a.Host + ":" + port
}
