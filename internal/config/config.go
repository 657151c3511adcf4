package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort     string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	BotDelayMS   int    `yaml:"bot-delay-ms" env:"BOT_DELAY_MS" env-default:"500"`
	DefaultMode  string `yaml:"default-mode" env:"DEFAULT_MODE" env-default:"bot"`
	DefaultTheme string `yaml:"default-theme" env:"DEFAULT_THEME" env-default:"light"`
	WebDir       string `yaml:"web-dir" env:"WEB_DIR" env-default:"./web"`
}

// MustLoad reads the config file at path, falling back to environment
// variables only when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment config: %w", err))
	}
	return config
}

// BotDelay is how long the computer "thinks" before replying.
func (c *Config) BotDelay() time.Duration {
	return time.Duration(c.BotDelayMS) * time.Millisecond
}
