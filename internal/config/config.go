package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/foodwagen/internal/foodapi"
)

// Config captures foodwagen's runtime settings.
type Config struct {
	APIBase  string
	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/foodwagen/config.toml"
	defaultLogFile    = "~/.local/state/foodwagen/foodwagen.log"
	defaultLogLevel   = "info"
	defaultEnvFile    = ".env"

	envAPIBase  = "FOODWAGEN_API_BASE"
	envLogFile  = "FOODWAGEN_LOG_FILE"
	envLogLevel = "FOODWAGEN_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBase:  foodapi.DefaultBaseURL,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load reads the config file at path (or the default location), then
// applies overrides from ./.env and the process environment.
func Load(path string) (Config, error) {
	return load(path, defaultEnvFile)
}

func load(path, envFile string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, envFile); err != nil {
		return Config{}, err
	}
	cfg.LogFile = mustExpand(cfg.LogFile)
	return cfg, nil
}

func readFile(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase  string `toml:"api_base"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// applyEnv overlays FOODWAGEN_* values. Variables already set in the
// process environment take precedence over the .env file.
func applyEnv(cfg *Config, envFile string) error {
	values := map[string]string{}
	if strings.TrimSpace(envFile) != "" {
		read, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = read
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("read env file: %w", err)
		}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(values[key])
	}

	if v := lookup(envAPIBase); v != "" {
		cfg.APIBase = v
	}
	if v := lookup(envLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := lookup(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
