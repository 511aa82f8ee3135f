package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvPort  = "TC_PORT"
	EnvInput = "TC_INPUT"
	EnvGTFS  = "TC_GTFS"
)

// SearchPaths are tried in order when no explicit path is given.
var SearchPaths = []string{"config.yml", "./config/config.yml"}

// LoadAppConfig reads and validates the configuration. With an empty path the
// search paths are tried and defaults are used when none exists; an explicit
// path must exist.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()

	data, src, err := readConfigFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", src, err)
		}
		log.Printf("configuration loaded from %s", src)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags on every section.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func readConfigFile(path string) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return data, path, nil
	}
	for _, p := range SearchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
	}
	return nil, "", nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv(EnvGTFS); v != "" {
		cfg.GTFS.StaticPath = v
	}
	return nil
}
