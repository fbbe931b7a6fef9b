// Package config resolves runtime settings from defaults, an optional YAML
// file, an optional .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend selects where collections are stored.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

const (
	EnvConfig      = "STRATA_CONFIG"
	EnvDB          = "STRATA_DB"
	EnvBackend     = "STRATA_BACKEND"
	EnvCompany     = "STRATA_COMPANY"
	EnvRole        = "STRATA_ROLE"
	EnvUser        = "STRATA_USER"
	EnvLogUseCases = "STRATA_LOG_USE_CASES"
)

// Config holds everything cmd/strata needs to wire the app.
type Config struct {
	DBPath      string      `yaml:"db"`
	Backend     Backend     `yaml:"backend"`
	CompanyID   string      `yaml:"company"`
	Role        domain.Role `yaml:"role"`
	UserID      string      `yaml:"user"`
	LogUseCases bool        `yaml:"log_use_cases"`
}

// Sources names the optional files Load reads. Empty paths are skipped.
type Sources struct {
	YAMLPath string
	EnvFile  string
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:  filepath.Join(home, ".strata", "strata.db"),
		Backend: BackendSQLite,
		Role:    domain.RoleUser,
	}
}

// DefaultSources points at ~/.strata/config.yaml (or $STRATA_CONFIG) and
// ./.env.
func DefaultSources(home string) Sources {
	yamlPath := os.Getenv(EnvConfig)
	if yamlPath == "" {
		yamlPath = filepath.Join(home, ".strata", "config.yaml")
	}
	return Sources{YAMLPath: yamlPath, EnvFile: ".env"}
}

// Load resolves the configuration for the current user.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return LoadFrom(home, DefaultSources(home))
}

// LoadFrom layers src over the defaults for home. Missing files are not an
// error; malformed ones are.
func LoadFrom(home string, src Sources) (Config, error) {
	cfg := DefaultConfig(home)

	if src.YAMLPath != "" {
		if err := applyYAML(&cfg, src.YAMLPath); err != nil {
			return Config{}, err
		}
	}

	dotenv := map[string]string{}
	if src.EnvFile != "" {
		vals, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			dotenv = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading %s: %w", src.EnvFile, err)
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := lookup(EnvBackend); v != "" {
		cfg.Backend = Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := lookup(EnvCompany); v != "" {
		cfg.CompanyID = v
	}
	if v := lookup(EnvRole); v != "" {
		cfg.Role = domain.Role(v)
	}
	if v := lookup(EnvUser); v != "" {
		cfg.UserID = v
	}
	if v := lookup(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	cfg.Role = domain.ParseRole(string(cfg.Role))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyYAML(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the app cannot start with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("%w: db path is required for the sqlite backend", domain.ErrInvalidInput)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q (want sqlite or memory)", domain.ErrInvalidInput, c.Backend)
	}
	return nil
}

// Scope builds the caller scope the services expect.
func (c Config) Scope() domain.Scope {
	return domain.Scope{CompanyID: c.CompanyID, Role: c.Role, UserID: c.UserID}
}
