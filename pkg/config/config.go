package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"3000"`
	BaseDomain   string `envconfig:"BASE_DOMAIN"`
	URL          string `envconfig:"URL"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5500,http://127.0.0.1:5500,http://127.0.0.1:4000"`
	MoviesFile   string `envconfig:"MOVIES_FILE" default:"movies.json"`

	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"20"`

	DB struct {
		Driver    string `envconfig:"DB_DRIVER" default:"memory"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT" default:"5432"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.DB.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("load config error: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}

// PublicURL is the scheme and host used in pagination links:
// BASE_DOMAIN, then URL, then localhost on the listen port.
func (c *Config) PublicURL() string {
	if c.BaseDomain != "" {
		return strings.TrimSuffix(c.BaseDomain, "/")
	}
	if c.URL != "" {
		return strings.TrimSuffix(c.URL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// Origins splits ALLOW_ORIGINS, dropping blanks and duplicates.
func (c *Config) Origins() []string {
	var origins []string
	seen := map[string]bool{}
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}
