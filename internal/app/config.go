package app

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/booklibrary-portal/internal/backend"
	"github.com/yungbote/booklibrary-portal/internal/platform/envutil"
	"github.com/yungbote/booklibrary-portal/internal/platform/logger"
)

type Config struct {
	Port           string         `yaml:"port"`
	BackendBaseURL string         `yaml:"backend_base_url"`
	BackendTimeout time.Duration  `yaml:"backend_timeout"`
	Routes         backend.Routes `yaml:"routes"`
	TemplatesGlob  string         `yaml:"templates_glob"`
}

// LoadConfig layers an optional YAML file (PORTAL_CONFIG) under env var
// overrides. Resource route segments live in the file so the backend's
// path casing stays configuration, not code.
func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:           "8080",
		BackendBaseURL: "http://localhost:5057/api",
		BackendTimeout: 30 * time.Second,
		TemplatesGlob:  "web/templates/*.tmpl",
	}

	if path := strings.TrimSpace(os.Getenv("PORTAL_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("could not read config file, continuing with defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Warn("could not parse config file, continuing with defaults", "path", path, "error", err)
		}
	}

	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.BackendBaseURL = envutil.String("BACKEND_BASE_URL", cfg.BackendBaseURL)
	cfg.BackendTimeout = envutil.Duration("BACKEND_TIMEOUT", cfg.BackendTimeout)
	cfg.TemplatesGlob = envutil.String("TEMPLATES_GLOB", cfg.TemplatesGlob)
	return cfg
}
