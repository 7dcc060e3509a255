package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "cards.db"
	defaultUploadDir   = "./uploads"
	defaultUploadBase  = "/uploads"
	defaultSharePolicy = "uploaded"
)

// Config is the runtime configuration of the card service, loaded from
// environment variables with local-development defaults.
type Config struct {
	Addr        string // HTTP listen address
	DatabaseURL string // postgres:// DSN or SQLite file path
	UploadDir   string // directory uploaded images are written to
	UploadBase  string // URL prefix the upload dir is served under
	ShareLocal  bool   // allow sharing local-only (data:/blob:) image refs
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("ADDR", defaultAddr),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
		UploadBase:  getEnv("UPLOAD_BASE", defaultUploadBase),
	}

	policy := strings.ToLower(getEnv("SHARE_POLICY", defaultSharePolicy))
	switch policy {
	case "uploaded":
		cfg.ShareLocal = false
	case "any":
		// no-backend deployment mode: local file reads produce data: URLs
		// and links are generated from them as-is
		cfg.ShareLocal = true
	default:
		return nil, fmt.Errorf("invalid SHARE_POLICY %q (want \"uploaded\" or \"any\")", policy)
	}

	if !strings.HasPrefix(cfg.UploadBase, "/") {
		cfg.UploadBase = "/" + cfg.UploadBase
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
