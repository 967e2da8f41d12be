package config

import (
	"errors"
	"path/filepath"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the catalog module.
type Config struct {
	// DataFile is the JSON backing document holding every collection.
	DataFile string `env:"DATA_FILE" envDefault:"db.json"`

	// UploadsRoot is the directory served under /uploads; product images are
	// stored in its "products" subdirectory.
	UploadsRoot string `env:"UPLOADS_ROOT" envDefault:"public/uploads"`

	// UploadMaxFiles caps the number of files accepted per upload call.
	UploadMaxFiles int `env:"UPLOAD_MAX_FILES" envDefault:"5"`

	// UploadMaxBytes caps the size of each uploaded file.
	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load catalog configuration from environment: " + err.Error())
	}

	if cfg.DataFile == "" {
		return nil, errors.New("DATA_FILE must not be empty")
	}
	if cfg.UploadMaxFiles <= 0 {
		cfg.UploadMaxFiles = 5
	}
	if cfg.UploadMaxBytes <= 0 {
		cfg.UploadMaxBytes = 5 * 1024 * 1024
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:       "db.json",
		UploadsRoot:    "public/uploads",
		UploadMaxFiles: 5,
		UploadMaxBytes: 5 * 1024 * 1024,
	}
}

// ProductUploadsDir is the directory uploaded product images are written to.
func (c *Config) ProductUploadsDir() string {
	return filepath.Join(c.UploadsRoot, "products")
}

// UploadBodyLimit is the request body cap the HTTP server must allow so that
// a maximal upload batch (UploadMaxFiles files of UploadMaxBytes each) fits,
// with headroom for multipart framing. The per-file cap stays the
// authoritative check.
func (c *Config) UploadBodyLimit() int {
	return int(int64(c.UploadMaxFiles)*c.UploadMaxBytes) + 1024*1024
}
