package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project config file at the project root.
const FileName = "keihi.yaml"

// Config represents the top-level keihi.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
	Git     GitConfig     `yaml:"git"`
}

// LedgerConfig holds bookkeeping labels.
type LedgerConfig struct {
	Claimant string `yaml:"claimant"` // label for personal-expense rows
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // file or sqlite
	Path    string `yaml:"path"`
}

// ExportConfig controls where exports go.
type ExportConfig struct {
	Dir    string   `yaml:"dir"`
	Format string   `yaml:"format"` // csv or xlsx
	Sink   string   `yaml:"sink"`   // dir, stdout or s3
	S3     S3Config `yaml:"s3,omitempty"`
}

// S3Config locates the bucket for the s3 sink.
type S3Config struct {
	Bucket    string `yaml:"bucket,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format,omitempty"` // console (default) or json
}

// GitConfig controls snapshot commits of the project directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a keihi.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultClaimant labels personal rows when none is configured.
const DefaultClaimant = "西村（個人）"

// Default returns a Config with sensible defaults for a new project.
func Default(claimant string) *Config {
	if claimant == "" {
		claimant = DefaultClaimant
	}
	return &Config{
		Ledger: LedgerConfig{Claimant: claimant},
		Storage: StorageConfig{
			Backend: "file",
			Path:    "data",
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: "csv",
			Sink:   "dir",
		},
		Log: LogConfig{Level: "info"},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "keihi",
			AuthorEmail: "keihi@localhost",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Ledger.Claimant) == "" {
		errs = append(errs, errors.New("ledger.claimant must not be empty"))
	}
	switch c.Storage.Backend {
	case "file", "sqlite":
	case "memory":
		errs = append(errs, errors.New(`storage.backend "memory" keeps nothing between commands; use file or sqlite`))
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q must be file or sqlite", c.Storage.Backend))
	}
	switch c.Export.Format {
	case "csv", "xlsx":
	default:
		errs = append(errs, fmt.Errorf("export.format %q must be csv or xlsx", c.Export.Format))
	}
	switch c.Export.Sink {
	case "dir", "stdout":
	case "s3":
		if c.Export.S3.Bucket == "" {
			errs = append(errs, errors.New("export.s3.bucket is required for the s3 sink"))
		}
	default:
		errs = append(errs, fmt.Errorf("export.sink %q must be dir, stdout or s3", c.Export.Sink))
	}
	if c.Git.AutoCommit && (c.Git.AuthorName == "" || c.Git.AuthorEmail == "") {
		errs = append(errs, errors.New("git.author_name and git.author_email are required with git.auto_commit"))
	}
	switch c.Log.Level {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not a known level", c.Log.Level))
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be console or json", c.Log.Format))
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides settings from KEIHI_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"KEIHI_CLAIMANT":        &c.Ledger.Claimant,
		"KEIHI_STORAGE_BACKEND": &c.Storage.Backend,
		"KEIHI_STORAGE_PATH":    &c.Storage.Path,
		"KEIHI_EXPORT_DIR":      &c.Export.Dir,
		"KEIHI_EXPORT_FORMAT":   &c.Export.Format,
		"KEIHI_EXPORT_SINK":     &c.Export.Sink,
		"KEIHI_S3_BUCKET":       &c.Export.S3.Bucket,
		"KEIHI_S3_REGION":       &c.Export.S3.Region,
		"KEIHI_S3_ENDPOINT":     &c.Export.S3.Endpoint,
		"KEIHI_S3_PREFIX":       &c.Export.S3.Prefix,
		"KEIHI_LOG_LEVEL":       &c.Log.Level,
		"KEIHI_LOG_FORMAT":      &c.Log.Format,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup("KEIHI_S3_PATH_STYLE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("KEIHI_S3_PATH_STYLE: %w", err)
		}
		c.Export.S3.PathStyle = b
	}
	return nil
}
