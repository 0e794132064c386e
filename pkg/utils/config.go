package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"americanclave/pkg/database"
)

const (
	SourceWorker = "worker"
	SourceMirror = "mirror"

	defaultWorkerURL   = "https://d1-worker.americanclaveuser.workers.dev"
	defaultR2PublicURL = "https://pub-2e173b57501f46d1b35ca8b2b67e30e6.r2.dev"
	defaultConfigFile  = "clave.toml"
)

// Source selects where catalog records come from.
type Source struct {
	Kind           string `toml:"kind"` // "worker" or "mirror"
	WorkerURL      string `toml:"worker_url"`
	DBPath         string `toml:"db_path"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// HTTP configures the API server.
type HTTP struct {
	Addr           string   `toml:"addr"`
	TrustedProxies []string `toml:"trusted_proxies"`
}

// R2 configures the cover bucket. PublicURL is the prefix of every cover
// URL; the remaining fields are only needed for uploads.
type R2 struct {
	PublicURL       string `toml:"public_url"`
	Bucket          string `toml:"bucket"`
	Endpoint        string `toml:"endpoint"`
	Region          string `toml:"region"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

type Config struct {
	Source Source `toml:"source"`
	HTTP   HTTP   `toml:"http"`
	R2     R2     `toml:"r2"`
}

// Default reproduces the production deployment.
func Default() Config {
	return Config{
		Source: Source{
			Kind:           SourceWorker,
			WorkerURL:      defaultWorkerURL,
			DBPath:         database.DefaultConfig().Path,
			TimeoutSeconds: 10,
		},
		HTTP: HTTP{
			Addr:           ":8080",
			TrustedProxies: []string{"127.0.0.1"},
		},
		R2: R2{
			PublicURL: defaultR2PublicURL,
			Region:    "auto",
		},
	}
}

// Load reads the optional TOML file, applies CLAVE_* environment overrides,
// then normalizes and validates. path wins over CLAVE_CONFIG, which wins
// over ./clave.toml. A missing file is not an error; the returned bool
// reports whether one was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}
	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = os.Getenv("CLAVE_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false, fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config %s is a directory", abs)
	}
	return abs, true, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	setString("CLAVE_SOURCE", &c.Source.Kind)
	setString("CLAVE_WORKER_URL", &c.Source.WorkerURL)
	setString("CLAVE_DB_PATH", &c.Source.DBPath)
	setString("CLAVE_HTTP_ADDR", &c.HTTP.Addr)
	setString("CLAVE_R2_PUBLIC_URL", &c.R2.PublicURL)
	setString("CLAVE_R2_BUCKET", &c.R2.Bucket)
	setString("CLAVE_R2_ENDPOINT", &c.R2.Endpoint)
	setString("CLAVE_R2_REGION", &c.R2.Region)
	setString("CLAVE_R2_ACCESS_KEY_ID", &c.R2.AccessKeyID)
	setString("CLAVE_R2_SECRET_ACCESS_KEY", &c.R2.SecretAccessKey)

	if v := strings.TrimSpace(os.Getenv("CLAVE_HTTP_TIMEOUT_SECONDS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CLAVE_HTTP_TIMEOUT_SECONDS: %w", err)
		}
		c.Source.TimeoutSeconds = n
	}
	return nil
}

func (c *Config) normalize() {
	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	c.Source.WorkerURL = strings.TrimRight(strings.TrimSpace(c.Source.WorkerURL), "/")
	c.Source.DBPath = expandHome(strings.TrimSpace(c.Source.DBPath))
	c.HTTP.Addr = strings.TrimSpace(c.HTTP.Addr)
	c.R2.PublicURL = strings.TrimRight(strings.TrimSpace(c.R2.PublicURL), "/")
	c.R2.Endpoint = strings.TrimRight(strings.TrimSpace(c.R2.Endpoint), "/")
	c.R2.Bucket = strings.TrimSpace(c.R2.Bucket)
	if strings.TrimSpace(c.R2.Region) == "" {
		c.R2.Region = "auto"
	}
}

// Validate checks the settings every command needs. Upload credentials are
// checked separately by R2.UploadReady.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceWorker:
		if err := checkHTTPURL("source.worker_url", c.Source.WorkerURL); err != nil {
			return err
		}
	case SourceMirror:
		if c.Source.DBPath == "" {
			return errors.New("source.db_path is required for the mirror source")
		}
	default:
		return fmt.Errorf("source.kind %q: want %q or %q", c.Source.Kind, SourceWorker, SourceMirror)
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be positive, got %d", c.Source.TimeoutSeconds)
	}
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	return checkHTTPURL("r2.public_url", c.R2.PublicURL)
}

// Timeout is the per-request timeout for the worker client.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// Database returns the mirror database settings.
func (c *Config) Database() database.Config {
	return database.Config{Path: c.Source.DBPath}
}

// UploadReady reports what is missing before covers can be uploaded.
func (r R2) UploadReady() error {
	var missing []string
	if r.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if r.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if r.AccessKeyID == "" {
		missing = append(missing, "access_key_id")
	}
	if r.SecretAccessKey == "" {
		missing = append(missing, "secret_access_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("r2 upload settings missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func checkHTTPURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s %q: want an http(s) URL", field, raw)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
