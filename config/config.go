package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/yuribeats/the-boards/constants"
)

type Config struct {
	Sheet   SheetConfig    `json:"sheet"`
	GitHub  GitHubConfig   `json:"github"`
	Secrets SecretsConfig  `json:"secrets"`
	Blob    BlobConfig     `json:"blob"`
	HTTP    HTTPConfig     `json:"http"`
	Log     LogConfig      `json:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty"`
}

// SheetConfig locates the published Google Sheet CSV export.
type SheetConfig struct {
	ID          string `json:"id"`
	GID         string `json:"gid"`
	URLTemplate string `json:"url_template,omitempty"`
}

// GitHubConfig locates the pending items file in a repository.
type GitHubConfig struct {
	Repo        string `json:"repo"`
	Path        string `json:"path"`
	Branch      string `json:"branch"`
	URLTemplate string `json:"url_template,omitempty"`
}

type SecretsConfig struct {
	Driver string `json:"driver"`
	Region string `json:"region,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

type BlobConfig struct {
	Driver    string `json:"driver"`
	Directory string `json:"directory,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Region    string `json:"region,omitempty"`
}

type HTTPConfig struct {
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter"`
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// Duration is a time.Duration that unmarshals from strings like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the config file at path if it exists, then fills defaults and
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}
	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// FromEnv builds a config from defaults and the environment only. Serverless
// entry points use it since they ship without a config file.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg
}

func (c *Config) ApplyDefaults() {
	setDefault(&c.Sheet.ID, DefaultSheetID)
	setDefault(&c.Sheet.GID, DefaultSheetGID)
	setDefault(&c.Sheet.URLTemplate, DefaultSheetURLTemplate)
	setDefault(&c.GitHub.Repo, DefaultRepo)
	setDefault(&c.GitHub.Path, DefaultPendingPath)
	setDefault(&c.GitHub.Branch, DefaultBranch)
	setDefault(&c.GitHub.URLTemplate, DefaultContentsURLTemplate)
	setDefault(&c.Secrets.Driver, constants.SecretsDriverEnv)
	setDefault(&c.Blob.Driver, constants.BlobDriverFilesystem)
	setDefault(&c.Blob.Directory, DefaultBlobDir)
	setDefault(&c.HTTP.Addr, constants.DefaultServeAddr)
	setDefault(&c.Log.Level, "info")
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = Duration(DefaultHTTPTimeout)
	}
	if c.Tracing == nil {
		c.Tracing = &TracingConfig{}
	}
	setDefault(&c.Tracing.Exporter, constants.TracingExporterNone)
	setDefault(&c.Tracing.ServiceName, DefaultServiceName)
}

// ApplyEnv overrides fields with any BOARDS_* variables that are set.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Sheet.ID, constants.EnvSheetID)
	setFromEnv(&c.Sheet.GID, constants.EnvSheetGID)
	setFromEnv(&c.Sheet.URLTemplate, constants.EnvSheetURL)
	setFromEnv(&c.GitHub.URLTemplate, constants.EnvContentsURL)
	setFromEnv(&c.GitHub.Repo, constants.EnvRepo)
	setFromEnv(&c.GitHub.Path, constants.EnvPendingPath)
	setFromEnv(&c.GitHub.Branch, constants.EnvBranch)
	setFromEnv(&c.Secrets.Driver, constants.EnvSecretsDriver)
	setFromEnv(&c.Secrets.Region, constants.EnvSecretsRegion)
	setFromEnv(&c.Secrets.Prefix, constants.EnvSecretsPrefix)
	setFromEnv(&c.Blob.Driver, constants.EnvBlobDriver)
	setFromEnv(&c.Blob.Bucket, constants.EnvBlobBucket)
	setFromEnv(&c.Blob.Region, constants.EnvBlobRegion)
	if c.Tracing == nil {
		c.Tracing = &TracingConfig{}
	}
	setFromEnv(&c.Tracing.Exporter, constants.EnvTracingExporter)
	if os.Getenv(constants.EnvDebug) != "" {
		c.Log.Level = "debug"
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func setFromEnv(field *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*field = v
	}
}
