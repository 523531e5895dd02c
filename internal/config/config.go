package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/multislider/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "multislider.yaml"

	// DefaultPort is the default demo server port.
	DefaultPort = 3000

	// DefaultHost is the default demo server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace is the Prometheus namespace.
	DefaultNamespace = "multislider"
)

// Slider kinds accepted in the demo section.
const (
	KindMulti  = "multi"
	KindDouble = "double"
)

// Config represents the complete multislider.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
	Icons   IconsConfig   `yaml:"icons"`
	Demo    DemoConfig    `yaml:"demo"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ReadHeaderTimeout bounds request header reads.
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// AllowedOrigins restricts websocket upgrades. Empty allows same-origin only.
	AllowedOrigins []string `yaml:"allowedOrigins"`

	// ResumeWindow is how long a disconnected client's slider values are
	// kept for it to reconnect.
	ResumeWindow time.Duration `yaml:"resumeWindow"`

	// MaxDetachedSessions caps the number of kept sessions; the least
	// recently saved are dropped first.
	MaxDetachedSessions int `yaml:"maxDetachedSessions"`

	// Redis moves detached sessions out of process when Addr is set.
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig points the session store at a Redis server.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`

	// File enables rotated file logging in addition to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TracerName string `yaml:"tracerName"`
}

// IconsConfig selects where dot icons are served from.
type IconsConfig struct {
	// Dir serves icons from a local directory.
	Dir string `yaml:"dir"`

	// S3 serves icons from a bucket. Takes precedence over Dir.
	S3 S3Config `yaml:"s3"`

	// CacheMaxAge is the Cache-Control max-age of icon responses.
	CacheMaxAge time.Duration `yaml:"cacheMaxAge"`
}

// S3Config locates an icon bucket.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`

	// PathStyle forces path-style addressing (MinIO and friends).
	PathStyle bool `yaml:"pathStyle"`
}

// Enabled reports whether an S3 bucket is configured.
func (s S3Config) Enabled() bool { return s.Bucket != "" }

// DemoConfig lists the sliders every demo client starts with.
type DemoConfig struct {
	Title   string         `yaml:"title"`
	Sliders []SliderConfig `yaml:"sliders"`
}

// SliderConfig is one demo slider.
type SliderConfig struct {
	ID    string         `yaml:"id"`
	Kind  string         `yaml:"kind"`
	Label string         `yaml:"label"`
	Props map[string]any `yaml:"props"`
}

// New creates a new Config with default values and a two-slider demo.
func New() *Config {
	c := &Config{
		Metrics: MetricsConfig{Enabled: true},
		Demo: DemoConfig{
			Sliders: []SliderConfig{
				{
					ID:    "multi",
					Kind:  KindMulti,
					Label: "Drag the handles",
					Props: map[string]any{
						"roundedCorners": true,
						"equalColor":     "#FFC107",
						"sliders": []any{
							map[string]any{"color": "#00BDAF", "progress": 17, "dot": true},
							map[string]any{"color": "#AB47BC", "progress": 45, "dot": true},
						},
					},
				},
				{
					ID:    "double",
					Kind:  KindDouble,
					Label: "Click to move the active bar",
					Props: map[string]any{
						"activeSlider": 0,
						"sliders": []any{
							map[string]any{"color": "#2196F3", "progress": 30, "dot": true},
							map[string]any{"color": "#E91E63", "progress": 60},
						},
					},
				},
			},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for multislider.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Sections
// absent from the file keep their defaults; a demo section replaces the
// default demo entirely.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'multislider serve' without --config to use the built-in defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	cfg.Demo.Sliders = nil

	var probe struct {
		Demo *DemoConfig `yaml:"demo"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML").
			Wrap(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			Wrap(err)
	}
	if probe.Demo == nil {
		cfg.Demo = New().Demo
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Server.ResumeWindow == 0 {
		c.Server.ResumeWindow = 5 * time.Minute
	}
	if c.Server.MaxDetachedSessions == 0 {
		c.Server.MaxDetachedSessions = 1000
	}
	if c.Server.Redis.Prefix == "" {
		c.Server.Redis.Prefix = "multislider:session:"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 100
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = 28
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}

	if c.Icons.CacheMaxAge == 0 {
		c.Icons.CacheMaxAge = time.Hour
	}
	if c.Demo.Title == "" {
		c.Demo.Title = "multislider"
	}
	for i := range c.Demo.Sliders {
		if c.Demo.Sliders[i].Kind == "" {
			c.Demo.Sliders[i].Kind = KindMulti
		}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("server.port must be between 0 and 65535")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E122").
			WithDetail(fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E122").
			WithDetail(fmt.Sprintf("log.format %q is not text or json", c.Log.Format))
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E122").
			WithDetail("metrics.path must start with /")
	}
	if c.Server.ResumeWindow < 0 {
		return errors.New("E122").
			WithDetail("server.resumeWindow must not be negative")
	}
	if c.Icons.S3.Enabled() && c.Icons.S3.Region == "" && c.Icons.S3.Endpoint == "" {
		return errors.New("E122").
			WithDetail("icons.s3 needs a region or an endpoint")
	}

	seen := make(map[string]bool, len(c.Demo.Sliders))
	for i, s := range c.Demo.Sliders {
		switch {
		case s.ID == "":
			return errors.New("E122").WithDetail("demo.sliders[" + strconv.Itoa(i) + "] has no id")
		case seen[s.ID]:
			return errors.New("E122").WithDetail("duplicate demo slider id " + strconv.Quote(s.ID))
		case s.Kind != KindMulti && s.Kind != KindDouble:
			return errors.New("E122").
				WithDetail(fmt.Sprintf("demo slider %q has kind %q", s.ID, s.Kind)).
				WithSuggestion("Use kind: multi or kind: double")
		}
		seen[s.ID] = true
	}
	return nil
}

// Address returns the listen address of the demo server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// URL returns the demo server's base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// IconsPath returns the icon directory, resolved against the config
// file's directory when relative.
func (c *Config) IconsPath() string {
	path := c.Icons.Dir
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.New("E120").Wrap(err)
	}
	return data, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.configPath = path
	return nil
}
