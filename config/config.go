package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 15 * time.Second
	defaultPollInterval       = 1200 * time.Millisecond
	defaultPollTimeout        = 3 * time.Minute
	defaultBucketURL          = "mem://"
	defaultSessionPath        = ".blogpilot/session.json"
	defaultUserAgent          = "blogpilot/1.0"
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
)

// Session storage drivers
const (
	SessionDriverFile   = "file"
	SessionDriverSQLite = "sqlite"
)

// Notify providers
const (
	NotifyProviderNone    = "none"
	NotifyProviderWebhook = "webhook"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	API *APIConfig `json:"api" yaml:"api"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Poller configuration for asynchronous image completion checks
	Poller *PollerConfig `json:"poller" yaml:"poller"`

	// Export configuration for downloaded post artifacts
	Export *ExportConfig `json:"export" yaml:"export"`

	// QRCode configuration for published post links
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Notify configuration for generation completion events
	Notify *NotifyConfig `json:"notify" yaml:"notify"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// APIConfig defines how the backend REST surface is reached
type APIConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`

	// Outgoing requests per second; zero disables limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// SessionConfig defines where the durable session lives
type SessionConfig struct {
	// Driver is "file" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`
	Path   string `json:"path" yaml:"path"`

	// Passphrase seals the file driver's contents when set
	Passphrase string `json:"passphrase" yaml:"passphrase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PollerConfig defines image completion polling behaviour
type PollerConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// AllowPrivateNetworks disables SSRF filtering for local backends
	AllowPrivateNetworks bool `json:"allowPrivateNetworks" yaml:"allowPrivateNetworks"`
}

// ExportConfig defines the blob bucket that receives downloaded artifacts
type ExportConfig struct {
	// BucketURL is a gocloud.dev URL such as file:///tmp/exports or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// NotifyConfig defines where generation events are delivered
type NotifyConfig struct {
	// Provider type: "" / "none" disables delivery, "webhook" posts JSON to Endpoint
	Provider string `json:"provider" yaml:"provider"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: API_BASEURL -> api.baseUrl, POLLER_ALLOWPRIVATENETWORKS -> poller.allowPrivateNetworks
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections so callers never see nil pointers.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.API == nil {
		c.API = &APIConfig{}
	}
	if c.API.RequestTimeout <= 0 {
		c.API.RequestTimeout = defaultRequestTimeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}
	if c.API.RateLimit > 0 && c.API.Burst <= 0 {
		c.API.Burst = 1
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Driver == "" {
		c.Session.Driver = SessionDriverFile
	}
	if c.Session.Path == "" {
		c.Session.Path = defaultSessionPath
	}

	if c.Poller == nil {
		c.Poller = &PollerConfig{}
	}
	if c.Poller.Interval <= 0 {
		c.Poller.Interval = defaultPollInterval
	}
	if c.Poller.Timeout <= 0 {
		c.Poller.Timeout = defaultPollTimeout
	}

	if c.Export == nil {
		c.Export = &ExportConfig{}
	}
	if c.Export.BucketURL == "" {
		c.Export.BucketURL = defaultBucketURL
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if c.Notify == nil {
		c.Notify = &NotifyConfig{}
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "blogpilot"
	}
}

// Validate checks the settings that have no usable default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}

	switch c.Session.Driver {
	case SessionDriverFile, SessionDriverSQLite:
	default:
		return errors.Errorf("unknown session driver: %s", c.Session.Driver)
	}

	switch c.Notify.Provider {
	case "", NotifyProviderNone:
	case NotifyProviderWebhook:
		if strings.TrimSpace(c.Notify.Endpoint) == "" {
			return errors.New("notify.endpoint is required for the webhook provider")
		}
	default:
		return errors.Errorf("unknown notify provider: %s", c.Notify.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
