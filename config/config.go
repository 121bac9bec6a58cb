package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"chorechart/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTTL          = 24 * time.Hour
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultLedgerTimezone     = "UTC"
	defaultSessionCookie      = "chorechart_session"
	defaultFlashCookie        = "chorechart_flash"
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

	// Web configures the server-rendered dashboard surface
	Web *WebConfig `json:"web" yaml:"web"`

	// Worker configures the notification push worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for redemption vouchers
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Seed describes the household provisioned by cmd/seed
	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

// WebConfig defines the server-rendered surface configuration
type WebConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	Port            int    `json:"port" yaml:"port"`
	CookieName      string `json:"cookieName" yaml:"cookieName"`
	CookieSecure    bool   `json:"cookieSecure" yaml:"cookieSecure"`
	FlashCookieName string `json:"flashCookieName" yaml:"flashCookieName"`
}

// WorkerConfig defines the notification worker configuration
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// Audience expected in Pub/Sub push ID tokens (defaults to the push endpoint URL)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// DatabaseConfig selects the storage backend
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// LedgerConfig defines how calendar dates are derived for daily chores
type LedgerConfig struct {
	// IANA time zone name used to compute "today"
	Timezone string `json:"timezone" yaml:"timezone"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SeedConfig describes a parent and the kids linked to them
type SeedConfig struct {
	Parent SeedAccount `json:"parent" yaml:"parent"`
	Kids   []SeedKid   `json:"kids" yaml:"kids"`
}

// SeedAccount is one login to provision
type SeedAccount struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
}

// SeedKid is a kid account plus the chores assigned to it
type SeedKid struct {
	SeedAccount `json:",inline" yaml:",inline" mapstructure:",squash"`
	Chores      []SeedChore `json:"chores" yaml:"chores"`
}

// SeedChore is a chore assigned to a seeded kid
type SeedChore struct {
	Title  string `json:"title" yaml:"title"`
	Points int    `json:"points" yaml:"points"`
	Icon   string `json:"icon" yaml:"icon"`
	Type   string `json:"type" yaml:"type"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = constants.DatabaseDriverPostgres
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Ledger.Timezone == "" {
		cfg.Ledger.Timezone = defaultLedgerTimezone
	}
	if cfg.Web == nil {
		cfg.Web = &WebConfig{}
	}
	if cfg.Web.CookieName == "" {
		cfg.Web.CookieName = defaultSessionCookie
	}
	if cfg.Web.FlashCookieName == "" {
		cfg.Web.FlashCookieName = defaultFlashCookie
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderNoop}
	}
}

// validate rejects settings that would otherwise only fail once a request hits them.
func validate(cfg *Config) error {
	if _, err := cfg.LedgerLocation(); err != nil {
		return errors.Wrap(err, "invalid ledger config")
	}

	return nil
}

// LedgerLocation resolves the time zone used for calendar dates.
func (c *Config) LedgerLocation() (*time.Location, error) {
	name := defaultLedgerTimezone
	if c.Ledger != nil && c.Ledger.Timezone != "" {
		name = c.Ledger.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load ledger timezone %q", name)
	}

	return loc, nil
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
