package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Auth     AuthConfig     `yaml:"auth"`
	Store    StoreConfig    `yaml:"store"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	ReadTimeout       time.Duration `yaml:"readTimeout"`
	WriteTimeout      time.Duration `yaml:"writeTimeout"`
	IdleTimeout       time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
	AllowedOriginsCSV string        `yaml:"allowedOrigins"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres|memory
	URL      string `yaml:"url"`
	MaxConns int    `yaml:"maxConns"`
	Migrate  bool   `yaml:"migrate"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Mode       string `yaml:"mode"` // production|development
	Level      string `yaml:"level"`
	FileEnable bool   `yaml:"fileEnable"`
	Filename   string `yaml:"filename"`
}

type AuthConfig struct {
	Mode      string `yaml:"mode"` // demo|jwt
	JWTSecret string `yaml:"jwtSecret"`
}

// StoreConfig describes the shop itself: its currency and the demo account.
type StoreConfig struct {
	Currency     string    `yaml:"currency"`
	DemoUserID   uuid.UUID `yaml:"demoUserId"`
	DemoEmail    string    `yaml:"demoEmail"`
	DemoName     string    `yaml:"demoName"`
	DemoPassword string    `yaml:"demoPassword"`
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	AuthModeDemo = "demo"
	AuthModeJWT  = "jwt"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxConns        = 10
	defaultLogMode         = "development"
	defaultLogLevel        = "info"
	defaultLogFilename     = "storefront.log"
	defaultCurrency        = "USD"
	defaultDemoEmail       = "demo@example.com"
	defaultDemoName        = "Demo User"
	defaultDemoPassword    = "demo-password"
)

// DefaultDemoUserID is the identity injected in demo auth mode unless DEMO_USER_ID overrides it.
var DefaultDemoUserID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Database: DatabaseConfig{
			Driver:   DriverPostgres,
			MaxConns: defaultMaxConns,
			Migrate:  true,
		},
		Logging: LoggingConfig{
			Mode:     defaultLogMode,
			Level:    defaultLogLevel,
			Filename: defaultLogFilename,
		},
		Auth: AuthConfig{
			Mode: AuthModeDemo,
		},
		Store: StoreConfig{
			Currency:     defaultCurrency,
			DemoUserID:   DefaultDemoUserID,
			DemoEmail:    defaultDemoEmail,
			DemoName:     defaultDemoName,
			DemoPassword: defaultDemoPassword,
		},
	}
}

// Load starts from defaults, overlays the YAML file named by CONFIG_FILE when
// set, then applies environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile overlays the non-zero values of a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// decoding into the current value keeps defaults for absent keys
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing YAML config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTP.Host, "SERVER_HOST")
	setString(&c.HTTP.AllowedOriginsCSV, "SERVER_ALLOWED_ORIGINS")
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Logging.Mode, "LOG_MODE")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Filename, "LOG_FILENAME")
	setString(&c.Auth.Mode, "AUTH_MODE")
	setString(&c.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&c.Store.Currency, "STORE_CURRENCY")
	setString(&c.Store.DemoEmail, "DEMO_USER_EMAIL")
	setString(&c.Store.DemoName, "DEMO_USER_NAME")
	setString(&c.Store.DemoPassword, "DEMO_USER_PASSWORD")

	ints := []struct {
		dst *int
		key string
	}{
		{&c.HTTP.Port, "SERVER_PORT"},
		{&c.Database.MaxConns, "DATABASE_MAX_CONNS"},
	}
	for _, v := range ints {
		if err := setInt(v.dst, v.key); err != nil {
			return err
		}
	}

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.HTTP.ReadTimeout, "SERVER_READ_TIMEOUT"},
		{&c.HTTP.WriteTimeout, "SERVER_WRITE_TIMEOUT"},
		{&c.HTTP.IdleTimeout, "SERVER_IDLE_TIMEOUT"},
		{&c.HTTP.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT"},
	}
	for _, v := range durations {
		if err := setDuration(v.dst, v.key); err != nil {
			return err
		}
	}

	bools := []struct {
		dst *bool
		key string
	}{
		{&c.Database.Migrate, "DATABASE_MIGRATE"},
		{&c.Logging.FileEnable, "LOG_FILE_ENABLE"},
	}
	for _, v := range bools {
		if err := setBool(v.dst, v.key); err != nil {
			return err
		}
	}

	if v := os.Getenv("DEMO_USER_ID"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fmt.Errorf("invalid DEMO_USER_ID value %q: %w", v, err)
		}
		c.Store.DemoUserID = id
	}

	return nil
}

func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for driver %s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	switch c.Auth.Mode {
	case AuthModeDemo:
		if c.Store.DemoUserID == uuid.Nil {
			return fmt.Errorf("demo user id is empty")
		}
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required for auth mode %s", AuthModeJWT)
		}
	default:
		return fmt.Errorf("unknown auth mode %q", c.Auth.Mode)
	}

	if len(c.Store.Currency) != 3 {
		return fmt.Errorf("store currency %q is not an ISO code", c.Store.Currency)
	}

	return nil
}

// AllowedOrigins splits the CSV origin list, dropping blanks.
func (c HTTPConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOriginsCSV, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	if v := os.Getenv(key); v != "" {
		parsed, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		*dst = parsed
	}
	return nil
}

func setBool(dst *bool, key string) error {
	if v := os.Getenv(key); v != "" {
		parsed, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		*dst = parsed
	}
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	if v := os.Getenv(key); v != "" {
		parsed, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		*dst = parsed
	}
	return nil
}
