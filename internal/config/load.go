package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FOODSHARE"

// legacyEnv lists unprefixed variables still honored for deployments that
// predate the FOODSHARE_ prefix. Prefixed variables win when both are set.
var legacyEnv = map[string]string{
	"server.port":               "PORT",
	"database.uri":              "MONGODB_URI",
	"database.user":             "DB_USER",
	"database.password":         "DB_PASS",
	"auth.firebase_service_key": "FB_SERVICE_KEY",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", "*")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.name", "foodShare")
	v.SetDefault("auth.provider", ProviderFirebase)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"database.uri", "database.user", "database.password", "auth.firebase_service_key", "auth.jwt_secret"} {
		v.SetDefault(key, "")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg plus rules spanning groups.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Firestore shares the Firebase service account with the identity provider.
	if cfg.Database.Driver == DriverFirestore && cfg.Auth.FirebaseServiceKey == "" {
		return fmt.Errorf(
			"config validation failed: auth.firebase_service_key is required when database.driver is %q",
			DriverFirestore,
		)
	}

	return nil
}

// Origins splits the comma separated origin list, dropping blanks.
func (c ServerConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
