package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	AllowedOrigins         string `mapstructure:"allowed_origins"          validate:"required"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// Store backends selectable through database.driver.
const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"
)

// DatabaseConfig selects the document store backend and where to find it.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=mongo firestore memory"`
	URI    string `mapstructure:"uri"    validate:"required_if=Driver mongo"`
	Name   string `mapstructure:"name"   validate:"required"`

	// User and Password authenticate against URI when it carries no
	// credentials of its own.
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password" validate:"required_with=User"`
}

// Identity providers selectable through auth.provider.
const (
	ProviderFirebase = "firebase"
	ProviderJWT      = "jwt"
)

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=firebase jwt"`

	// FirebaseServiceKey is a base64-encoded service account JSON document.
	FirebaseServiceKey string `mapstructure:"firebase_service_key" validate:"required_if=Provider firebase"`

	JWTSecret string `mapstructure:"jwt_secret" validate:"required_if=Provider jwt,omitempty,min=32"`
}
