package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Admin    AdminConfig
	Shift    ShiftConfig
	Face     FaceConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds admin session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AdminConfig holds the shared-secret admin gate configuration
type AdminConfig struct {
	PIN string
}

// ShiftConfig seeds the shift policy on first boot. After that the policy
// lives in the database and is mutated through the settings endpoints.
type ShiftConfig struct {
	WorkStartTime   string // "HH:MM"
	WorkEndTime     string // "HH:MM"
	OfficeLatitude  float64
	OfficeLongitude float64
	GeofenceRadiusM float64
}

// FaceConfig holds the external face-verification provider configuration
type FaceConfig struct {
	GeminiAPIKey   string
	FailOpen       bool
	TimeoutSeconds int
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments; real env
	// variables take precedence either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "prostaff_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Admin session configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}
	config.Admin = AdminConfig{
		PIN: getEnv("ADMIN_PIN", ""),
	}

	// Shift policy seed
	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LAT", "31.2304"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LAT: %w", err)
	}
	officeLng, err := strconv.ParseFloat(getEnv("OFFICE_LNG", "121.4737"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LNG: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_M", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_M: %w", err)
	}

	config.Shift = ShiftConfig{
		WorkStartTime:   getEnv("WORK_START_TIME", "09:00"),
		WorkEndTime:     getEnv("WORK_END_TIME", "18:00"),
		OfficeLatitude:  officeLat,
		OfficeLongitude: officeLng,
		GeofenceRadiusM: radius,
	}

	// Face verification configuration
	faceTimeout, err := strconv.Atoi(getEnv("FACE_VERIFY_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACE_VERIFY_TIMEOUT_SECONDS: %w", err)
	}

	config.Face = FaceConfig{
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		FailOpen:       getEnv("FACE_VERIFY_FAIL_OPEN", "true") == "true",
		TimeoutSeconds: faceTimeout,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Admin.PIN == "" {
		return fmt.Errorf("ADMIN_PIN is required")
	}
	if c.Shift.GeofenceRadiusM <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_M must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
