package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/datetime"
	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Storage      StorageConfig
	WorkSchedule WorkScheduleConfig
	Geofence     GeofenceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	BasePath string
	BaseURL  string
}

// WorkScheduleConfig is the process-wide work schedule. It is read once
// at startup and never mutated afterwards.
type WorkScheduleConfig struct {
	StartTime        datetime.TimeOfDay
	EndTime          datetime.TimeOfDay
	Workdays         []int // weekday ordinals, Monday=1 .. Sunday=7
	LateGraceMinutes int
	StandardHours    int
}

// GeofenceConfig holds geofence defaults.
type GeofenceConfig struct {
	DefaultRadiusMeters float64
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
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
		Name:     getEnv("DB_NAME", "chronotrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		BasePath: getEnv("UPLOAD_DEST", "./uploads"),
		BaseURL:  getEnv("UPLOAD_BASE_URL", "http://localhost:5000/uploads"),
	}

	// Work schedule configuration
	startTime, err := datetime.ParseTimeOfDay(getEnv("WORK_START_TIME", "09:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_START_TIME: %w", err)
	}
	endTime, err := datetime.ParseTimeOfDay(getEnv("WORK_END_TIME", "18:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_END_TIME: %w", err)
	}
	workdays, err := getEnvIntSlice("WORKDAYS", []int{1, 2, 3, 4, 5})
	if err != nil {
		return nil, fmt.Errorf("invalid WORKDAYS: %w", err)
	}
	graceMinutes, err := strconv.Atoi(getEnv("LATE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_GRACE_MINUTES: %w", err)
	}
	standardHours, err := strconv.Atoi(getEnv("STANDARD_WORK_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_WORK_HOURS: %w", err)
	}

	config.WorkSchedule = WorkScheduleConfig{
		StartTime:        startTime,
		EndTime:          endTime,
		Workdays:         workdays,
		LateGraceMinutes: graceMinutes,
		StandardHours:    standardHours,
	}

	// Geofence configuration
	defaultRadius, err := strconv.Atoi(getEnv("DEFAULT_GEOFENCE_RADIUS", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_GEOFENCE_RADIUS: %w", err)
	}
	config.Geofence = GeofenceConfig{
		DefaultRadiusMeters: float64(defaultRadius),
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
	if len(c.WorkSchedule.Workdays) == 0 {
		return fmt.Errorf("WORKDAYS must name at least one weekday")
	}
	for _, d := range c.WorkSchedule.Workdays {
		if d < 1 || d > 7 {
			return fmt.Errorf("WORKDAYS ordinal out of range: %d", d)
		}
	}
	if c.Geofence.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("DEFAULT_GEOFENCE_RADIUS must be positive")
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

func getEnvIntSlice(env string, fallback []int) ([]int, error) {
	value := os.Getenv(env)
	if value == "" {
		return fallback, nil
	}
	var result []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
