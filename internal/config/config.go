package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/campus_geofence/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Timezone string `env:"TIMEZONE" envDefault:"Local"`
	Location *time.Location

	// Monitoring Config
	TickInterval    time.Duration `env:"TICK_INTERVAL" envDefault:"5s"`
	ActiveStartHour int           `env:"ACTIVE_START_HOUR" envDefault:"9"`
	ActiveEndHour   int           `env:"ACTIVE_END_HOUR" envDefault:"17"`

	// Geofence Config
	GeofenceName   string  `env:"GEOFENCE_NAME" envDefault:"Main Campus"`
	GeofenceLat    float64 `env:"GEOFENCE_LAT" envDefault:"34.0522"`
	GeofenceLng    float64 `env:"GEOFENCE_LNG" envDefault:"-118.2437"`
	GeofenceRadius float64 `env:"GEOFENCE_RADIUS_METERS" envDefault:"100"`

	// Simulation Config
	RosterFile     string  `env:"ROSTER_FILE"`
	RandomWalkStep float64 `env:"RANDOM_WALK_STEP" envDefault:"0.001"`
	RandomSeed     int64   `env:"RANDOM_SEED" envDefault:"0"`

	// Notifier Config
	NotifierURL     string        `env:"NOTIFIER_URL"`
	NotifierTimeout time.Duration `env:"NOTIFIER_TIMEOUT" envDefault:"10s"`

	// Redis Config
	RedisAddr          string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass          string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	AlertsRedisEnabled bool   `env:"ALERTS_REDIS_ENABLED" envDefault:"false"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// RabbitMQ Config
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// Attendance Config
	DefaultWorkingDays int `env:"DEFAULT_WORKING_DAYS" envDefault:"20"`
	AlertHistoryLimit  int `env:"ALERT_HISTORY_LIMIT" envDefault:"100"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           getEnv("TIMEZONE", "Local"),
		TickInterval:       getEnvAsDuration("TICK_INTERVAL", 5*time.Second),
		ActiveStartHour:    getEnvAsInt("ACTIVE_START_HOUR", 9),
		ActiveEndHour:      getEnvAsInt("ACTIVE_END_HOUR", 17),
		GeofenceName:       getEnv("GEOFENCE_NAME", "Main Campus"),
		GeofenceLat:        getEnvAsFloat("GEOFENCE_LAT", 34.0522),
		GeofenceLng:        getEnvAsFloat("GEOFENCE_LNG", -118.2437),
		GeofenceRadius:     getEnvAsFloat("GEOFENCE_RADIUS_METERS", 100),
		RosterFile:         os.Getenv("ROSTER_FILE"),
		RandomWalkStep:     getEnvAsFloat("RANDOM_WALK_STEP", 0.001),
		RandomSeed:         int64(getEnvAsInt("RANDOM_SEED", 0)),
		NotifierURL:        os.Getenv("NOTIFIER_URL"),
		NotifierTimeout:    getEnvAsDuration("NOTIFIER_TIMEOUT", 10*time.Second),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		AlertsRedisEnabled: getEnvAsBool("ALERTS_REDIS_ENABLED", false),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		RabbitMQURL:        os.Getenv("RABBITMQ_URL"),
		DefaultWorkingDays: getEnvAsInt("DEFAULT_WORKING_DAYS", 20),
		AlertHistoryLimit:  getEnvAsInt("ALERT_HISTORY_LIMIT", 100),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность параметров мониторинга
func (c *Config) Validate() error {
	if c.ActiveStartHour < 0 || c.ActiveEndHour > 24 || c.ActiveStartHour >= c.ActiveEndHour {
		return fmt.Errorf("active hours must satisfy 0 <= ACTIVE_START_HOUR < ACTIVE_END_HOUR <= 24, got %d and %d", c.ActiveStartHour, c.ActiveEndHour)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", c.TickInterval)
	}
	if c.DefaultWorkingDays <= 0 {
		return fmt.Errorf("DEFAULT_WORKING_DAYS must be positive, got %d", c.DefaultWorkingDays)
	}
	if err := c.Geofence().Validate(); err != nil {
		return err
	}
	return nil
}

// Geofence возвращает начальную геозону из конфигурации
func (c *Config) Geofence() models.Geofence {
	return models.Geofence{
		ID:   "main",
		Name: c.GeofenceName,
		Center: models.Coordinate{
			Latitude:  c.GeofenceLat,
			Longitude: c.GeofenceLng,
		},
		RadiusMeters: c.GeofenceRadius,
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
