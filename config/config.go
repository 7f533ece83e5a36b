package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (wizard and reschedule sessions).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Upstream collaborators.
	AppointmentStoreURL    string `mapstructure:"APPOINTMENT_STORE_URL"`
	DoctorDirectoryURL     string `mapstructure:"DOCTOR_DIRECTORY_URL"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Booking behaviour.
	SessionTTLMinutes      int     `mapstructure:"SESSION_TTL_MINUTES"`
	AvailabilityHorizon    int     `mapstructure:"AVAILABILITY_HORIZON_DAYS"`
	ConsultationFeeDefault float64 `mapstructure:"CONSULTATION_FEE_FALLBACK"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("APPOINTMENT_STORE_URL", "http://localhost:9080")
	viper.SetDefault("DOCTOR_DIRECTORY_URL", "http://localhost:9081")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("AVAILABILITY_HORIZON_DAYS", 7)
	viper.SetDefault("CONSULTATION_FEE_FALLBACK", 100.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout returns the fixed timeout applied to every call against the
// Appointment Store and the Doctor Directory. There is no automatic retry.
func UpstreamTimeout() time.Duration {
	secs := AppConfig.UpstreamTimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// SessionTTL returns how long an idle booking or reschedule session survives.
func SessionTTL() time.Duration {
	mins := AppConfig.SessionTTLMinutes
	if mins <= 0 {
		mins = 30
	}
	return time.Duration(mins) * time.Minute
}
