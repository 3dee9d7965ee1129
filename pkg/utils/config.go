package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Auth     AuthConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name                   string
	Port                   string
	Debug                  bool
	LogPath                string
	CORSAllowedOrigin      string
	ShutdownTimeoutSeconds int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Migrate  bool
}

type SessionConfig struct {
	ExpiryHours int
}

// AllowTrainerSignup lets /api/register create trainer accounts. It is off
// by default; trainers are then provisioned directly in the database.
type AuthConfig struct {
	BcryptCost         int
	AllowTrainerSignup bool
}

// BookingConfig holds the booking policy switches.
// TrainerVisibility is "assigned" (trainers see their own roster) or
// "global" (every trainer sees every booking).
type BookingConfig struct {
	TrainerVisibility string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "pt-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ALLOWED_ORIGIN", "*")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("ALLOW_TRAINER_SIGNUP", false)
	viper.SetDefault("TRAINER_VISIBILITY", "assigned")

	// .env is optional, the process environment always wins
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:                   viper.GetString("APP_NAME"),
			Port:                   viper.GetString("PORT"),
			Debug:                  viper.GetBool("DEBUG"),
			LogPath:                viper.GetString("LOG_PATH"),
			CORSAllowedOrigin:      viper.GetString("CORS_ALLOWED_ORIGIN"),
			ShutdownTimeoutSeconds: viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			BcryptCost:         viper.GetInt("BCRYPT_COST"),
			AllowTrainerSignup: viper.GetBool("ALLOW_TRAINER_SIGNUP"),
		},
		Booking: BookingConfig{
			TrainerVisibility: strings.ToLower(strings.TrimSpace(viper.GetString("TRAINER_VISIBILITY"))),
		},
	}

	return config, nil
}
