package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort     = "5000"
	DefaultDBHost   = "cluster.1pa94km.mongodb.net"
	DefaultTokenTTL = time.Hour
)

// Config holds all configuration values.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB connection.
	DBUser       string `mapstructure:"DB_USER"`
	DBPass       string `mapstructure:"DB_PASS"`
	DBHost       string `mapstructure:"DB_HOST"`
	DBConnString string `mapstructure:"MONGODB_CONNSTRING"`

	ServicesDB         string `mapstructure:"SERVICES_DB"`
	ServicesCollection string `mapstructure:"SERVICES_COLLECTION"`
	BookingsDB         string `mapstructure:"BOOKINGS_DB"`
	BookingsCollection string `mapstructure:"BOOKINGS_COLLECTION"`

	// Bearer tokens.
	AccessTokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenTTL    time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
}

// Load reads an optional .env file, then the environment, on top of defaults.
func Load() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", DefaultDBHost)
	v.SetDefault("MONGODB_CONNSTRING", "")
	v.SetDefault("SERVICES_DB", "carDoctor")
	v.SetDefault("SERVICES_COLLECTION", "services")
	v.SetDefault("BOOKINGS_DB", "bookingsDB")
	v.SetDefault("BOOKINGS_COLLECTION", "bookings")
	v.SetDefault("ACCESS_TOKEN_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TTL", DefaultTokenTTL)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.AccessTokenSecret == "" {
		return Config{}, fmt.Errorf("no env variable with key %v", "ACCESS_TOKEN_SECRET")
	}

	return cfg, nil
}

// MongoURI returns MONGODB_CONNSTRING when set, otherwise the Atlas SRV
// URI assembled from the DB_* credentials.
func (c Config) MongoURI() string {
	if c.DBConnString != "" {
		return c.DBConnString
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) ListenAddr() string {
	return ":" + c.Port
}
