package config

import (
	"fmt"
	"reflect"
	"strings"

	"poc-availability/core/database"
	"poc-availability/core/logger"
	"poc-availability/core/middleware/ratelimit"
	"poc-availability/core/server"
	"poc-availability/core/storage"
	"poc-availability/feature/availability"
	"poc-availability/feature/snapshot"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the scheduling database.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the object storage used by snapshots.
	Storage storage.Config `mapstructure:"storage"`
	// Availability holds configuration for the availability reconciler.
	Availability availability.Config `mapstructure:"availability"`
	// Snapshot holds configuration for report snapshot exports.
	Snapshot snapshot.Config `mapstructure:"snapshot"`
	// RateLimit holds configuration for per-client request limiting.
	RateLimit ratelimit.Config `mapstructure:"ratelimit"`
}

// LoadConfig loads configuration from environment variables and a .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside development
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Register every key with its default so AutomaticEnv can resolve it
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the sections that cannot be safely defaulted at use time.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Availability.Validate(); err != nil {
		return fmt.Errorf("availability: %w", err)
	}
	if err := c.Snapshot.Validate(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// bindValues walks the struct and sets Viper defaults from the 'default' and
// 'mapstructure' tags, recursing into nested structs.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default, even if empty, to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
