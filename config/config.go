package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// User is one static API credential. PasswordHash is a bcrypt hash.
type User struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// Config holds all service settings.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	LogLevel string `mapstructure:"log_level"`
	ENV      string `mapstructure:"env"`

	Server struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"server"`

	Spanner struct {
		// Database is the full path: projects/<p>/instances/<i>/databases/<d>.
		Database string `mapstructure:"database"`
	} `mapstructure:"spanner"`

	Redis struct {
		// Empty Addr disables the product cache entirely.
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`

	Security struct {
		JWTSecret string        `mapstructure:"jwt_secret"`
		JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
		Users     []User        `mapstructure:"users"`
	} `mapstructure:"security"`

	Recon struct {
		Enabled  bool          `mapstructure:"enabled"`
		Interval time.Duration `mapstructure:"interval"`
	} `mapstructure:"recon"`

	Inventory struct {
		LowStockThreshold int64 `mapstructure:"low_stock_threshold"`
	} `mapstructure:"inventory"`
}

// Load reads config.yaml (if present) and the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Spanner.Database == "" {
		return nil, fmt.Errorf("spanner.database is required")
	}
	if cfg.Security.JWTSecret == "" {
		return nil, fmt.Errorf("security.jwt_secret is required")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "inventory-service")
	v.SetDefault("log_level", "info")
	v.SetDefault("env", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.request_timeout", "30s")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	v.SetDefault("security.jwt_ttl", "1h")

	v.SetDefault("recon.enabled", true)
	v.SetDefault("recon.interval", "15m")

	v.SetDefault("inventory.low_stock_threshold", 10)
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("app_name", "APP_NAME")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("env", "APP_ENV")

	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	v.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")
	v.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	v.BindEnv("server.request_timeout", "SERVER_REQUEST_TIMEOUT")

	v.BindEnv("spanner.database", "SPANNER_DATABASE")

	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.ttl", "REDIS_TTL")

	v.BindEnv("security.jwt_secret", "JWT_SECRET")
	v.BindEnv("security.jwt_ttl", "JWT_TTL")

	v.BindEnv("recon.enabled", "RECON_ENABLED")
	v.BindEnv("recon.interval", "RECON_INTERVAL")

	v.BindEnv("inventory.low_stock_threshold", "LOW_STOCK_THRESHOLD")
}
