package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything tunable at deploy time. Values come from an
// optional config file and LOAN_ADVISOR_* environment variables, env wins.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	RedisAddr string `mapstructure:"redis_addr"`

	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	RateLimitRefill time.Duration `mapstructure:"rate_limit_refill"`

	MaxDSRPct float64 `mapstructure:"max_dsr_pct"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads the configuration. path may be empty; only env and defaults
// apply then.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 30*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("redis_addr", "")
	v.SetDefault("rate_limit_burst", 20)
	v.SetDefault("rate_limit_refill", time.Minute)
	v.SetDefault("max_dsr_pct", 60.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix("LOAN_ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
