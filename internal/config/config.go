package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config describes the runtime settings of the scoreboard CLI.
//
// Load it once in main, validate, and pass it down; nothing reads viper after
// that.
type Config struct {
	Env string `mapstructure:"env"` // dev|stage|prod

	Log struct {
		Format string `mapstructure:"format"` // text|json
		Level  string `mapstructure:"level"`  // debug|info|warn|error
	} `mapstructure:"log"`

	// Redis is optional: with an empty Addr the event feed is not published.
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Board    string `mapstructure:"board"`
	} `mapstructure:"redis"`

	Feed struct {
		Buffer    int  `mapstructure:"buffer"`
		LogEvents bool `mapstructure:"log_events"`
	} `mapstructure:"feed"`

	Replay struct {
		StopOnError bool `mapstructure:"stop_on_error"`
	} `mapstructure:"replay"`
}

// SetDefaults registers every key so that environment variables such as
// LOG_FORMAT or REDIS_ADDR override it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.board", "default")
	v.SetDefault("feed.buffer", 256)
	v.SetDefault("feed.log_events", false)
	v.SetDefault("replay.stop_on_error", false)
}

// Load reads configuration from v: defaults, then the config file (if one
// was set on v), then the environment. Flags bound to v win over all of them.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV")

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Redis.Addr != "" && c.Redis.Board == "" {
		return errors.New("REDIS_BOARD is empty")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must be >= 0, got %d", c.Redis.DB)
	}
	if c.Feed.Buffer <= 0 {
		return fmt.Errorf("FEED_BUFFER must be > 0, got %d", c.Feed.Buffer)
	}
	return nil
}
