// Ininicializing common application configuration
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

type ServerConfig struct {
	AppVersion   string        `mapstructure:"app_version"`
	Port         string        `mapstructure:"port"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Idle_timeout time.Duration `mapstructure:"idle_timeout"`
	Env          string        `mapstructure:"env"`
	Mode         string        `mapstructure:"mode"`
}

// UpstreamConfig describes the third-party website probed by /api/status.
type UpstreamConfig struct {
	Website   string        `mapstructure:"website"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func LoadConfig() (*viper.Viper, error) {
	// .env is optional
	_ = godotenv.Load()

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	setDefaults(viperInstance)
	if err := bindEnv(viperInstance); err != nil {
		return nil, err
	}

	err := viperInstance.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// A bare number such as UPSTREAM_TIMEOUT=10 decodes as nanoseconds, so
// anything under a millisecond is rejected.
func (c *Config) validate() error {
	if c.Upstream.Timeout < time.Millisecond {
		return fmt.Errorf("upstream.timeout must be at least 1ms (use a unit, e.g. 10s), got %s", c.Upstream.Timeout)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.app_version", "1.0.0")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("upstream.website", "https://ezgif.com")
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.user_agent", DefaultUserAgent)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "conversion-requests")
}

func bindEnv(v *viper.Viper) error {
	bindings := [][]string{
		{"server.port", "PORT"},
		{"server.env", "APP_ENV", "NODE_ENV"},
		{"server.mode", "GIN_MODE"},
		{"server.timeout", "SERVER_TIMEOUT"},
		{"server.idle_timeout", "SERVER_IDLE_TIMEOUT"},
		{"upstream.website", "UPSTREAM_WEBSITE"},
		{"upstream.timeout", "UPSTREAM_TIMEOUT"},
		{"upstream.user_agent", "UPSTREAM_USER_AGENT"},
		{"kafka.brokers", "KAFKA_BROKERS"},
		{"kafka.topic", "KAFKA_TOPIC"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b...); err != nil {
			return fmt.Errorf("bind env for %s: %w", b[0], err)
		}
	}
	return nil
}
