package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Server struct {
		Port        int `mapstructure:"port" yaml:"port"`
		BodyLimitMB int `mapstructure:"body_limit_mb" yaml:"body_limit_mb"`
		MaxTxEchoed int `mapstructure:"max_tx_echoed" yaml:"max_tx_echoed"`
	} `mapstructure:"server" yaml:"server"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config.yaml ($HOME/.mpesa-csv, .mpesa-csv, .), then MPESA_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.mpesa-csv")
	v.AddConfigPath(".mpesa-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MPESA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not stop the tool; defaults and env
			// vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.body_limit_mb", 16)
	v.SetDefault("server.max_tx_echoed", 500)
}

func validateConfig(config *Config) error {
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", config.Log.Format)
	}

	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log.level %q is not a valid level", config.Log.Level)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", config.Server.Port)
	}
	if config.Server.BodyLimitMB < 1 {
		return fmt.Errorf("server.body_limit_mb must be positive, got %d", config.Server.BodyLimitMB)
	}

	return nil
}

// ConfigureLoggingFromConfig applies the Log section of a Config to the
// global logger and returns it.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if config.Log.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}
