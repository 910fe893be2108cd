package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Security  SecurityConfig  `mapstructure:"security"`
	Sanitizer SanitizerConfig `mapstructure:"sanitizer"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Monitor   MonitorConfig   `mapstructure:"monitor"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

// SecurityConfig drives the response-header middleware.
type SecurityConfig struct {
	PolicyPreset       string `mapstructure:"policy_preset"`
	FrameDeny          bool   `mapstructure:"frame_deny"`
	ContentTypeNosniff bool   `mapstructure:"content_type_nosniff"`
	ReferrerPolicy     string `mapstructure:"referrer_policy"`
}

// SanitizerConfig selects the default sanitization profile applied when a
// request carries no options.
type SanitizerConfig struct {
	Profile string `mapstructure:"profile"`
}

type UploadConfig struct {
	AllowedTypes []string `mapstructure:"allowed_types"`
	MaxSize      int64    `mapstructure:"max_size"`
}

type MonitorConfig struct {
	Capacity int `mapstructure:"capacity"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Security.PolicyPreset == "" {
		globalConfig.Security.PolicyPreset = "strict"
	}
	if globalConfig.Security.ReferrerPolicy == "" {
		globalConfig.Security.ReferrerPolicy = "strict-origin-when-cross-origin"
	}
	if globalConfig.Sanitizer.Profile == "" {
		globalConfig.Sanitizer.Profile = "default"
	}
	if globalConfig.Upload.MaxSize == 0 {
		globalConfig.Upload.MaxSize = 10 << 20
	}
	if globalConfig.Monitor.Capacity == 0 {
		globalConfig.Monitor.Capacity = 100
	}
}

func GetConfig() *Config {
	return &globalConfig
}
