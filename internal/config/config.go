package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Data     DataConfig     `mapstructure:"data"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// DataConfig locates the local slot storage.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// DefaultsConfig seeds user-facing defaults.
type DefaultsConfig struct {
	RestSeconds int `mapstructure:"rest_seconds"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. server.address ->
	// SERVER_ADDRESS, data.dir -> DATA_DIR.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("defaults.rest_seconds", 60)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry the day.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}
	return config, nil
}
