package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	Timezone  string
	Locale    string
	LogLevel  string
	LogFormat string
	ExportDir string
}

// Load reads settings from the environment and, when cfgFile is set, from
// that file. Environment variables win over the file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("REVIEW_TIMEZONE", "Asia/Ho_Chi_Minh")
	v.SetDefault("REVIEW_LOCALE", "vi-VN")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("EXPORT_DIR", "./out")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{
		Timezone:  v.GetString("REVIEW_TIMEZONE"),
		Locale:    v.GetString("REVIEW_LOCALE"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		ExportDir: v.GetString("EXPORT_DIR"),
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves Timezone. An empty value means the process local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("REVIEW_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
