package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "pptquiz"
	envPrefix  = "PPTQUIZ"
)

type Config struct {
	InputRoot  string
	OutputPath string
	Extensions []string
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads pptquiz.yaml from the given directories (the working directory when none
// are given) and applies PPTQUIZ_* environment overrides on top of the defaults.
// A missing file is not an error.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("input_root", "data")
	v.SetDefault("output_path", "database/BULK-QUIZ-INSERTS.sql")
	v.SetDefault("extensions", []string{".pptx", ".ppt"})
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		InputRoot:  v.GetString("input_root"),
		OutputPath: v.GetString("output_path"),
		Extensions: v.GetStringSlice("extensions"),
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects empty paths and normalises extensions to lowercase with a leading dot.
// Comma separated entries, as given through the environment, are split.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputRoot) == "" {
		return errors.New("input_root must not be empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("output_path must not be empty")
	}

	var exts []string
	seen := make(map[string]bool)
	for _, raw := range c.Extensions {
		for _, ext := range strings.Split(raw, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	if len(exts) == 0 {
		return errors.New("at least one deck extension is required")
	}
	c.Extensions = exts
	return nil
}
