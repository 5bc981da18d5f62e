package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Report  ReportConfig  `mapstructure:"report"`
}

// CatalogConfig describes where the catalog lives and how to read it.
// When URL is set it takes precedence over Path.
type CatalogConfig struct {
	Path       string `mapstructure:"path"`
	URL        string `mapstructure:"url"`
	Format     string `mapstructure:"format"`
	Timeout    int    `mapstructure:"timeout"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// ReportConfig controls sampling and which categories get a sample section
type ReportConfig struct {
	SampleLimit int      `mapstructure:"sample_limit"`
	Categories  []string `mapstructure:"categories"`
}

// Load loads configuration from YAML file with environment variable
// overrides. A missing config.yaml is fine: the tool must run on
// defaults alone.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Format {
	case "json", "html":
	default:
		return fmt.Errorf("unsupported catalog format %q", c.Catalog.Format)
	}

	if c.Catalog.Path == "" && c.Catalog.URL == "" {
		return fmt.Errorf("either catalog.path or catalog.url must be set")
	}

	if c.Report.SampleLimit < 0 {
		return fmt.Errorf("report.sample_limit must not be negative, got %d", c.Report.SampleLimit)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("catalog.path", "./sprite_lookup.json")
	viper.SetDefault("catalog.url", "")
	viper.SetDefault("catalog.format", "json")
	viper.SetDefault("catalog.timeout", 30)
	viper.SetDefault("catalog.max_retries", 3)

	viper.SetDefault("report.sample_limit", 10)
	viper.SetDefault("report.categories", []string{"weapons", "armor", "food", "resources"})
}
