package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Feed   FeedConfig   `mapstructure:"feed"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Cart   CartConfig   `mapstructure:"cart"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// FeedConfig holds catalog feed configuration
type FeedConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Resource is the file name of the catalog document; candidate URLs are
	// derived from it unless Candidates overrides the list entirely.
	Resource   string   `mapstructure:"resource"`
	Candidates []string `mapstructure:"candidates"`
	Timeout    int      `mapstructure:"timeout"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// CartConfig holds cart defaults
type CartConfig struct {
	Shipping float64 `mapstructure:"shipping"`
	Discount float64 `mapstructure:"discount"`
}

// SearchConfig holds search engine configuration
type SearchConfig struct {
	MaxHistory     int      `mapstructure:"max_history"`
	MaxSuggestions int      `mapstructure:"max_suggestions"`
	Vocabulary     []string `mapstructure:"vocabulary"`
	HotKeywords    []string `mapstructure:"hot_keywords"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from YAML file with environment variable overrides
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
		// No config.yaml is fine, defaults plus env overrides apply.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// CandidateURLs returns the ordered list of feed locations to try. The order
// defines the fallback chain: root, static and data directory variants of the
// same resource.
func (f FeedConfig) CandidateURLs() []string {
	if len(f.Candidates) > 0 {
		return f.Candidates
	}

	base := strings.TrimRight(f.BaseURL, "/")
	return []string{
		base + "/" + f.Resource,
		base + "/static/" + f.Resource,
		base + "/data/" + f.Resource,
	}
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")

	viper.SetDefault("feed.base_url", "http://localhost:5173")
	viper.SetDefault("feed.resource", "goods.json")
	viper.SetDefault("feed.timeout", 3)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)
	viper.SetDefault("redis.key_prefix", "storefront:")

	viper.SetDefault("cart.shipping", 0.0)
	viper.SetDefault("cart.discount", 0.0)

	viper.SetDefault("search.max_history", 10)
	viper.SetDefault("search.max_suggestions", 5)
	viper.SetDefault("search.vocabulary", []string{
		"手机", "电脑", "平板", "耳机",
		"衣服", "鞋子", "包包",
		"食品", "饮料", "零食",
	})
	viper.SetDefault("search.hot_keywords", []string{
		"手机", "电脑", "耳机", "键盘",
		"衣服", "鞋子", "包包", "化妆品",
		"食品", "饮料", "零食", "平板",
	})

	viper.SetDefault("log.level", "info")
}
