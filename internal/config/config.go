package config

import (
	"time"

	"hnfetch/hackernews"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // text or json
}

// HackerNewsConfig controls the API client.
type HackerNewsConfig struct {
	BaseAPI        string        `mapstructure:"base_api"`
	Timeout        time.Duration `mapstructure:"timeout"`
	DefaultCount   int           `mapstructure:"default_count"`
	MaxConcurrency int           `mapstructure:"max_concurrency"` // negative = unbounded
	UserAgent      string        `mapstructure:"user_agent"`
}

// WatchConfig controls the listing watcher.
type WatchConfig struct {
	Lists    []string      `mapstructure:"lists"` // e.g., top,new,best,ask,show,job
	Interval time.Duration `mapstructure:"interval"`
	Count    int           `mapstructure:"count"`
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	HackerNews HackerNewsConfig `mapstructure:"hackernews"`
	Watch      WatchConfig      `mapstructure:"watch"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = "text"
	}
	if c.HackerNews.BaseAPI == "" {
		c.HackerNews.BaseAPI = hackernews.DefaultBaseAPI
	}
	if c.HackerNews.Timeout <= 0 {
		c.HackerNews.Timeout = 10 * time.Second
	}
	if c.HackerNews.DefaultCount <= 0 {
		c.HackerNews.DefaultCount = hackernews.DefaultCount
	}
	if c.HackerNews.MaxConcurrency == 0 {
		c.HackerNews.MaxConcurrency = 8
	}
	if c.HackerNews.UserAgent == "" {
		c.HackerNews.UserAgent = "hnfetch/1.0"
	}
	if len(c.Watch.Lists) == 0 {
		c.Watch.Lists = []string{"top"}
	}
	if c.Watch.Interval <= 0 {
		c.Watch.Interval = 10 * time.Minute
	}
	if c.Watch.Count <= 0 {
		c.Watch.Count = c.HackerNews.DefaultCount
	}
}

// ClientConfig converts the settings into a hackernews.Config.
func (c HackerNewsConfig) ClientConfig() hackernews.Config {
	return hackernews.Config{
		BaseAPI:        c.BaseAPI,
		DefaultCount:   c.DefaultCount,
		MaxConcurrency: c.MaxConcurrency,
		Timeout:        c.Timeout,
		UserAgent:      c.UserAgent,
	}
}
