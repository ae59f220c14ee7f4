package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()

	assert.Equal(t, "info", c.App.LogLevel)
	assert.Equal(t, "text", c.App.LogFormat)
	assert.Equal(t, "https://hacker-news.firebaseio.com/v0", c.HackerNews.BaseAPI)
	assert.Equal(t, 10*time.Second, c.HackerNews.Timeout)
	assert.Equal(t, 10, c.HackerNews.DefaultCount)
	assert.Equal(t, 8, c.HackerNews.MaxConcurrency)
	assert.Equal(t, []string{"top"}, c.Watch.Lists)
	assert.Equal(t, 10*time.Minute, c.Watch.Interval)
	assert.Equal(t, 10, c.Watch.Count)
}

func TestFillDefaultsKeepsValues(t *testing.T) {
	c := Config{
		HackerNews: HackerNewsConfig{DefaultCount: 25, MaxConcurrency: -1},
		Watch:      WatchConfig{Lists: []string{"ask", "show"}},
	}
	c.FillDefaults()

	assert.Equal(t, 25, c.HackerNews.DefaultCount)
	assert.Equal(t, -1, c.HackerNews.MaxConcurrency)
	assert.Equal(t, 25, c.Watch.Count)
	assert.Equal(t, []string{"ask", "show"}, c.Watch.Lists)

	cc := c.HackerNews.ClientConfig()
	assert.Equal(t, 25, cc.DefaultCount)
	assert.Equal(t, -1, cc.MaxConcurrency)
}
