package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ROOMS_FEED_URL", "http://feeds.local/rooms.xml")
	t.Setenv("BOOKINGS_FEED_URL", "http://feeds.local/bookings.xml")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.Equal(t, "./data/pending_bookings.json", cfg.StorePath)
}

func TestLoadRequiresFeedURLs(t *testing.T) {
	t.Setenv("ROOMS_FEED_URL", "")
	t.Setenv("BOOKINGS_FEED_URL", "http://feeds.local/bookings.xml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("FEED_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://hotel.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "https://hotel.example", cfg.ProdOrigins)
}
