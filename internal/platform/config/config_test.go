package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LIST_SERVICE_URL", "http://lists.internal")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 72*time.Hour, cfg.ReservationWindow)
	assert.Equal(t, 3, cfg.ListService.RetryMax)
	assert.Equal(t, "babylist.views", cfg.Kafka.ViewTopic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.OTelEnabled)
	assert.Equal(t, 120, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LIST_SERVICE_URL", "http://lists.internal")
	t.Setenv("BABYLIST_ADDR", ":9090")
	t.Setenv("RESERVATION_WINDOW", "48h")
	t.Setenv("LIST_SERVICE_RETRY_MAX", "5")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("BABYLIST_BLACKLIST", "0042000999")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 48*time.Hour, cfg.ReservationWindow)
	assert.Equal(t, 5, cfg.ListService.RetryMax)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.OTelEnabled)
	assert.Equal(t, "0042000999", cfg.Blacklist)
}

func TestFromEnvErrors(t *testing.T) {
	t.Run("list service url is required", func(t *testing.T) {
		t.Setenv("LIST_SERVICE_URL", "")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "LIST_SERVICE_URL")
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("LIST_SERVICE_URL", "http://lists.internal")
		t.Setenv("RESERVATION_WINDOW", "three days")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "RESERVATION_WINDOW")
	})
}
