package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("AUDIT_TOPIC", "")
	t.Setenv("POSTGRES_DSN", "")

	cfg := Load()
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "entry_rejected", cfg.AuditTopic)
	assert.Empty(t, cfg.PostgresDSN)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-a:9092, broker-b:9092,")
	t.Setenv("AUDIT_TOPIC", "rejections")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/ledger?sslmode=disable")

	cfg := Load()
	assert.Equal(t, []string{"broker-a:9092", "broker-b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "rejections", cfg.AuditTopic)
	assert.Equal(t, "postgres://localhost/ledger?sslmode=disable", cfg.PostgresDSN)
}
