package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAuditTopic = "entry_rejected"

// Config holds the optional collaborator settings. Every field may be empty:
// no brokers disables the audit stream, no DSN disables snapshot export.
type Config struct {
	KafkaBrokers []string
	AuditTopic   string
	PostgresDSN  string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load() // a missing .env is not an error

	cfg := Config{
		AuditTopic:  defaultAuditTopic,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
	}
	if topic := os.Getenv("AUDIT_TOPIC"); topic != "" {
		cfg.AuditTopic = topic
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}
