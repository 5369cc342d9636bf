package events

import "github.com/davegarred/transactions/internal/interfaces"

// NopPublisher drops every event. Used when no audit brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(topic string, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NopPublisher{}
