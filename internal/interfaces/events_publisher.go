package interfaces

// EventPublisher carries audit events (rejected entries) out of the engine.
// Publishing is best-effort: a failed publish is logged by the caller and
// never affects batch processing.
type EventPublisher interface {
	Publish(topic string, event any) error
}
