package kafka

import "time"

// Config holds Kafka connection parameters for alert publishing.
type Config struct {
	// ClientID identifies this process to the brokers.
	ClientID string

	Brokers []string

	// WriteTimeout bounds a single publish call. Zero means the kafka-go default.
	WriteTimeout time.Duration
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}
