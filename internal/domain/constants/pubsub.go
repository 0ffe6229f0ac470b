// Package constants holds domain-wide constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
