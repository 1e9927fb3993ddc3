package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for sale events.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Outcome labels shared by logs, metrics and events.
const (
	OutcomeDelivered     = "delivered"
	OutcomeQueuedLocally = "queued_locally"
)
