// Package constants contains identifiers shared across layers that are not business entities.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through config.pubsub.provider.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Database drivers selectable through config.database.driver.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)
