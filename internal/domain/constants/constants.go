// Package constants contains values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by config.PubSubConfig.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Currency is the only currency quotes are produced in.
const Currency = "EUR"

// RolePricingAdmin is the JWT role allowed to change prices and regenerate feeds.
const RolePricingAdmin = "pricing-admin"
