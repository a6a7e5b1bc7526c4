// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub for event publishing.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP endpoint publisher.
	PubSubProviderLocal = "local"

	// StoreProviderFirestore selects the Cloud Firestore document store.
	StoreProviderFirestore = "firestore"
	// StoreProviderBadger selects the embedded Badger document store.
	StoreProviderBadger = "badger"
)
