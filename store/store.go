package store

// Persisted collection keys. One JSON document per key.
const (
	KeySession  = "currentSession"
	KeyUsers    = "registeredUsers"
	KeyOrders   = "orders"
	KeyServices = "appServices"
	KeySettings = "appSettings"
)

// Store is the shared key-value state backing the storefront. Every mutation
// to an in-memory collection is written back through Save before the
// operation completes, so a restart or a second consumer sees consistent
// data. Writes are last-writer-wins; there is no merging.
type Store interface {
	// Load unmarshals the value persisted under key into the given pointer.
	// A missing or unparsable value reports found=false and is never a hard
	// failure; callers fall back to their defaults.
	Load(key string, into any) (found bool, err error)

	// LoadRaw returns the raw persisted bytes for key, if any.
	LoadRaw(key string) ([]byte, bool)

	// Save marshals value and persists it under key, then notifies
	// subscribers of that key.
	Save(key string, value any) error

	// Delete removes the value under key, then notifies subscribers.
	Delete(key string) error

	// Subscribe registers fn to run after every Save or Delete of key.
	// The returned function cancels the subscription. This is how open
	// views converge on a catalog changed elsewhere.
	Subscribe(key string, fn func()) (cancel func())
}
