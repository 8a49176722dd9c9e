package attr

// Attribute is a lazily computed value bound to an owning object.
// The definition is created once (per attribute, not per owner) and holds
// the computation plus policy; the values themselves live on each owner.
//
// Unless Options.Guarded is set, an attribute is NOT safe for concurrent
// first access: two goroutines racing a cold read may both compute. Reads
// of an already-stored entry never observe it partially written either way.
type Attribute[O Owner, V any] interface {
	// Name returns the attribute name used as the storage key on owners.
	Name() string

	// Get returns the value for o, computing and storing it on first
	// access (and again after Delete or TTL expiry). Between two reads
	// with no intervening Delete/expiry the returned value is identical.
	// A failed computation propagates its error unmodified and stores
	// nothing, so the next Get retries from scratch.
	Get(o O) (V, error)

	// Delete drops the stored value for o, if any; the next Get
	// recomputes. Deleting an absent entry is a no-op, not an error.
	Delete(o O)

	// Set installs v directly, bypassing the computation. It uses the
	// identical storage path as Get, so later reads are indistinguishable
	// from computed ones. Useful for seeding and tests.
	Set(o O, v V)
}

// Owner is the capability an owning type must provide: per-instance
// storage for cached attribute values. Embedding a Store in the owner
// struct satisfies it for the pointer type.
type Owner interface {
	CachedValues() *Store
}

// ComputeFunc produces the attribute value for an owner. For a given
// cache epoch it runs at most once; it runs again after Delete or expiry.
type ComputeFunc[O Owner, V any] func(o O) (V, error)

// Persister mirrors stored attribute values outside the owner instance so
// they survive process restarts. Values are carried as raw JSON alongside
// their creation time (UnixNano).
//
// Persistence is best-effort by contract: a Load failure reads as a miss,
// and a failed Store never fails a Get whose computation succeeded — the
// in-memory entry stays authoritative.
type Persister interface {
	// Load returns the stored value and its creation time, if present.
	Load(name string) (raw []byte, at int64, ok bool)

	// Store records a value under the attribute name, replacing any
	// previous one.
	Store(name string, raw []byte, at int64) error

	// Remove drops the stored value, if present.
	Remove(name string) error
}
