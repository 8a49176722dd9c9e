package attr

import "time"

// Reason explains why a Get missed the stored entry.
type Reason int

const (
	// MissCold — no entry was present (first read, or first after Delete).
	MissCold Reason = iota
	// MissExpired — an entry was present but its TTL had elapsed.
	MissExpired
)

// Metrics exposes attribute-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss(reason Reason)
	ComputeError()
}

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures an attribute definition. Zero values are safe;
// sane defaults are applied in New():
//   - nil Metrics => NoopMetrics
//   - nil Clock   => time.Now
type Options struct {
	// TTL bounds the lifetime of a stored value. A read at elapsed time
	// >= TTL recomputes and resets the freshness clock; the boundary
	// instant itself is already expired. 0 = never expires.
	TTL time.Duration

	// Guarded serializes Get through one mutex per attribute definition,
	// shared across ALL owners using it (coarse on purpose: correctness
	// over maximum parallelism). Under concurrent first access exactly
	// one caller computes; the rest block, then read the stored entry.
	// Thread-safety is chosen here, at definition time, not at runtime.
	Guarded bool

	// Metrics receives hit/miss/error signals. Nil => NoopMetrics.
	Metrics Metrics

	// Clock allows overriding the time source (tests). Nil => time.Now().
	Clock Clock

	// Persist mirrors stored values to an external store (e.g. a JSON
	// file) so they survive process restarts. Requires V to round-trip
	// through encoding/json. Nil disables persistence.
	Persist Persister
}
