package attr

import (
	"encoding/json"
	"sync"
	"time"
)

// attribute implements Attribute. The definition holds the computation and
// policy only; one value lives per (owner, name) pair, on the owner.
type attribute[O Owner, V any] struct {
	name    string
	compute ComputeFunc[O, V]
	opt     Options

	// mu is the per-definition lock for the guarded variant, shared across
	// all owners using this definition. Concurrent reads of the same
	// attribute on different owners serialize through it too. Nil when
	// Options.Guarded is false.
	mu *sync.Mutex
}

// New constructs an attribute definition named name, backed by compute.
// Defaults:
//   - nil Metrics => NoopMetrics
//   - nil Clock   => time.Now
//
// New panics if name is empty or compute is nil: both are definition-time
// misuse, not runtime conditions.
func New[O Owner, V any](name string, compute ComputeFunc[O, V], opt Options) Attribute[O, V] {
	if name == "" {
		panic("attr: empty attribute name")
	}
	if compute == nil {
		panic("attr: nil compute function")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	a := &attribute[O, V]{name: name, compute: compute, opt: opt}
	if opt.Guarded {
		a.mu = &sync.Mutex{}
	}
	// return pointer-to-impl as the interface (avoids unexported-return lint)
	return a
}

// Name returns the attribute name.
func (a *attribute[O, V]) Name() string { return a.name }

// Get returns the stored value for o, computing and installing it on a miss.
func (a *attribute[O, V]) Get(o O) (V, error) {
	if a.mu != nil {
		a.mu.Lock()
		// Released on every path, including compute failure.
		defer a.mu.Unlock()
	}
	st := o.CachedValues()

	reason := MissCold
	if e, ok := st.load(a.name); ok {
		if !a.expired(e.at) {
			a.opt.Metrics.Hit()
			return e.val.(V), nil
		}
		reason = MissExpired
	} else if v, at, ok := a.loadPersisted(); ok {
		// Fresh value from a previous run; adopt it with its original
		// creation time so the TTL window keeps counting from then.
		st.install(a.name, entry{val: v, at: at})
		a.opt.Metrics.Hit()
		return v, nil
	}
	a.opt.Metrics.Miss(reason)

	v, err := a.compute(o)
	if err != nil {
		// A failed computation stores nothing; the next Get retries.
		a.opt.Metrics.ComputeError()
		var zero V
		return zero, err
	}
	a.installValue(st, v, a.now())
	return v, nil
}

// Delete drops the stored value for o. It does not take the definition
// lock: a Delete racing an in-flight guarded compute may be overwritten by
// the compute's install, and callers needing strict ordering around that
// race must synchronize externally.
func (a *attribute[O, V]) Delete(o O) {
	o.CachedValues().remove(a.name)
	if p := a.opt.Persist; p != nil {
		_ = p.Remove(a.name) // best-effort, like the rest of persistence
	}
}

// Set installs v without invoking the computation, through the same write
// path as a computed value.
func (a *attribute[O, V]) Set(o O, v V) {
	a.installValue(o.CachedValues(), v, a.now())
}

// installValue is the single write path shared by Get and Set.
// The value and its creation time land as one whole entry.
func (a *attribute[O, V]) installValue(st *Store, v V, at int64) {
	st.install(a.name, entry{val: v, at: at})
	if p := a.opt.Persist; p != nil {
		if raw, err := json.Marshal(v); err == nil {
			_ = p.Store(a.name, raw, at)
		}
	}
}

// loadPersisted returns a still-fresh value from the external store, if any.
func (a *attribute[O, V]) loadPersisted() (V, int64, bool) {
	var zero V
	p := a.opt.Persist
	if p == nil {
		return zero, 0, false
	}
	raw, at, ok := p.Load(a.name)
	if !ok || a.expired(at) {
		return zero, 0, false
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		// Corrupt or incompatible stored value reads as a miss.
		return zero, 0, false
	}
	return v, at, true
}

// expired reports whether an entry created at the given UnixNano time has
// outlived the TTL. elapsed >= TTL expires; the boundary instant included.
func (a *attribute[O, V]) expired(at int64) bool {
	if a.opt.TTL <= 0 {
		return false
	}
	return a.now()-at >= int64(a.opt.TTL)
}

func (a *attribute[O, V]) now() int64 {
	if a.opt.Clock != nil {
		return a.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}
