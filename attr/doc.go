// Package attr provides lazily computed, cached attributes: a value bound
// to an owning object that is computed at most once per cache epoch and
// returned from storage on every later read, with optional TTL expiry,
// optional per-definition locking for concurrent first access, and
// optional cross-run persistence.
//
// Design
//
//   - Storage: values live on the owner itself, in an embedded Store
//     (per-instance map from attribute name to value + creation time).
//     Tying the value to the owner gives natural lifetime coupling: when
//     the owner goes away, so does the cached value, with no external
//     bookkeeping keyed by owner identity.
//
//   - Definitions: New builds one Attribute per cached field, holding the
//     computation, TTL, lock, and metrics. Definitions are shared across
//     all owners of the type; the values are not.
//
//   - TTL: entries carry a creation time (UnixNano). A read at elapsed
//     time >= TTL treats the entry as a miss, recomputes, and resets the
//     freshness clock. Zero TTL means the value never expires.
//
//   - Concurrency: by default an attribute is not safe for concurrent
//     first access (two cold readers may both compute). Options.Guarded
//     adds one mutex per definition — shared across all owners, a
//     deliberate coarse grain — so exactly one caller computes and the
//     rest block until the entry exists.
//
//   - Errors: a failed computation propagates unmodified and stores
//     nothing, so the cache is never poisoned; the next read retries.
//     The package itself never logs and never swallows an error.
//
//   - Persistence: Options.Persist mirrors values to a Persister (see
//     package persist for a JSON-file implementation) so they survive
//     process restarts. Best-effort: load failures read as a miss and a
//     failed write never fails a successful Get.
//
//   - Metrics: Options.Metrics receives Hit/Miss/ComputeError signals.
//     By default NoopMetrics is used; plug a Prometheus adapter to export.
//
// Basic usage
//
//	type Report struct {
//		attr.Store
//		Path string
//	}
//
//	var totals = attr.New("totals", func(r *Report) (int, error) {
//		return tallyFile(r.Path) // expensive; runs once per Report
//	}, attr.Options{})
//
//	r := &Report{Path: "q3.csv"}
//	v, err := totals.Get(r) // computes
//	v, err = totals.Get(r)  // cached
//	totals.Delete(r)        // next Get recomputes
//
// With TTL
//
//	var rate = attr.New("rate", fetchRate, attr.Options{TTL: time.Minute})
//
// Guarded (concurrent first access computes once)
//
//	var blob = attr.New("blob", loadBlob, attr.Options{Guarded: true})
//
// Exporting metrics (example Prometheus adapter)
//
//	m := prom.New(nil, "cachedattr", "demo", nil) // implements Metrics
//	var v = attr.New("v", compute, attr.Options{Metrics: m})
//
// See options.go for all available Options fields and package persist for
// the file-backed Persister.
package attr
