// Command bench runs a synthetic workload against a cached attribute and
// exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vpavlin/cached-property/attr"
	pmet "github.com/vpavlin/cached-property/metrics/prom"
)

// owner is the benchmark's owning object; the payload is derived from id.
type owner struct {
	attr.Store
	id int
}

func main() {
	// ---- Flags ----
	var (
		owners  = flag.Int("owners", 10_000, "number of owner instances")
		guarded = flag.Bool("guarded", true, "serialize gets through the definition lock")
		ttl     = flag.Duration("ttl", 0, "attribute TTL (0 = never expires)")
		cost    = flag.Duration("cost", 50*time.Microsecond, "simulated computation cost")

		workers   = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration  = flag.Duration("duration", 10*time.Second, "benchmark duration")
		deletePct = flag.Int("deletes", 5, "delete percentage [0..100]; the rest are reads")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "cachedattr", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build the attribute under test ----
	var computes uint64
	costVal := *cost
	payload := attr.New("payload", func(o *owner) (int, error) {
		atomic.AddUint64(&computes, 1)
		if costVal > 0 {
			time.Sleep(costVal) // simulate expensive work
		}
		return o.id * 31, nil
	}, attr.Options{Guarded: *guarded, TTL: *ttl, Metrics: metrics})

	pool := make([]*owner, *owners)
	for i := range pool {
		pool[i] = &owner{id: i}
	}

	// ---- Snapshot flags for goroutines ----
	deletePctVal := *deletePct
	seedBase := *seed
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, deletes, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				o := pool[localR.Intn(len(pool))]
				if int(localR.Int31n(100)) < deletePctVal {
					atomic.AddUint64(&deletes, 1)
					payload.Delete(o)
				} else {
					atomic.AddUint64(&reads, 1)
					if _, err := payload.Get(o); err != nil {
						log.Fatalf("Get: %v", err)
					}
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	deletesN := atomic.LoadUint64(&deletes)
	computesN := atomic.LoadUint64(&computes)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(readsN-computesN) / float64(readsN) * 100
	}

	fmt.Printf("owners=%d guarded=%v ttl=%v workers=%d dur=%v seed=%d\n",
		*owners, *guarded, *ttl, workersN, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  deletes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, deletesN)
	fmt.Printf("computes=%d  hit-rate=%.2f%%\n", computesN, hitRate)
}
