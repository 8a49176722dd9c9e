package attr

import (
	"strings"
	"testing"
)

// Fuzz the Set/Get/Delete lifecycle under arbitrary attribute names and
// values. Guards against panics and checks the core invariants: a set
// value reads back verbatim, delete empties the store, and the next read
// recomputes.
func FuzzAttr_SetGetDelete(f *testing.F) {
	// Seed corpus: ASCII, Unicode, long strings.
	f.Add("a", "1")
	f.Add("totals", "")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, name, v string) {
		if name == "" {
			name = "n" // empty names are rejected at definition time
		}

		computed := "computed:" + v
		a := New(name, func(r *report) (string, error) {
			return computed, nil
		}, Options{})
		r := &report{}

		// Set -> Get must return the value verbatim, without computing.
		a.Set(r, v)
		got, err := a.Get(r)
		if err != nil || got != v {
			t.Fatalf("after Set/Get: want %q, got %q err=%v", v, got, err)
		}

		// Delete empties the store; the next read computes.
		a.Delete(r)
		if r.Len() != 0 {
			t.Fatalf("store must be empty after Delete, len=%d", r.Len())
		}
		got, err = a.Get(r)
		if err != nil || got != computed {
			t.Fatalf("after Delete/Get: want %q, got %q err=%v", computed, got, err)
		}

		// Delete of an absent entry stays a no-op.
		a.Delete(r)
		a.Delete(r)
		if r.Len() != 0 {
			t.Fatalf("store must be empty, len=%d", r.Len())
		}
	})
}
