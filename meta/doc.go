// Package meta provides the metadata container threaded through context
// pipelines: a single primary value of generic type plus a string-keyed
// side channel for arbitrary payloads.
//
// Reads are typed at the call site:
//
//	c := meta.New(order)
//	c.Set("attempt", 2)
//	attempt, err := meta.Get[int](c, "attempt")
//
// A read of an absent key yields the zero value with no error; a read of a
// present key whose payload has a different concrete type fails with a
// TYPE_MISMATCH error rather than silently returning the zero value.
//
// Containers are created fresh per pipeline run and are not synchronized;
// a run is a single flow of control.
package meta
