// Package strpool implements an append-only string arena for Go.
//
// # Overview
//
// A Pool holds many strings contiguously in one fixed-size buffer. Each
// string is followed by a single zero terminator and is addressed by a Ref,
// an offset and length pair that does not own its bytes. The pool never frees
// or compacts: every operation either appends a new entry or rewrites bytes
// of an existing one in place.
//
// # Basic Usage
//
//	p := strpool.New(0) // Use default capacity
//	defer p.Release()
//
//	head := p.AppendString("head")
//	fmt.Println(p.String(head))
//
//	// In place: every Ref aliasing head observes the change
//	p.ReplaceAt(head, 0, 'd')
//
//	// New entries: the old bytes stay behind as dead space
//	rend := p.Prepend(p.AppendString("end"), 'r')
//
// # Aliasing
//
// DeleteAt, ReplaceAt and the in-place regimes of Move write through to the
// buffer. A Ref's content is whatever its bytes are at the time of the call,
// so equality between Refs is structural and only valid at call time. The
// caller must hold the only live view of bytes it mutates.
//
// Move transfers ownership: the source Ref is invalidated and any later use
// of it panics.
//
// # Capacity
//
// Capacity is fixed at construction. Append panics with ErrOverflow when the
// buffer would be exhausted; TryAppend returns the same error instead. There
// is no growth: overflow is meant to end the run.
//
// # Epochs
//
// Reset rewinds the pool and bumps its generation. Refs carry the generation
// they were created in and panic when used in a later epoch.
//
// # Thread Safety
//
// Pool is not thread-safe. SafePool serializes every operation behind a mutex.
//
// # Metrics and Monitoring
//
//	m := p.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Strings: %d\n", m.Count)
package strpool
