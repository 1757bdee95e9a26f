// Package strpool implements an append-only string arena.
// Typical usage: create one pool per process, append every word into it,
// and pass Refs around instead of strings.
package strpool

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the default buffer size for new pools.
const DefaultCapacity = 19333

// terminator follows every stored string.
const terminator = 0

// ErrOverflow is the panic value (and TryAppend error) raised when a write
// would reach the end of the pool's buffer.
var ErrOverflow = errors.New("strpool: buffer overflow")

// Ref is a view of one string stored in a Pool. It does not own the bytes:
// any operation rewriting the bytes at its offset is observed by every Ref
// aliasing that offset.
type Ref struct {
	off int
	n   int
	gen uint32
}

// Offset returns the position of the first byte of the view.
func (r Ref) Offset() int { return r.off }

// Len returns the logical length of the view.
func (r Ref) Len() int { return r.n }

// Valid reports whether r was produced by a pool and has not been consumed by Move.
func (r Ref) Valid() bool { return r.gen != 0 && r.off >= 0 }

// Pool is a fixed-capacity bump arena for strings. Not goroutine-safe.
// Use SafePool for concurrent access.
type Pool struct {
	buf   []byte
	sp    int // next free offset, always at a zero byte
	count int
	gen   uint32
}

// New creates a Pool with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		buf: make([]byte, capacity),
		gen: 1,
	}
}

// Append copies b plus a terminator to the end of the pool and returns a Ref
// covering the copied bytes. It panics with ErrOverflow if the pool is full.
func (p *Pool) Append(b []byte) Ref {
	r, err := p.appendParts(b)
	if err != nil {
		panic(err)
	}
	return r
}

// AppendString is Append for strings.
func (p *Pool) AppendString(s string) Ref {
	return p.Append([]byte(s))
}

// TryAppend is Append returning an error instead of panicking.
// Nothing is written when the error is non-nil.
func (p *Pool) TryAppend(b []byte) (Ref, error) {
	return p.appendParts(b)
}

// appendParts appends the concatenation of parts as one entry.
// Parts may alias existing entries: they all live below the cursor.
func (p *Pool) appendParts(parts ...[]byte) (Ref, error) {
	p.panicIfReleased()
	n := 0
	for _, part := range parts {
		n += len(part)
	}
	if p.sp+n+1 >= len(p.buf) {
		return Ref{}, fmt.Errorf("%w: %d bytes requested, %d free", ErrOverflow, n+1, p.Free())
	}
	start := p.sp
	at := start
	for _, part := range parts {
		at += copy(p.buf[at:], part)
	}
	p.buf[at] = terminator
	p.sp = at + 1
	p.count++
	return Ref{off: start, n: n, gen: p.gen}, nil
}

// Bytes returns the bytes denoted by r, backed directly by the pool.
// The slice has capacity r.Len()+1 so the terminator is reachable by
// reslicing. Writes through it mutate every aliasing Ref.
func (p *Pool) Bytes(r Ref) []byte {
	p.check(r)
	return p.buf[r.off : r.off+r.n : r.off+r.n+1]
}

// String returns a copy of the bytes denoted by r.
func (p *Pool) String(r Ref) string {
	return string(p.Bytes(r))
}

// Debug renders r the way the pool sees it: offset, length, then every byte
// up to the terminator.
func (p *Pool) Debug(r Ref) string {
	p.check(r)
	s := fmt.Sprintf("{.off=%d, .len=%d} ", r.off, r.n)
	for i := r.off; i < len(p.buf) && p.buf[i] != terminator; i++ {
		s += fmt.Sprintf("'%c'", p.buf[i])
	}
	return s
}

// Reset starts a new epoch: the cursor and count return to zero and every
// Ref from the previous epoch becomes stale. The buffer is kept for reuse.
func (p *Pool) Reset() {
	p.panicIfReleased()
	clear(p.buf[:p.sp])
	p.sp = 0
	p.count = 0
	p.gen++
}

// Release drops the buffer and makes the pool unusable.
// Any subsequent operations will panic.
func (p *Pool) Release() {
	p.buf = nil
	p.sp = 0
	p.count = 0
}

// check panics if r cannot be dereferenced against the current buffer.
func (p *Pool) check(r Ref) {
	p.panicIfReleased()
	if !r.Valid() {
		panic("strpool: use of invalid or moved Ref")
	}
	if r.gen != p.gen {
		panic("strpool: stale Ref from a previous epoch")
	}
	if r.off+r.n >= len(p.buf) {
		panic("strpool: Ref out of range")
	}
}

// panicIfReleased panics if the pool has been released.
func (p *Pool) panicIfReleased() {
	if p.buf == nil {
		panic("strpool: use after Release()")
	}
}
