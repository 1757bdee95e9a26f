package strpool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent access.
// Every operation, including the in-place mutators, is serialized. Callers
// still share aliasing Refs: serialization prevents torn writes, not the
// visibility of another goroutine's mutation.
type SafePool struct {
	mu sync.Mutex
	p  *Pool
}

// NewSafe creates a new thread-safe pool with the given capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafe(capacity int) *SafePool {
	return &SafePool{p: New(capacity)}
}

// Append thread-safely appends b and returns its Ref.
func (s *SafePool) Append(b []byte) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Append(b)
}

// AppendString thread-safely appends str and returns its Ref.
func (s *SafePool) AppendString(str string) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.AppendString(str)
}

// TryAppend thread-safely appends b, returning ErrOverflow instead of panicking.
func (s *SafePool) TryAppend(b []byte) (Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.TryAppend(b)
}

// String thread-safely returns a copy of the bytes denoted by r.
// The zero-copy Bytes view is deliberately not exposed.
func (s *SafePool) String(r Ref) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.String(r)
}

// Compare thread-safely compares a and b lexicographically.
func (s *SafePool) Compare(a, b Ref) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Compare(a, b)
}

// Equal thread-safely reports whether a and b denote the same bytes.
func (s *SafePool) Equal(a, b Ref) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Equal(a, b)
}

// DeleteAt thread-safely removes the byte at index i of r.
func (s *SafePool) DeleteAt(r *Ref, i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.DeleteAt(r, i)
}

// ReplaceAt thread-safely overwrites the byte at index i of r.
func (s *SafePool) ReplaceAt(r Ref, i int, c byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.ReplaceAt(r, i, c)
}

// Prepend thread-safely appends c followed by r as a new entry.
func (s *SafePool) Prepend(r Ref, c byte) Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Prepend(r, c)
}

// Concat thread-safely rebinds a to the concatenation of a and b.
func (s *SafePool) Concat(a *Ref, b Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Concat(a, b)
}

// Move thread-safely moves src into dest and invalidates src.
func (s *SafePool) Move(dest, src *Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Move(dest, src)
}

// Reset thread-safely starts a new epoch.
func (s *SafePool) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Reset()
}

// Release thread-safely drops the buffer and makes the pool unusable.
func (s *SafePool) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Release()
}
