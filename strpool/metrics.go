package strpool

import "fmt"

// SizeInUse returns the number of bytes written so far, terminators included.
func (p *Pool) SizeInUse() int {
	if p.buf == nil {
		return 0
	}
	return p.sp
}

// Capacity returns the size of the pool's buffer in bytes.
func (p *Pool) Capacity() int {
	return len(p.buf)
}

// Free returns the number of bytes still available for appends.
func (p *Pool) Free() int {
	if p.buf == nil {
		return 0
	}
	return len(p.buf) - p.sp
}

// Count returns the number of strings appended in the current epoch,
// including entries left behind by Prepend, Concat and Move.
func (p *Pool) Count() int {
	return p.count
}

// Generation returns the current epoch. It starts at 1 and is bumped by Reset.
func (p *Pool) Generation() uint32 {
	return p.gen
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the pool has no capacity.
func (p *Pool) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		SizeInUse:   p.SizeInUse(),
		Capacity:    p.Capacity(),
		Count:       p.Count(),
		Generation:  p.Generation(),
		Utilization: p.Utilization(),
	}
}

// Summary renders the pool's metrics on one line.
func (p *Pool) Summary() string {
	m := p.Metrics()
	return fmt.Sprintf("Pool{strings: %d, used: %d B, capacity: %d B, usage: %.1f%%, gen: %d}",
		m.Count, m.SizeInUse, m.Capacity, m.Utilization*100, m.Generation)
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	SizeInUse   int     // Bytes written, terminators included
	Capacity    int     // Buffer size in bytes
	Count       int     // Strings appended in the current epoch
	Generation  uint32  // Current epoch
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafePool

// SizeInUse thread-safely returns the number of bytes written so far.
func (s *SafePool) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.SizeInUse()
}

// Capacity thread-safely returns the size of the buffer.
func (s *SafePool) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Capacity()
}

// Count thread-safely returns the number of strings appended.
func (s *SafePool) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Count()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafePool) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Utilization()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
