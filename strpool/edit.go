package strpool

import (
	"bytes"
	"fmt"
)

// Compare orders a and b lexicographically by the bytes they currently denote.
func (p *Pool) Compare(a, b Ref) int {
	return bytes.Compare(p.Bytes(a), p.Bytes(b))
}

// ByteSumCompare orders a and b by the sum of their byte values. This is the
// pool's legacy ordering: anagrams compare equal and the result is not
// lexicographic. Use Compare for sorting or searching.
func (p *Pool) ByteSumCompare(a, b Ref) int {
	sa, sb := byteSum(p.Bytes(a)), byteSum(p.Bytes(b))
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

func byteSum(b []byte) int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum
}

// Equal reports whether a and b currently denote the same bytes.
func (p *Pool) Equal(a, b Ref) bool {
	return bytes.Equal(p.Bytes(a), p.Bytes(b))
}

// EqualBytes reports whether r currently denotes s.
func (p *Pool) EqualBytes(r Ref, s []byte) bool {
	return bytes.Equal(p.Bytes(r), s)
}

// DeleteAt removes the byte at index i in place, shifting the rest of the
// string (terminator included) left by one, and shortens r.
// The caller must hold the only live view of the mutated bytes.
func (p *Pool) DeleteAt(r *Ref, i int) {
	p.checkIndex(*r, i)
	s := p.buf[r.off : r.off+r.n+1]
	copy(s[i:], s[i+1:])
	r.n--
}

// ReplaceAt overwrites the byte at index i in place.
// The caller must hold the only live view of the mutated bytes.
func (p *Pool) ReplaceAt(r Ref, i int, c byte) {
	p.checkIndex(r, i)
	p.buf[r.off+i] = c
}

// Prepend appends a new string made of c followed by the bytes of r.
// The entry behind r is left untouched.
func (p *Pool) Prepend(r Ref, c byte) Ref {
	return p.mustAppend([]byte{c}, p.Bytes(r))
}

// Concat appends a new string made of the bytes of a followed by the bytes
// of b and rebinds a to it. The old entry for a stays in the pool.
func (p *Pool) Concat(a *Ref, b Ref) {
	*a = p.mustAppend(p.Bytes(*a), p.Bytes(b))
}

// CopyMove copies the content of src into dest and returns the rebound dest.
//   - equal lengths: dest's bytes are overwritten in place
//   - dest longer: a prefix of dest is overwritten and its length shrinks to src's
//   - dest shorter: src's content is appended as a new entry
//
// src is left usable.
func (p *Pool) CopyMove(dest, src Ref) Ref {
	s := p.Bytes(src)
	d := p.Bytes(dest)
	if len(d) < len(s) {
		return p.mustAppend(s)
	}
	// terminator included so the shrunk view stays terminated
	copy(d[:len(s)+1], s[:len(s)+1])
	dest.n = src.n
	return dest
}

// Move is CopyMove with ownership transfer: dest is rebound in place and src
// is invalidated. Dereferencing src afterwards panics.
func (p *Pool) Move(dest, src *Ref) {
	if dest == src {
		return
	}
	*dest = p.CopyMove(*dest, *src)
	*src = Ref{off: -1}
}

// mustAppend is appendParts for operations with no error return.
func (p *Pool) mustAppend(parts ...[]byte) Ref {
	r, err := p.appendParts(parts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (p *Pool) checkIndex(r Ref, i int) {
	p.check(r)
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("strpool: index %d out of range for length %d", i, r.n))
	}
}
