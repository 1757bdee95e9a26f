package strpool

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		expected int
	}{
		{"default capacity", 0, DefaultCapacity},
		{"negative capacity", -1, DefaultCapacity},
		{"custom capacity", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.capacity)
			assert.Equal(t, tt.expected, p.Capacity())
			assert.Equal(t, 0, p.SizeInUse())
			assert.Equal(t, 0, p.Count())
			assert.Equal(t, uint32(1), p.Generation())
		})
	}
}

func TestPoolAppendRoundTrip(t *testing.T) {
	p := New(1024)

	words := []string{"", "a", "head", "hello world", "tweedledee"}
	refs := make([]Ref, len(words))
	for i, w := range words {
		refs[i] = p.AppendString(w)
	}

	want := 0
	for i, w := range words {
		r := refs[i]
		assert.Equal(t, w, p.String(r))
		assert.Equal(t, len(w), r.Len())
		assert.Equal(t, want, r.Offset(), "entries are contiguous")

		b := p.Bytes(r)
		assert.Equal(t, []byte(w), append([]byte{}, b...))
		assert.Equal(t, len(w)+1, cap(b))
		assert.Equal(t, byte(0), b[:len(w)+1][len(w)], "terminator follows %q", w)
		want += len(w) + 1
	}

	assert.Equal(t, want, p.SizeInUse())
	assert.Equal(t, len(words), p.Count())
}

func TestPoolBytesIsAView(t *testing.T) {
	p := New(64)
	r := p.AppendString("head")
	alias := r

	p.Bytes(r)[0] = 'd'
	assert.Equal(t, "dead", p.String(alias))
}

func TestPoolOverflow(t *testing.T) {
	p := New(8)
	p.AppendString("abc") // cursor at 4
	p.AppendString("ab")  // cursor at 7

	_, err := p.TryAppend(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, 7, p.SizeInUse(), "failed append writes nothing")
	assert.Equal(t, 2, p.Count())

	err = recoverErr(func() { p.AppendString("x") })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow), "panic value wraps ErrOverflow: %v", err)
}

func TestPoolOverflowFromDerivedEntries(t *testing.T) {
	p := New(10)
	a := p.AppendString("abc") // cursor at 4
	b := p.AppendString("de")  // cursor at 7

	err := recoverErr(func() { p.Concat(&a, b) })
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, "abc", p.String(a), "a is not rebound on overflow")

	err = recoverErr(func() { p.Prepend(a, 'x') })
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestPoolDebug(t *testing.T) {
	p := New(64)
	p.AppendString("x")
	r := p.AppendString("ab")
	assert.Equal(t, "{.off=2, .len=2} 'a''b'", p.Debug(r))
}

func TestPoolReset(t *testing.T) {
	p := New(1024)

	r := p.AppendString("warm")
	p.AppendString("cold")
	require.NotZero(t, p.SizeInUse())

	p.Reset()
	assert.Equal(t, 0, p.SizeInUse())
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, uint32(2), p.Generation())
	assert.Equal(t, 1024, p.Capacity(), "buffer is kept")

	assert.PanicsWithValue(t, "strpool: stale Ref from a previous epoch", func() {
		p.String(r)
	})

	fresh := p.AppendString("ward")
	assert.Equal(t, 0, fresh.Offset())
	assert.Equal(t, "ward", p.String(fresh))
}

func TestPoolRelease(t *testing.T) {
	p := New(1024)
	r := p.AppendString("head")

	p.Release()
	assert.Nil(t, p.buf)
	assert.Equal(t, 0, p.Capacity())

	assert.PanicsWithValue(t, "strpool: use after Release()", func() { p.AppendString("tail") })
	assert.PanicsWithValue(t, "strpool: use after Release()", func() { p.String(r) })
	assert.PanicsWithValue(t, "strpool: use after Release()", func() { p.Reset() })
}

func TestRefValid(t *testing.T) {
	p := New(64)

	var zero Ref
	assert.False(t, zero.Valid())
	assert.Panics(t, func() { p.String(zero) })

	r := p.AppendString("")
	assert.True(t, r.Valid())
	assert.Equal(t, "", p.String(r))
}
