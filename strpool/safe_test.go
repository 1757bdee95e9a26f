package strpool

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSafe(t *testing.T) {
	s := NewSafe(1024)
	require.NotNil(t, s)
	require.NotNil(t, s.p)
	assert.Equal(t, 1024, s.Capacity())
}

func TestSafePoolOperations(t *testing.T) {
	s := NewSafe(1024)

	r := s.AppendString("repl")
	s.ReplaceAt(r, 2, 'a')
	assert.Equal(t, "real", s.String(r))

	s.DeleteAt(&r, 0)
	assert.Equal(t, "eal", s.String(r))

	rend := s.Prepend(s.AppendString("end"), 'r')
	assert.Equal(t, "rend", s.String(rend))

	a := s.AppendString("con")
	s.Concat(&a, s.Append([]byte("cat")))
	assert.Equal(t, "concat", s.String(a))

	dest := s.AppendString("tweedledum")
	src := s.AppendString("tweedledee")
	s.Move(&dest, &src)
	assert.Equal(t, "tweedledee", s.String(dest))
	assert.False(t, src.Valid())

	b := s.AppendString("concat")
	assert.True(t, s.Equal(a, b))
	assert.Equal(t, 0, s.Compare(a, b))

	_, err := s.TryAppend(make([]byte, 2048))
	assert.ErrorIs(t, err, ErrOverflow)

	s.Reset()
	assert.Equal(t, 0, s.SizeInUse())

	s.Release()
	assert.Panics(t, func() { s.AppendString("x") })
}

func TestSafePoolConcurrentAppend(t *testing.T) {
	const workers = 8
	const perWorker = 100

	s := NewSafe(workers * perWorker * 8)

	var wg sync.WaitGroup
	refs := make([][]Ref, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				refs[id] = append(refs[id], s.AppendString(fmt.Sprintf("%d:%02d", id, i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Count())
	for id, rs := range refs {
		for i, r := range rs {
			assert.Equal(t, fmt.Sprintf("%d:%02d", id, i), s.String(r))
		}
	}
}

func TestSafePoolConcurrentReplace(t *testing.T) {
	s := NewSafe(1024)
	r := s.AppendString("aaaaaaaa")

	var wg sync.WaitGroup
	for i := 0; i < r.Len(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.ReplaceAt(r, i, byte('a'+i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "abcdefgh", s.String(r))
}
