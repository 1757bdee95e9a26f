package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feydor/semiotics/strpool"
)

const sample = `Abby
a
head
dead
Heal
tail
tails
zoos
`

func TestLoadFiltersAndLowercases(t *testing.T) {
	pool := strpool.New(1024)
	d, err := Load(strings.NewReader(sample), pool, 4)
	require.NoError(t, err)

	var got []string
	for i := 0; i < d.Len(); i++ {
		got = append(got, d.Word(i))
	}
	assert.Equal(t, []string{"abby", "head", "dead", "heal", "tail", "zoos"}, got)
	assert.Equal(t, 4, d.WordLen())
	assert.Equal(t, 6, pool.Count())
	assert.Same(t, pool, d.Pool())
}

func TestLoadSkipsOverlongLines(t *testing.T) {
	src := "head\n" + strings.Repeat("x", 70000) + "\nheal\r\nteal"
	d, err := Load(strings.NewReader(src), strpool.New(0), 4)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("head"))
	assert.True(t, d.Contains("heal"))
	assert.True(t, d.Contains("teal"), "last line needs no newline")
}

func TestContains(t *testing.T) {
	d, err := FromWords(strpool.New(1024), 4, "dead", "head", "heal")
	require.NoError(t, err)

	tests := []struct {
		word string
		want bool
	}{
		{"head", true},
		{"dead", true},
		{"heal", true},
		{"zzzz", false},
		{"", false},
		{"hea", false},
		{"heads", false},
		{"HEAD", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Contains(tt.word))
		})
	}
}

func TestIndex(t *testing.T) {
	d, err := FromWords(strpool.New(1024), 4, "cold", "cord", "warm")
	require.NoError(t, err)

	i, ok := d.Index([]byte("cord"))
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, d.Pool().EqualBytes(d.At(i), []byte("cord")))

	_, ok = d.Index([]byte("card"))
	assert.False(t, ok)
}

func TestSortedness(t *testing.T) {
	t.Run("sorted source", func(t *testing.T) {
		d, err := FromWords(strpool.New(1024), 4, "card", "cold", "cold", "warm")
		require.NoError(t, err)
		assert.True(t, d.Sorted(), "duplicates do not break order")
		assert.True(t, d.Contains("warm"))
		assert.False(t, d.Contains("cart"))
	})

	t.Run("unsorted source still answers correctly", func(t *testing.T) {
		// the byte-sum ordering would call these sorted; lexicographically they are not
		d, err := FromWords(strpool.New(1024), 2, "ba", "az")
		require.NoError(t, err)
		assert.False(t, d.Sorted())
		assert.True(t, d.Contains("az"), "no short-circuit on unsorted input")
	})

	t.Run("require sorted", func(t *testing.T) {
		_, err := Load(strings.NewReader("warm\ncold\n"), strpool.New(1024), 4, WithRequireSorted(true))
		assert.ErrorIs(t, err, ErrUnsorted)

		_, err = Load(strings.NewReader("cold\nwarm\n"), strpool.New(1024), 4, WithRequireSorted(true))
		assert.NoError(t, err)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		_, err := Load(strings.NewReader(sample), strpool.New(1024), 0)
		assert.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("pool overflow", func(t *testing.T) {
		_, err := Load(strings.NewReader(sample), strpool.New(12), 4)
		require.Error(t, err)
		assert.ErrorIs(t, err, strpool.ErrOverflow)
		assert.Contains(t, err.Error(), "load word 3")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing"), strpool.New(1024), 4)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.gz")
		require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o600))
		_, err := Open(path, strpool.New(1024), 4)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "words")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0o600))

	gzPath := filepath.Join(dir, "words.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	zstPath := filepath.Join(dir, "words.zst")
	f, err = os.Create(zstPath)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, gzPath, zstPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			d, err := Open(path, strpool.New(1024), 4)
			require.NoError(t, err)
			assert.Equal(t, 6, d.Len())
			assert.True(t, d.Contains("zoos"))
			assert.True(t, d.Contains("abby"))
			assert.False(t, d.Contains("zzzzzz"))
			assert.False(t, d.Contains(""))
		})
	}
}
