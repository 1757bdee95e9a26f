// Package wordlist builds fixed-length dictionaries on top of a strpool.Pool.
package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/feydor/semiotics/strpool"
)

// DefaultPath is the word list consulted when no path is configured.
const DefaultPath = "/usr/share/dict/words"

var (
	// ErrSourceUnavailable is returned when the word list cannot be opened or read.
	ErrSourceUnavailable = errors.New("wordlist: source unavailable")
	// ErrUnsorted is returned by Load with WithRequireSorted when entries are out of order.
	ErrUnsorted = errors.New("wordlist: source is not sorted")
	// ErrInvalidLength is returned for a non-positive word length.
	ErrInvalidLength = errors.New("wordlist: word length must be positive")
)

// Dictionary is a set of equal-length words stored in a pool.
// It is immutable after construction.
type Dictionary struct {
	pool   *strpool.Pool
	words  []strpool.Ref
	length int
	sorted bool
}

type options struct {
	logger        *slog.Logger
	requireSorted bool
}

// Option configures Load and Open.
type Option func(*options)

// WithLogger sets the logger used to report load summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRequireSorted makes Load fail with ErrUnsorted when the accepted
// words are not in ascending lexicographic order.
func WithRequireSorted(require bool) Option {
	return func(o *options) {
		o.requireSorted = require
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load reads a newline-delimited word list from r, keeps the lines whose
// byte length equals length, lower-cases them and appends each to pool.
// Lines are kept in source order and duplicates are not removed.
func Load(r io.Reader, pool *strpool.Pool, length int, opts ...Option) (*Dictionary, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	o := buildOptions(opts)

	d := &Dictionary{pool: pool, length: length, sorted: true}
	br := bufio.NewReaderSize(r, max(4096, length+2))
	lines, skipped := 0, 0
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// longer than any word: drop the rest of the line
			if err := discardLine(br); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
			}
			lines++
			skipped++
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		if len(line) > 0 {
			lines++
			line = bytes.TrimSuffix(bytes.TrimSuffix(line, []byte{'\n'}), []byte{'\r'})
			if len(line) == length {
				if err := d.add(line); err != nil {
					return nil, err
				}
			}
		}
		if err != nil {
			break
		}
	}
	if o.requireSorted && !d.sorted {
		return nil, ErrUnsorted
	}

	o.logger.Debug("dictionary loaded",
		"lines", lines,
		"skipped", skipped,
		"words", len(d.words),
		"length", length,
		"sorted", d.sorted,
		"pool_bytes", pool.SizeInUse(),
	)
	return d, nil
}

// Open loads the word list at path. Files ending in .gz or .zst are
// decompressed on the fly.
func Open(path string, pool *strpool.Pool, length int, opts ...Option) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
		}
		defer gz.Close()
		r = gz
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
		}
		defer zr.Close()
		r = zr
	}
	return Load(r, pool, length, opts...)
}

// FromWords builds a dictionary from an in-memory list, applying the same
// filtering as Load.
func FromWords(pool *strpool.Pool, length int, words ...string) (*Dictionary, error) {
	var buf bytes.Buffer
	for _, w := range words {
		buf.WriteString(w)
		buf.WriteByte('\n')
	}
	return Load(&buf, pool, length)
}

func (d *Dictionary) add(line []byte) error {
	toLowerASCII(line)
	ref, err := d.pool.TryAppend(line)
	if err != nil {
		return fmt.Errorf("load word %d (%q): %w", len(d.words)+1, line, err)
	}
	if n := len(d.words); n > 0 && d.pool.Compare(d.words[n-1], ref) > 0 {
		d.sorted = false
	}
	d.words = append(d.words, ref)
	return nil
}

// discardLine consumes input up to and including the next newline.
func discardLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		switch {
		case err == nil, errors.Is(err, io.EOF):
			return nil
		case !errors.Is(err, bufio.ErrBufferFull):
			return err
		}
	}
}

func toLowerASCII(b []byte) {
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
}

// Index returns the position of word in the dictionary. It scans entries in
// order and, when the entries are known to be sorted, stops at the first
// entry greater than word.
func (d *Dictionary) Index(word []byte) (int, bool) {
	if len(word) == 0 || len(word) != d.length {
		return 0, false
	}
	for i, ref := range d.words {
		c := bytes.Compare(d.pool.Bytes(ref), word)
		if c == 0 {
			return i, true
		}
		if c > 0 && d.sorted {
			return 0, false
		}
	}
	return 0, false
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.Index([]byte(word))
	return ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.words) }

// WordLen returns the length every entry has.
func (d *Dictionary) WordLen() int { return d.length }

// Sorted reports whether the entries were found in ascending order at load time.
func (d *Dictionary) Sorted() bool { return d.sorted }

// At returns the Ref of entry i.
func (d *Dictionary) At(i int) strpool.Ref { return d.words[i] }

// Word returns a copy of entry i.
func (d *Dictionary) Word(i int) string { return d.pool.String(d.words[i]) }

// Pool returns the pool holding the entries.
func (d *Dictionary) Pool() *strpool.Pool { return d.pool }
