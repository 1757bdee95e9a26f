// Package golf solves word ladders ("word golf") over a wordlist.Dictionary.
//
// A ladder turns a start word into a goal word one letter at a time, every
// intermediate word being a dictionary entry of the same length. The search
// is a depth-first walk in a fixed order: character position ascending, then
// alphabet letter ascending. The first ladder discovered wins; it is not
// necessarily the shortest.
//
// The visited set is shared by the whole search, not by one branch: once a
// word is linked it is never entered again, even from an unrelated branch.
// This bounds the search by the dictionary size at the cost of sometimes
// missing a shorter ladder through an already-visited word.
package golf

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/feydor/semiotics/strpool"
	"github.com/feydor/semiotics/wordlist"
)

// DefaultAlphabet is the substitution alphabet, in exploration order.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

var (
	// ErrLengthMismatch is returned when start, goal and dictionary word lengths differ.
	ErrLengthMismatch = errors.New("golf: word lengths differ")
	// ErrEmptyWord is returned for an empty start or goal.
	ErrEmptyWord = errors.New("golf: empty word")
)

// State is the solver's position in its state machine.
type State int

const (
	Searching State = iota
	Found
	Exhausted
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the outcome of one search. Exhausted is an ordinary outcome
// meaning no ladder exists, not an error.
type Result struct {
	State    State
	Chain    []string // start to goal, inclusive; nil when exhausted
	Steps    int      // links in Chain
	Explored int      // words linked during the search
}

// Found reports whether a ladder was found.
func (r Result) Found() bool { return r.State == Found }

// Recorder receives one observation per finished search.
type Recorder interface {
	ObserveSolve(state string, steps, explored int, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveSolve(string, int, int, time.Duration) {}

// Solver searches ladders in one dictionary. It borrows the dictionary's
// pool for three working words, so it must not be shared between goroutines.
type Solver struct {
	dict     *wordlist.Dictionary
	pool     *strpool.Pool
	alphabet []byte
	logger   *slog.Logger
	recorder Recorder

	// working slots, appended to the pool on first use
	reserved             bool
	start, goal, scratch strpool.Ref
}

// Option configures a Solver.
type Option func(*Solver)

// WithAlphabet replaces DefaultAlphabet. Letters are tried in the given order.
func WithAlphabet(alphabet string) Option {
	return func(s *Solver) {
		s.alphabet = []byte(alphabet)
	}
}

// WithLogger sets the solver's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Solver) {
		s.recorder = r
	}
}

// New creates a Solver over dict.
func New(dict *wordlist.Dictionary, opts ...Option) *Solver {
	s := &Solver{
		dict:     dict,
		pool:     dict.Pool(),
		alphabet: []byte(DefaultAlphabet),
		logger:   slog.New(slog.DiscardHandler),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Solver) checkWord(w string) error {
	if w == "" {
		return ErrEmptyWord
	}
	if len(w) != s.dict.WordLen() {
		return fmt.Errorf("%w: %q has length %d, dictionary has %d", ErrLengthMismatch, w, len(w), s.dict.WordLen())
	}
	return nil
}
