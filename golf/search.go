package golf

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/feydor/semiotics/strpool"
)

// frame is one branch point of the search: a linked word and the next
// substitution to try from it.
type frame struct {
	word strpool.Ref
	pos  int // character position being varied
	next int // index into the alphabet of the next letter to try
}

// Solve searches a ladder from start to goal. Both words must have the
// dictionary's word length; neither needs to be a dictionary entry, but
// every word after start must be.
func (s *Solver) Solve(start, goal string) (Result, error) {
	if err := s.checkWord(start); err != nil {
		return Result{}, err
	}
	if err := s.checkWord(goal); err != nil {
		return Result{}, err
	}

	began := time.Now()
	res, err := s.search(start, goal)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(began)

	s.recorder.ObserveSolve(res.State.String(), res.Steps, res.Explored, elapsed)
	s.logger.Debug("ladder search finished",
		"start", start,
		"goal", goal,
		"state", res.State.String(),
		"steps", res.Steps,
		"explored", res.Explored,
		"elapsed", elapsed,
	)
	return res, nil
}

func (s *Solver) search(start, goal string) (Result, error) {
	if err := s.reserve(); err != nil {
		return Result{}, err
	}
	startRef, goalRef, scratch := s.load(s.start, start), s.load(s.goal, goal), s.load(s.scratch, start)

	if s.pool.Equal(startRef, goalRef) {
		return Result{State: Found, Chain: []string{start}}, nil
	}

	visited := roaring.New()
	if idx, ok := s.dict.Index([]byte(start)); ok {
		visited.Add(uint32(idx))
	}

	stack := []frame{{word: startRef}}
	explored := 0
	for len(stack) > 0 {
		top := len(stack) - 1

		// equal lengths: Move copies in place and scratch keeps its slot
		w := stack[top].word
		s.pool.Move(&scratch, &w)

		idx, ok := s.advance(&stack[top], scratch, visited)
		if !ok {
			// exhausted this branch: backtrack
			stack = stack[:top]
			continue
		}

		visited.Add(uint32(idx))
		explored++
		stack = append(stack, frame{word: s.dict.At(idx)})

		if s.pool.Equal(s.dict.At(idx), goalRef) {
			return s.found(stack, explored), nil
		}
	}
	return Result{State: Exhausted, Explored: explored}, nil
}

// reserve appends the solver's three working slots on first use. Later
// searches overwrite them, so repeated solves do not grow the pool.
func (s *Solver) reserve() error {
	if s.reserved {
		return nil
	}
	blank := make([]byte, s.dict.WordLen())
	for _, slot := range []*strpool.Ref{&s.start, &s.goal, &s.scratch} {
		ref, err := s.pool.TryAppend(blank)
		if err != nil {
			return fmt.Errorf("reserve working words: %w", err)
		}
		*slot = ref
	}
	s.reserved = true
	return nil
}

// load writes word into slot through its zero-copy view.
func (s *Solver) load(slot strpool.Ref, word string) strpool.Ref {
	copy(s.pool.Bytes(slot), word)
	return slot
}

// advance resumes f's substitution loop and returns the dictionary index of
// the next unvisited neighbor. scratch must hold f's word; it is restored
// before advance returns.
func (s *Solver) advance(f *frame, scratch strpool.Ref, visited *roaring.Bitmap) (int, bool) {
	b := s.pool.Bytes(scratch)
	for ; f.pos < len(b); f.pos, f.next = f.pos+1, 0 {
		orig := b[f.pos]
		for f.next < len(s.alphabet) {
			c := s.alphabet[f.next]
			f.next++
			if c == orig {
				continue
			}
			s.pool.ReplaceAt(scratch, f.pos, c)
			idx, ok := s.dict.Index(b)
			s.pool.ReplaceAt(scratch, f.pos, orig)
			if ok && !visited.Contains(uint32(idx)) {
				return idx, true
			}
		}
	}
	return 0, false
}

func (s *Solver) found(stack []frame, explored int) Result {
	chain := make([]string, len(stack))
	for i, f := range stack {
		chain[i] = s.pool.String(f.word)
	}
	return Result{
		State:    Found,
		Chain:    chain,
		Steps:    len(chain) - 1,
		Explored: explored,
	}
}

// Neighbors returns every dictionary word one substitution away from word,
// in exploration order.
func (s *Solver) Neighbors(word string) ([]string, error) {
	if err := s.checkWord(word); err != nil {
		return nil, err
	}
	if err := s.reserve(); err != nil {
		return nil, err
	}
	scratch := s.load(s.scratch, word)

	var out []string
	none := roaring.New()
	f := frame{word: scratch}
	for {
		idx, ok := s.advance(&f, scratch, none)
		if !ok {
			return out, nil
		}
		out = append(out, s.dict.Word(idx))
	}
}
