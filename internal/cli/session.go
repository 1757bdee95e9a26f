package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/feydor/semiotics/golf"
	"github.com/feydor/semiotics/internal/config"
	"github.com/feydor/semiotics/internal/logging"
	"github.com/feydor/semiotics/internal/metrics"
	"github.com/feydor/semiotics/strpool"
	"github.com/feydor/semiotics/wordlist"
)

// session holds what one command invocation needs: configuration, logger,
// metrics and the pool every word of the run is stored in.
type session struct {
	cfg      *config.Config
	logger   *logging.Logger
	recorder metrics.Recorder
	prom     *metrics.PrometheusRecorder
	pool     *strpool.Pool
	dict     *wordlist.Dictionary
}

// newSession builds a session from the command's config. The returned
// cleanup flushes metrics and closes log files; its error is the first
// one encountered.
func newSession(cmd *cobra.Command) (*session, func() error, error) {
	cfg := GetConfig(cmd.Context())

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewTextLogger(cmd.ErrOrStderr(), level)
	if cfg.LogFile != "" {
		var err error
		logger, err = logger.WithFile(cfg.LogFile, slog.LevelDebug)
		if err != nil {
			return nil, nil, err
		}
	}

	s := &session{
		cfg:      cfg,
		logger:   logger,
		recorder: metrics.NoopRecorder{},
		pool:     strpool.New(cfg.PoolCapacity),
	}
	if cfg.MetricsFile != "" {
		s.prom = metrics.NewPrometheusRecorder(nil)
		s.recorder = s.prom
	}

	cleanup := func() error {
		s.recorder.ObservePool(s.pool.Metrics())
		var err error
		if s.prom != nil {
			err = s.prom.WriteTextfile(cfg.MetricsFile)
		}
		return errors.Join(err, s.logger.Close())
	}
	return s, cleanup, nil
}

// wordLength returns the configured word length, or the length of word
// when none is configured.
func (s *session) wordLength(word string) int {
	if s.cfg.WordLength > 0 {
		return s.cfg.WordLength
	}
	return len(word)
}

// loadDictionary opens the configured word list, keeping words of the given length.
func (s *session) loadDictionary(length int) (*wordlist.Dictionary, error) {
	began := time.Now()
	dict, err := wordlist.Open(s.cfg.DictPath, s.pool, length,
		wordlist.WithLogger(s.logger.Logger),
		wordlist.WithRequireSorted(s.cfg.RequireSorted),
	)
	if err != nil {
		s.logger.LogLoad(s.cfg.DictPath, 0, length, err)
		return nil, err
	}
	s.recorder.ObserveLoad(dict.Len(), time.Since(began))
	s.logger.LogLoad(s.cfg.DictPath, dict.Len(), length, nil)
	if !dict.Sorted() {
		s.logger.Warn("word list is not sorted; lookups scan every entry", "path", s.cfg.DictPath)
	}
	s.dict = dict
	return dict, nil
}

// solver creates a solver over the loaded dictionary.
func (s *session) solver() *golf.Solver {
	return golf.New(s.dict,
		golf.WithAlphabet(s.cfg.Alphabet),
		golf.WithLogger(s.logger.Logger),
		golf.WithRecorder(s.recorder),
	)
}

// withSession runs fn inside a session and reports cleanup failures.
func withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	s, cleanup, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("cleanup: %w", cerr)
		}
	}()
	return fn(s)
}
