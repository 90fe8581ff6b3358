package scan

import (
	"context"
	"fmt"
	"iter"
	"strconv"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhypotests/poi"
)

type Result struct {
	RunID  string
	POIs   poi.POIArray
	Values []float64
	Hits   int
	Misses int
}

// Pairs yields each scanned POI with its value, in scan order.
func (r *Result) Pairs() iter.Seq2[poi.POI, float64] {
	return func(yield func(poi.POI, float64) bool) {
		for idx, p := range r.POIs.Enumerate() {
			if !yield(p, r.Values[idx]) {
				return
			}
		}
	}
}

// Scanner evaluates a function once per POI and memoises the results in a
// Store keyed by the POI, so repeated scans over overlapping grids reuse
// earlier evaluations.
type Scanner struct {
	logger l.Wrapper
	store  Store
	cfg    Config
}

func NewScanner(store Store, cfg *Config, logger l.Wrapper) *Scanner {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if store == nil {
		store = NewMemStore(0)
	}

	if cfg == nil {
		cfg = &Config{}
	}

	return &Scanner{
		logger: logger.WithFields(l.StringField(l.ClsKey, "scanner")),
		store:  store,
		cfg:    *cfg,
	}
}

func (s *Scanner) key(p poi.POI) string {
	if s.cfg.KeyPrefix == "" {
		return p.Key()
	}

	return s.cfg.KeyPrefix + ":" + p.Key()
}

// Evaluate returns the value at p, from the store when present.
func (s *Scanner) Evaluate(ctx context.Context, p poi.POI, fn EvalFunc) (v float64, hit bool, err error) {
	if fn == nil {
		err = fmt.Errorf("%w: no eval func", ErrInvalidConfig)

		return
	}

	key := s.key(p)

	if !s.cfg.DisableCache {
		v, hit, err = s.store.Load(ctx, key)
		if err != nil {
			s.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("load failed")

			return
		}

		if hit {
			return
		}
	}

	v, err = fn(ctx, p)
	if err != nil {
		err = fmt.Errorf("evaluate %s: %w", p, err)

		return
	}

	if s.cfg.DisableCache {
		return
	}

	err = s.store.Save(ctx, key, v)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save failed")
	}

	return
}

// Scan evaluates every POI of pois in stored order. It stops at the first
// error or when ctx is done.
func (s *Scanner) Scan(ctx context.Context, pois poi.POIArray, fn EvalFunc) (*Result, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: no eval func", ErrInvalidConfig)
	}

	r := &Result{
		RunID:  strconv.FormatUint(snowflake.ID(), 36),
		POIs:   pois,
		Values: make([]float64, 0, pois.Len()),
	}

	logger := s.logger.WithFields(l.StringField("runID", r.RunID), l.StringField("poi", pois.Name()))

	for p := range pois.All() {
		if err := ctx.Err(); err != nil {
			logger.WithFields(l.ErrorField(err), l.IntField("done", len(r.Values))).Error("scan canceled")

			return nil, err
		}

		v, hit, err := s.Evaluate(ctx, p, fn)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("at", p.Key())).Error("scan failed")

			return nil, err
		}

		if hit {
			r.Hits++
		} else {
			r.Misses++
		}

		r.Values = append(r.Values, v)
	}

	logger.WithFields(l.IntField("hits", r.Hits), l.IntField("misses", r.Misses)).Debug("scan finished")

	return r, nil
}
