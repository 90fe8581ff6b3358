package scan

import (
	"context"

	"github.com/sgostarter/libhypotests/poi"
)

// Store keeps one evaluated number per POI key.
type Store interface {
	Load(ctx context.Context, key string) (v float64, ok bool, err error)
	Save(ctx context.Context, key string, v float64) error
}

// EvalFunc computes the quantity of interest, e.g. a test statistic, at one POI.
type EvalFunc func(ctx context.Context, p poi.POI) (float64, error)
