package redisimpls

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/libhypotests/scan"
)

// NewRedisStore shares scan results between processes. expiration <= 0 keeps
// values forever.
func NewRedisStore(redisCli *redis.Client, redisKeyPre string, expiration time.Duration) scan.Store {
	if expiration < 0 {
		expiration = 0
	}

	return &redisStoreImpl{
		redisCli:    redisCli,
		redisKeyPre: redisKeyPre,
		expiration:  expiration,
	}
}

type redisStoreImpl struct {
	redisCli    *redis.Client
	redisKeyPre string
	expiration  time.Duration
}

func (impl *redisStoreImpl) redisKey(key string) string {
	redisKey := "scan:" + key
	if impl.redisKeyPre != "" {
		redisKey = impl.redisKeyPre + ":" + redisKey
	}

	return redisKey
}

func (impl *redisStoreImpl) Load(ctx context.Context, key string) (v float64, ok bool, err error) {
	v, err = impl.redisCli.Get(ctx, impl.redisKey(key)).Float64()
	if err == nil {
		ok = true

		return
	}

	if errors.Is(err, redis.Nil) {
		err = nil
	}

	return
}

func (impl *redisStoreImpl) Save(ctx context.Context, key string, v float64) error {
	return impl.redisCli.Set(ctx, impl.redisKey(key), v, impl.expiration).Err()
}
