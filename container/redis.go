package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plotvault/plotvault/core"
)

// DefaultKeyPrefix namespaces container entries inside a shared Redis.
const DefaultKeyPrefix = "plotvault:"

// RedisConfig carries the connection settings for a Redis-backed container.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	// KeyPrefix namespaces this container's entries. Defaults to
	// DefaultKeyPrefix; two containers may share one Redis by using
	// distinct prefixes.
	KeyPrefix string `json:"key_prefix" yaml:"key_prefix"`
}

// Redis is a Container backed by a Redis server. Entry bytes live under
// <prefix>data:<key>; first-write order lives in a <prefix>index sorted set
// whose scores come from an INCR'd <prefix>seq counter. ZADD NX leaves the
// score of an existing member alone, so overwrites keep their position.
type Redis struct {
	client   *redis.Client
	prefix   string
	readOnly bool
}

// OpenRedis connects to the configured Redis server and verifies the
// connection with a ping. core.ModeCreate clears the container's namespace;
// core.ModeRead rejects writes with core.ErrReadOnly.
func OpenRedis(cfg RedisConfig, mode core.OpenMode) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis container at %s: %w", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	r := &Redis{client: client, prefix: prefix, readOnly: mode == core.ModeRead}

	if mode == core.ModeCreate {
		if err := r.clear(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("reset redis container at %s: %w", cfg.Addr, err)
		}
	}
	return r, nil
}

func (r *Redis) dataKey(key string) string { return r.prefix + "data:" + key }
func (r *Redis) indexKey() string          { return r.prefix + "index" }
func (r *Redis) seqKey() string            { return r.prefix + "seq" }

// clear removes every entry in this container's namespace.
func (r *Redis) clear(ctx context.Context) error {
	keys, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return err
	}
	del := make([]string, 0, len(keys)+2)
	for _, k := range keys {
		del = append(del, r.dataKey(k))
	}
	del = append(del, r.indexKey(), r.seqKey())
	return r.client.Del(ctx, del...).Err()
}

// Put stores (or overwrites) the bytes for the given key and records its
// first-write position in the index.
func (r *Redis) Put(key string, data []byte) error {
	if r.readOnly {
		return core.ErrReadOnly
	}
	ctx := context.Background()

	seq, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return err
	}
	if err := r.client.ZAddNX(ctx, r.indexKey(), redis.Z{
		Score:  float64(seq),
		Member: key,
	}).Err(); err != nil {
		return err
	}
	return r.client.Set(ctx, r.dataKey(key), data, 0).Err()
}

// Get returns the stored bytes or core.ErrNotFound.
func (r *Redis) Get(key string) ([]byte, error) {
	data, err := r.client.Get(context.Background(), r.dataKey(key)).Bytes()
	if err == redis.Nil {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Has reports whether the key currently holds an entry.
func (r *Redis) Has(key string) (bool, error) {
	n, err := r.client.Exists(context.Background(), r.dataKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Keys returns every key ordered by index score, i.e. first-write order.
func (r *Redis) Keys() ([]string, error) {
	return r.client.ZRange(context.Background(), r.indexKey(), 0, -1).Result()
}

// Close releases the client's connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
