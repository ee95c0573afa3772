package base

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const DefaultLRUSize = 100000

// LRU is the in-process cache used when neither memcache nor redis is set
type LRU struct {
	cache *expirable.LRU[string, string]
}

func (l *LRU) Get(key string) (string, error) {
	v, ok := l.cache.Get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (l *LRU) Set(key, value string) error {
	l.cache.Add(key, value)
	return nil
}

func NewLRU(size int, ttl time.Duration) (*LRU, error) {
	if size <= 0 {
		size = DefaultLRUSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &LRU{cache: expirable.NewLRU[string, string](size, nil, ttl)}, nil
}
