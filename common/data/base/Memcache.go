package base

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

type Memcache struct {
	client     *memcache.Client
	expiration int32
}

// fingerprints are 128 chars, memcache keys are limited to 250
func (m *Memcache) Get(key string) (string, error) {
	item, err := m.client.Get(key)
	if err == memcache.ErrCacheMiss {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}

	return string(item.Value), nil
}

func (m *Memcache) Set(key, value string) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      []byte(value),
		Expiration: m.expiration,
	})
}

func NewMemcache(servers []string, ttl time.Duration) (*Memcache, error) {
	return &Memcache{
		client:     memcache.New(servers...),
		expiration: expirationSeconds(ttl),
	}, nil
}

// memcache reads values above 30 days as a unix timestamp
func expirationSeconds(ttl time.Duration) int32 {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}
	s := int32(ttl / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}
