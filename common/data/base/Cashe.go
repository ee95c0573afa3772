package base

import (
	"time"

	"github.com/go-errors/errors"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	DefaultCacheTTL = time.Hour
	MaxCacheTTL     = time.Hour * 24 * 30
)

// Cashe maps a frame fingerprint to the date the frame was first stored.
// Entries expire after a TTL: frames removed from Elastic are stored again
// once their entry is gone.
type Cashe interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
