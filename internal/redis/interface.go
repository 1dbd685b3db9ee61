package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be constructed
// against miniredis-backed clients in tests.
type Client interface {
	redis.UniversalClient
}
