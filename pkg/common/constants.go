package common

import "time"

const (
	PostListCacheTTL = 1 * time.Minute

	DefaultPageSize = 10
	MaxPageSize     = 50
)

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}
