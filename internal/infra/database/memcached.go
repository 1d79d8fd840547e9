package database

import (
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached accepts a comma separated server list.
func NewMemcached(servers string) *memcache.Client {
	client := memcache.New(strings.Split(servers, ",")...)
	client.Timeout = 200 * time.Millisecond
	return client
}
