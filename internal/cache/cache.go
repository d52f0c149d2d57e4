// Package cache stores rendered chart images so repeated requests for the
// same season, selection and size skip layout and encoding.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const keyPrefix = "hoopstats:chart:"

// ChartCache is a byte store keyed by Key. A miss is (nil, false, nil).
type ChartCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Key builds a cache key from the season fingerprint and the request parts
// that change the image.
func Key(fingerprint string, parts ...string) string {
	sum := xxhash.Sum64String(strings.Join(parts, "\x00"))
	return fmt.Sprintf("%s%s:%016x", keyPrefix, fingerprint, sum)
}

type noopCache struct{}

// NewNoop returns a cache that stores nothing. Used when redis is not configured.
func NewNoop() ChartCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noopCache) Set(context.Context, string, []byte) error         { return nil }
func (noopCache) Ping(context.Context) error                        { return nil }
func (noopCache) Close() error                                      { return nil }
