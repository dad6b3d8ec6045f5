// Package geocode decorates geocoders with caching. Place-name lookups are
// highly repetitive (a user searches the same town over and over), so an
// in-memory LRU in front of the upstream saves most of the API traffic.
package geocode

import (
	"context"
	"strings"
	"sync"

	"github.com/krishikendra/agri-data-service/internal/domain"
	"github.com/krishikendra/agri-data-service/internal/observability"
)

// CachedForwardGeocoder wraps a ForwardGeocoder with an in-memory LRU cache
// keyed on the lowercased place name.
type CachedForwardGeocoder struct {
	inner   domain.ForwardGeocoder
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedForwardGeocoder creates a cache decorator around a geocoder.
func NewCachedForwardGeocoder(inner domain.ForwardGeocoder, maxEntries int, metrics *observability.Metrics) *CachedForwardGeocoder {
	return &CachedForwardGeocoder{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Geocode resolves a place name, serving repeated lookups from the cache.
// Errors, including ErrPlaceNotFound, are never cached so a transient
// upstream failure can be retried.
func (c *CachedForwardGeocoder) Geocode(ctx context.Context, place string) (domain.GeocodedPlace, error) {
	key := strings.ToLower(strings.TrimSpace(place))
	if result, ok := c.cache.get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	result, err := c.inner.Geocode(ctx, place)
	if err != nil {
		return result, err
	}
	if result.Name != "" {
		c.cache.put(key, result)
	}
	return result, nil
}

// lruCache is a simple thread-safe LRU cache for geocoded places.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.GeocodedPlace
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.GeocodedPlace, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.GeocodedPlace{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.GeocodedPlace) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
