package postal

import (
	"container/list"
	"context"
	"sync"
	"time"

	"volcano-insurance-api/internal/observability"

	"github.com/jonboulle/clockwork"
)

// Validator answers whether a zip code exists.
type Validator interface {
	IsValid(ctx context.Context, zip string) (bool, error)
}

// CachedValidator wraps a Validator with a bounded in-memory cache.
//
// Known zips stay cached until evicted. Unknown zips are remembered for
// negativeTTL only, since the upstream directory gains new codes and a
// transient miss should not stick. Errors are never cached.
type CachedValidator struct {
	inner       Validator
	negativeTTL time.Duration
	clock       clockwork.Clock
	metrics     *observability.Metrics

	mu         sync.Mutex
	maxEntries int
	order      *list.List // front is most recently used
	zips       map[string]*list.Element
}

type zipAnswer struct {
	zip     string
	valid   bool
	expires time.Time // zero for valid zips
}

// NewCachedValidator creates a cache decorator around a validator. A
// non-positive negativeTTL disables caching of unknown zips.
func NewCachedValidator(inner Validator, maxEntries int, negativeTTL time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedValidator {
	if maxEntries < 1 {
		maxEntries = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedValidator{
		inner:       inner,
		negativeTTL: negativeTTL,
		clock:       clock,
		metrics:     metrics,
		maxEntries:  maxEntries,
		order:       list.New(),
		zips:        make(map[string]*list.Element),
	}
}

func (c *CachedValidator) IsValid(ctx context.Context, zip string) (bool, error) {
	if valid, ok := c.lookup(zip); ok {
		c.metrics.PostalCache.WithLabelValues("hit").Inc()
		return valid, nil
	}
	c.metrics.PostalCache.WithLabelValues("miss").Inc()

	valid, err := c.inner.IsValid(ctx, zip)
	if err != nil {
		return false, err
	}
	c.store(zip, valid)
	return valid, nil
}

func (c *CachedValidator) lookup(zip string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.zips[zip]
	if !ok {
		return false, false
	}
	answer := el.Value.(*zipAnswer)
	if !answer.expires.IsZero() && !c.clock.Now().Before(answer.expires) {
		c.order.Remove(el)
		delete(c.zips, zip)
		return false, false
	}
	c.order.MoveToFront(el)
	return answer.valid, true
}

func (c *CachedValidator) store(zip string, valid bool) {
	if !valid && c.negativeTTL <= 0 {
		return
	}

	answer := &zipAnswer{zip: zip, valid: valid}
	if !valid {
		answer.expires = c.clock.Now().Add(c.negativeTTL)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.zips[zip]; ok {
		el.Value = answer
		c.order.MoveToFront(el)
		return
	}
	c.zips[zip] = c.order.PushFront(answer)

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.zips, oldest.Value.(*zipAnswer).zip)
	}
}

// Len reports the number of cached answers, including unexpired unknown zips.
func (c *CachedValidator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
