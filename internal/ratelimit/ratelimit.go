// Package ratelimit mantém um token bucket por chave (IP, e-mail).
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limit  rate.Limit
	burst  int
	mu     sync.Mutex
	store  map[string]*entry
	maxAge time.Duration
}

type entry struct {
	limiter *rate.Limiter
	updated time.Time
}

func New(reqPerSec float64, burst int) *Limiter {
	return &Limiter{
		limit:  rate.Limit(reqPerSec),
		burst:  burst,
		store:  make(map[string]*entry),
		maxAge: 10 * time.Minute,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.store[key]; ok {
		e.updated = time.Now()
		return e.limiter
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.store[key] = &entry{limiter: lim, updated: time.Now()}

	for k, e := range l.store {
		if time.Since(e.updated) > l.maxAge {
			delete(l.store, k)
		}
	}

	return lim
}

// Allow consome um token da chave. Chave vazia nunca é limitada.
func (l *Limiter) Allow(key string) bool {
	if key == "" {
		return true
	}
	return l.get(key).Allow()
}
