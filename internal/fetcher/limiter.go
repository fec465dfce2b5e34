package fetcher

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiters lazily creates one rate limiter per host so concurrent
// runs against different sites never starve each other while a single
// site is still fetched politely.
type hostLimiters struct {
	mu      sync.Mutex
	byHost  map[string]*rate.Limiter
	perHost rate.Limit
	burst   int
}

func newHostLimiters(perHost rate.Limit, burst int) *hostLimiters {
	return &hostLimiters{
		byHost:  make(map[string]*rate.Limiter),
		perHost: perHost,
		burst:   burst,
	}
}

func (h *hostLimiters) wait(ctx context.Context, host string) error {
	h.mu.Lock()
	lim, ok := h.byHost[host]
	if !ok {
		lim = rate.NewLimiter(h.perHost, h.burst)
		h.byHost[host] = lim
	}
	h.mu.Unlock()
	return lim.Wait(ctx)
}
