package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/Malcan-Technologies/shoraka-sub003/devicefp"
	"golang.org/x/time/rate"
)

// RateLimit returns a middleware applying a per-client-IP token bucket.
// Login and refresh are the endpoints worth protecting: both are unauthenticated
// and both touch the provider or the token store.
func RateLimit(perSecond, burst int) func(http.Handler) http.Handler {
	type bucket struct {
		lim *rate.Limiter
		ts  time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	const ttl = 5 * time.Minute

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := devicefp.ClientIP(r)

			now := time.Now()

			mu.Lock()
			b, ok := buckets[ip]
			if !ok {
				b = &bucket{lim: rate.NewLimiter(rate.Limit(perSecond), burst), ts: now}
				buckets[ip] = b

				// Opportunistic pruning keeps the map bounded without a
				// background goroutine per limiter.
				for k, old := range buckets {
					if now.Sub(old.ts) > ttl {
						delete(buckets, k)
					}
				}
			}
			b.ts = now
			allowed := b.lim.Allow()
			mu.Unlock()

			if !allowed {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte("rate limit exceeded"))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
