package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// RateLimiter tracks a token bucket per client IP and temporarily blocks
// clients that exhaust it. It guards the booking mutation endpoints on top
// of the coarse per-IP limit applied to the whole router.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				r.mu.Unlock()

				writeLimitExceeded(w, constvars.ErrClientTemporarilyBlocked)
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.blocked[ip] = time.Now().Add(r.blockTime)
			writeLimitExceeded(w, constvars.ErrClientTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func writeLimitExceeded(w http.ResponseWriter, message string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusTooManyRequests)
	json.NewEncoder(w).Encode(responses.ErrorResponse{Error: message})
}
