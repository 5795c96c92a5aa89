package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"sobanhang/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ── Per-IP fixed-window rate limiter ─────────────────────────────────────────
// The POS is normally driven by one counter terminal; the limiter stops a
// stuck client (a barcode scanner repeating, a retry loop) from flooding the
// write-through storage.

type window struct {
	count int
	ends  time.Time
}

type RateLimiter struct {
	limit  int
	period time.Duration

	mu        sync.Mutex
	clients   map[string]*window
	lastPurge time.Time
	now       func() time.Time
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		period:  period,
		clients: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow counts one request from ip and reports whether it is within the limit,
// plus the time the current window ends.
func (l *RateLimiter) Allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPurge) >= l.period {
		l.purgeLocked(now)
	}

	w, ok := l.clients[ip]
	if !ok || now.After(w.ends) {
		w = &window{ends: now.Add(l.period)}
		l.clients[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.ends
}

// purgeLocked drops expired windows so idle IPs do not accumulate.
func (l *RateLimiter) purgeLocked(now time.Time) {
	purged := 0
	for ip, w := range l.clients {
		if now.After(w.ends) {
			delete(l.clients, ip)
			purged++
		}
	}
	l.lastPurge = now
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.clients)).Msg("rate limiter purged")
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, ends := l.Allow(c.ClientIP())
		if !ok {
			retry := int(ends.Sub(l.now()).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("too many requests, try again shortly"))
			return
		}
		c.Next()
	}
}
