package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

// Limiter decides whether a request identified by key may proceed.
// retryAfter is a hint for rejected requests.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

type rejectionRecorder interface {
	IncrementRateLimitRejections(limiter string)
}

// RateLimit returns middleware that limits requests per client IP.
// Limiter errors fail open: the request is served and the error logged.
func RateLimit(name string, limiter Limiter, rec rejectionRecorder, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ctxutil.ClientIPFromCtx(r.Context())
			if key == "" {
				key = clientIPFromRequest(r, false)
			}

			allowed, retryAfter, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable",
					slog.String("limiter", name),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				rec.IncrementRateLimitRejections(name)
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MemoryLimiter implements per-key token bucket rate limiting in process.
type MemoryLimiter struct {
	buckets sync.Map // map[string]*bucket
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewMemoryLimiter creates a limiter allowing maxPerMinute requests per key
// with a burst of the same size, plus background cleanup of idle keys.
// Call Stop() on shutdown.
func NewMemoryLimiter(maxPerMinute int, cleanupInterval time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		limit:   rate.Limit(float64(maxPerMinute) / 60.0),
		burst:   maxPerMinute,
		idleTTL: 10 * time.Minute,
		stop:    make(chan struct{}),
	}
	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Allow consumes one token for key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	b := l.getBucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.lastSeen = now

	res := b.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Minute, nil
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

func (l *MemoryLimiter) getBucket(key string) *bucket {
	if v, ok := l.buckets.Load(key); ok {
		return v.(*bucket)
	}
	v, _ := l.buckets.LoadOrStore(key, &bucket{
		limiter:  rate.NewLimiter(l.limit, l.burst),
		lastSeen: time.Now(),
	})
	return v.(*bucket)
}

func (l *MemoryLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(time.Now())
		}
	}
}

func (l *MemoryLimiter) evictIdle(now time.Time) {
	l.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > l.idleTTL {
			l.buckets.Delete(key)
		}
		return true
	})
}
