package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shivam970806/VMS/pkg/api"
	"github.com/shivam970806/VMS/pkg/logger"
	"github.com/shivam970806/VMS/pkg/redis"
)

// slidingWindowScript trims the window, counts it and admits the request if
// there is room. KEYS[1]=key, ARGV = now ms, window start ms, window ms, member, limit.
// Returns the count including this request, or -1 when the limit is reached.
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowMs = tonumber(ARGV[3])
local member = ARGV[4]
local limit = tonumber(ARGV[5])

redis.call('ZREMRANGEBYSCORE', key, '0', windowStart)

local count = redis.call('ZCARD', key)
if count < limit then
  redis.call('ZADD', key, now, member)
  redis.call('PEXPIRE', key, windowMs)
  return count + 1
end
return -1
`

// RateLimitRecorder counts rejected requests
type RateLimitRecorder interface {
	RecordRateLimited()
}

// RateLimiter is a redis backed sliding-window limiter keyed by caller
type RateLimiter struct {
	client   redis.RedisClient
	limit    int
	window   time.Duration
	recorder RateLimitRecorder
	logger   logger.LoggerInterface
	api      api.Api
	now      func() time.Time
	member   func() string
}

// NewRateLimiter creates a limiter admitting limit requests per window. recorder may be nil.
func NewRateLimiter(client redis.RedisClient, limit int, window time.Duration, recorder RateLimitRecorder, appLogger logger.LoggerInterface) *RateLimiter {
	return &RateLimiter{
		client:   client,
		limit:    limit,
		window:   window,
		recorder: recorder,
		logger:   appLogger,
		api:      api.New(),
		now:      time.Now,
		member:   uuid.NewString,
	}
}

// Allow reports whether one more request from key fits in the current window
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now().UnixMilli()
	windowMs := l.window.Milliseconds()

	count, err := l.client.EvalInt(ctx, slidingWindowScript, []string{"rate_limit:vms:" + key},
		now, now-windowMs, windowMs, l.member(), l.limit)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}
	return count >= 0, nil
}

// Middleware rejects callers over the limit with 429. Redis failures let the request through.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := rateLimitKey(r)

		allowed, err := l.Allow(ctx, key)
		if err != nil {
			l.logger.WarnContext(ctx, "Rate limiter unavailable, allowing request", "key", key, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			l.logger.WarnContext(ctx, "Rate limit exceeded", "key", key, "limit", l.limit, "window", l.window.String())
			if l.recorder != nil {
				l.recorder.RecordRateLimited()
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(l.window.Seconds())))
			l.api.TooManyRequests(ctx, w, "Too many requests, please retry later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimitKey prefers the authenticated caller and falls back to the client IP
func rateLimitKey(r *http.Request) string {
	if userID, ok := UserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
