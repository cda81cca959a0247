package middleware

import (
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/oseyo/open-space-listing/internal/config"
)

// bucketScript implements a token bucket atomically in Redis.  State is one
// hash per key holding the token count and the last refill instant; the
// script refills, then either takes a token or reports how long until the
// next one.  Returns {allowed, retry_after_ms}.
var bucketScript = redis.NewScript(`
    local key = KEYS[1]
    local now_ms = tonumber(ARGV[1])
    local capacity = tonumber(ARGV[2])
    local refill_tokens = tonumber(ARGV[3])
    local interval_ms = tonumber(ARGV[4])
    local ttl_seconds = tonumber(ARGV[5])

    local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
    local tokens = tonumber(state[1])
    local last_refill = tonumber(state[2])
    if tokens == nil or last_refill == nil then
        tokens = capacity
        last_refill = now_ms
    end

    local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
    if intervals > 0 then
        tokens = math.min(capacity, tokens + intervals * refill_tokens)
        last_refill = last_refill + intervals * interval_ms
    end

    local allowed = 0
    local retry_after_ms = 0
    if tokens > 0 then
        allowed = 1
        tokens = tokens - 1
    else
        retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
    end

    redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
    redis.call('EXPIRE', key, ttl_seconds)
    return {allowed, retry_after_ms}
`)

// NewRateLimit returns a token-bucket rate limiter keyed by client IP and
// route.  When Redis is unavailable or the script errors the request is let
// through: the limiter protects against abuse, it must not become an outage
// of its own.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return passthrough
    }
    intervalMS := cfg.RefillInterval.Milliseconds()
    ttlSeconds := int64(cfg.TTL / time.Second)

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
            res, err := bucketScript.Run(c.Request().Context(), rdb,
                []string{key},
                time.Now().UnixMilli(), cfg.Capacity, cfg.RefillTokens, intervalMS, ttlSeconds,
            ).Int64Slice()
            if err != nil || len(res) != 2 {
                return next(c) // fail open
            }
            if res[0] == 1 {
                return next(c)
            }
            retryAfter := (time.Duration(res[1]) * time.Millisecond).Round(time.Second)
            if retryAfter < time.Second {
                retryAfter = time.Second
            }
            c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter/time.Second)))
            return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
        }
    }
}
