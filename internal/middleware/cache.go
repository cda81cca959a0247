// Package middleware holds the Echo middleware for this service: a Redis
// response cache for the public listing endpoints and a Redis token-bucket
// rate limiter.  Both are optional; with no Redis client they collapse into
// pass-through so the service never depends on Redis to answer.
package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/oseyo/open-space-listing/internal/config"
)

// cachedResponse is the stored form of one cacheable response.
type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"content_type"`
    Body        []byte `json:"body"`
}

// bodyCapture tees the response body into a buffer while it streams to the
// client, so a miss can be stored after the handler ran.
type bodyCapture struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
    if w.buf.Len() < w.limit {
        n := w.limit - w.buf.Len()
        if n > len(b) {
            n = len(b)
        }
        w.buf.Write(b[:n])
    }
    return w.ResponseWriter.Write(b)
}

// NewResponseCache caches successful GET responses in Redis for cfg.TTL.
// The listing this service serves refreshes on a short poll, so a few
// seconds of caching absorbs the poll storm without holding a stale window
// for long.  Responses larger than MaxBodyBytes are served but not stored.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return passthrough
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c)

            if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var stored cachedResponse
                if json.Unmarshal(raw, &stored) == nil && stored.Status != 0 {
                    c.Response().Header().Set(echo.HeaderContentType, stored.ContentType)
                    c.Response().Header().Set("X-Cache", "HIT")
                    return c.Blob(stored.Status, stored.ContentType, stored.Body)
                }
            }

            cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }
            if cw.status == http.StatusOK && cw.buf.Len() < cfg.MaxBodyBytes {
                stored := cachedResponse{
                    Status:      cw.status,
                    ContentType: c.Response().Header().Get(echo.HeaderContentType),
                    Body:        cw.buf.Bytes(),
                }
                if raw, err := json.Marshal(stored); err == nil {
                    // Store outside the request context so a client hangup
                    // does not abort the write.
                    _ = rdb.SetEx(context.Background(), key, raw, cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}

// cacheKey hashes route and query under the configured prefix.
func cacheKey(prefix string, c echo.Context) string {
    sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}

// passthrough is the disabled form of both middlewares.
func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
    return func(c echo.Context) error { return next(c) }
}
