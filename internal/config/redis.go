package config

// This file defines a Redis client constructor for the application.  Redis is
// used for rate limiting and for caching the public listing responses.  The
// connection parameters are loaded from environment variables.  If the server
// cannot be reached during startup, the constructor returns nil and callers
// degrade gracefully by disabling caching and rate limiting.

import (
    "context"
    "os"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_URL – full redis:// or rediss:// URL (takes precedence)
//   REDIS_ADDR – host:port (default "localhost:6379")
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
// The returned client is nil when the server does not answer a ping within
// two seconds.
func NewRedisClient() *redis.Client {
    opts := redisOptions()
    if opts == nil {
        return nil
    }
    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}

// redisOptions resolves connection options from the environment.
func redisOptions() *redis.Options {
    if url := os.Getenv("REDIS_URL"); url != "" {
        opts, err := redis.ParseURL(url)
        if err != nil {
            return nil
        }
        return opts
    }
    addr := os.Getenv("REDIS_ADDR")
    if addr == "" {
        addr = "localhost:6379"
    }
    dbNum := 0
    if s := os.Getenv("REDIS_DB"); s != "" {
        if n, err := strconv.Atoi(s); err == nil {
            dbNum = n
        }
    }
    return &redis.Options{
        Addr:     addr,
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       dbNum,
    }
}
