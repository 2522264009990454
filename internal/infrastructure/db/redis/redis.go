// Package redis holds the shared Redis connection used by the session store
// and the readiness probe. It is only dialed when SESSION_BACKEND=redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName  = "employee-portal"
	dialTimeout = 5 * time.Second
)

// Connect dials Redis and verifies the connection with a ping so a bad
// address fails at startup instead of on the first login.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		DB:         db,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
