package configsredis

import (
	"context"
	"time"

	"shopconsole.io/configs/configslog"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewClient connects to Redis at url (host:port or redis:// URL). An empty url
// means Redis is not configured and nil is returned without error.
func NewClient(ctx context.Context, url, password string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	var opts *redis.Options
	if parsed, err := redis.ParseURL(url); err == nil {
		opts = parsed
	} else {
		opts = &redis.Options{Addr: url}
	}
	if password != "" {
		opts.Password = password
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		configslog.Log.Error("Redis ping failed", zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return nil, err
	}
	configslog.Log.Info("Redis connected", zap.String("addr", opts.Addr))
	return client, nil
}
