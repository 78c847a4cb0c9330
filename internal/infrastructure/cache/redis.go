package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultPingTimeout = 5 * time.Second

// NewRedisClient connects to the token store and fails fast when it does not
// answer a PING within the configured timeout.
func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	log.WithFields(logrus.Fields{
		"addr": addr,
		"db":   cfg.DB,
	}).Info("Connected to Redis")

	return client, nil
}
