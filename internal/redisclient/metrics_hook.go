package redisclient

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/KirkDiggler/kiroku/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// MetricsHook records every Redis command in the Prometheus collectors
type MetricsHook struct{}

var _ redis.Hook = (*MetricsHook)(nil)

// DialHook counts failed connection attempts
func (h *MetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			metrics.RedisConnectionErrors.Inc()
		}
		return conn, err
	}
}

// ProcessHook times single commands
func (h *MetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		observe(cmd.Name(), err, time.Since(start))
		return err
	}
}

// ProcessPipelineHook times a pipeline or transaction as one operation
func (h *MetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		observe("pipeline", err, time.Since(start))
		return err
	}
}

func observe(operation string, err error, took time.Duration) {
	status := "success"
	if err != nil && !errors.Is(err, redis.Nil) {
		status = "error"
	}
	metrics.RedisOpsTotal.WithLabelValues(operation, status).Inc()
	metrics.RedisOpDuration.WithLabelValues(operation).Observe(took.Seconds())
}
