package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kiroku"

// Redis operation metrics
var (
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_operations_total",
			Help:      "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "redis_operation_duration_seconds",
			Help:      "Redis operation duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redis_connection_errors_total",
			Help:      "Total Redis connection errors",
		},
	)
)

// Calendar metrics
var (
	// MonthLoadsTotal counts lazy month loads by result (loaded|noop|stale|error)
	MonthLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_month_loads_total",
			Help:      "Lazy calendar month loads by result",
		},
		[]string{"result"},
	)

	OpenCalendars = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calendar_open_views",
			Help:      "Calendar views currently open",
		},
	)
)

// Session metrics
var (
	TimezoneFixedSessions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timezone_fixed_sessions_total",
			Help:      "Sessions whose start time was corrected for a wrong timezone",
		},
	)

	TimezoneFixFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timezone_fix_failures_total",
			Help:      "Timezone corrections whose batch write failed",
		},
	)
)

// BotCommandsTotal counts Discord commands by subcommand and status
var BotCommandsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bot_commands_total",
		Help:      "Discord commands handled by subcommand and status",
	},
	[]string{"command", "status"},
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
