package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/campus_geofence/internal/models"
)

// Collector объединяет метрики Prometheus для цикла мониторинга и HTTP API.
// Реализует service.MetricsRecorder.
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks                *prometheus.CounterVec
	Transitions          *prometheus.CounterVec
	Breaches             prometheus.Counter
	Notifications        *prometheus.CounterVec
	NotificationDuration prometheus.Histogram
	ForceClosed          prometheus.Counter
	Students             *prometheus.GaugeVec

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCollector регистрирует метрики в reg, при nil используется глобальный реестр
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_monitor_ticks_total",
		Help: "Monitoring ticks, labeled by whether active hours were in effect.",
	}, []string{"active"}), "campus_monitor_ticks_total")
	if err != nil {
		return nil, err
	}
	transitions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_membership_transitions_total",
		Help: "Membership changes, labeled by from and to state.",
	}, []string{"from", "to"}), "campus_membership_transitions_total")
	if err != nil {
		return nil, err
	}
	breaches, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_breaches_total",
		Help: "Inside to outside transitions that produced a breach event.",
	}), "campus_breaches_total")
	if err != nil {
		return nil, err
	}
	notifications, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_notifications_total",
		Help: "Breach notifications, labeled by result.",
	}, []string{"result"}), "campus_notifications_total")
	if err != nil {
		return nil, err
	}
	notifyDur, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "campus_notification_duration_seconds",
		Help:    "Latency of the notification service in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}), "campus_notification_duration_seconds")
	if err != nil {
		return nil, err
	}
	forceClosed, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_sessions_force_closed_total",
		Help: "Sessions closed at the end of active hours.",
	}), "campus_sessions_force_closed_total")
	if err != nil {
		return nil, err
	}
	students, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "campus_students",
		Help: "Current number of monitored students per membership state.",
	}, []string{"membership"}), "campus_students")
	if err != nil {
		return nil, err
	}
	httpRequests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "campus_http_requests_total")
	if err != nil {
		return nil, err
	}
	httpDurations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campus_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"}), "campus_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:             gatherer,
		Ticks:                ticks,
		Transitions:          transitions,
		Breaches:             breaches,
		Notifications:        notifications,
		NotificationDuration: notifyDur,
		ForceClosed:          forceClosed,
		Students:             students,
		HTTPRequests:         httpRequests,
		HTTPDurations:        httpDurations,
	}, nil
}

func (c *Collector) TickCompleted(active bool) {
	c.Ticks.WithLabelValues(strconv.FormatBool(active)).Inc()
}

func (c *Collector) TransitionRecorded(from, to models.Membership) {
	c.Transitions.WithLabelValues(from.String(), to.String()).Inc()
	if from == models.MembershipInside && to == models.MembershipOutside {
		c.Breaches.Inc()
	}
}

func (c *Collector) NotificationCompleted(d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.Notifications.WithLabelValues(result).Inc()
	c.NotificationDuration.Observe(d.Seconds())
}

func (c *Collector) SessionsForceClosed(n int) {
	c.ForceClosed.Add(float64(n))
}

func (c *Collector) MembershipCounts(inside, outside, unknown int) {
	c.Students.WithLabelValues(models.MembershipInside.String()).Set(float64(inside))
	c.Students.WithLabelValues(models.MembershipOutside.String()).Set(float64(outside))
	c.Students.WithLabelValues(models.MembershipUnknown.String()).Set(float64(unknown))
}

// Handler возвращает готовый обработчик /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// GinMiddleware считает запросы и их длительность по маршруту
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDurations.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return c, nil
}
