package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	CoursesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "learnhub_courses_loaded",
			Help: "Number of courses in the content registry",
		},
	)

	DiscoveryFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnhub_course_discovery_failures_total",
			Help: "Course providers skipped during discovery",
		},
		[]string{"provider"},
	)

	QuizAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnhub_quiz_attempts_total",
			Help: "Quiz answers submitted",
		},
		[]string{"course", "correct"},
	)

	ProgressEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "learnhub_progress_events_total",
			Help: "Telemetry events recorded",
		},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(CoursesLoaded)
		prometheus.MustRegister(DiscoveryFailures)
		prometheus.MustRegister(QuizAttempts)
		prometheus.MustRegister(ProgressEvents)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
