package middleware

import (
	"net/http"
	"time"

	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Collector
}

func NewLoggingMiddleware(log *logrus.Logger, collector *metrics.Collector) *LoggingMiddleware {
	return &LoggingMiddleware{
		log:     log,
		metrics: collector,
	}
}

// Handle logs every request and records it under its route template, so
// /patients/{id} stays one series.
func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		duration := time.Since(start)
		m.metrics.RecordHTTPRequest(r.Method, route, rec.status, duration)

		entry := m.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": duration.Milliseconds(),
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request handled")
	})
}
