package middlewares

import (
	"net/http"
	"time"

	"clinicbook-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request to the logrus access
// logger, separate from the structured zap application log.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey:  r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY),
				constvars.LoggingMethodKey:     r.Method,
				constvars.LoggingEndpointKey:   r.RequestURI,
				constvars.LoggingStatusCodeKey: rec.statusCode,
				constvars.LoggingRemoteAddrKey: r.RemoteAddr,
				constvars.LoggingDurationKey:   time.Since(start).String(),
			}).Info("request completed")
		})
	}
}
