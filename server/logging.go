package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// requestLogger logs one line per request at Info, or Debug for probes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		entry := s.log.WithFields(logrus.Fields{
			"request":  middleware.GetReqID(r.Context()),
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   status,
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start).Round(time.Microsecond),
			"remote":   r.RemoteAddr,
		})
		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
			entry.Debug("http request")
			return
		}
		entry.Info("http request")
	})
}
