package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/softcare/softcare-backend/pkg/clientip"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs one line per request with a generated request ID,
// method, path, status and duration. The request ID is echoed back in the
// X-Request-ID header.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %s %d %s ip=%s", requestID, r.Method, r.URL.Path,
			rec.status, time.Since(start), clientip.RealClientIP(r))
	})
}
