package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/softcare/softcare-backend/internal/services"
	"github.com/softcare/softcare-backend/pkg/clientip"
)

const dbTimeout = 5 * time.Second

// ErrorResponse is the common error body for all handlers.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

func dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// withRequestInfo fills the HTTP fields of an audit event from the request.
func withRequestInfo(r *http.Request, ev services.AuditEvent) services.AuditEvent {
	ev.HTTPMethod = r.Method
	ev.RequestURL = r.URL.Path
	ev.IPAddress = clientip.RealClientIP(r)
	return ev
}

// parseDate parses a YYYY-MM-DD date into a UTC midnight time, the canonical
// form stored in entry_date.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// validScale reports whether an optional 1-5 metric is absent or in range.
func validScale(v *int) bool {
	return v == nil || (*v >= 1 && *v <= 5)
}

// endOfDay returns the last representable instant of the day d starts, so an
// inclusive end date admits everything stamped that day but nothing from the
// following midnight.
func endOfDay(d time.Time) time.Time {
	return d.Add(24*time.Hour - time.Nanosecond)
}
