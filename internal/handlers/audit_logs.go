package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/softcare/softcare-backend/internal/models"
	"github.com/softcare/softcare-backend/internal/services"
)

func writeAuditLogs(w http.ResponseWriter, logs []models.AuditLog, err error) {
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// GetAuditLogsByUser returns all audit records for a user.
func GetAuditLogsByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.AuditLogsByUser(ctx, chi.URLParam(r, "userId"))
	writeAuditLogs(w, logs, err)
}

// GetRecentAuditLogsByUser returns a user's latest records, newest first.
func GetRecentAuditLogsByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.RecentAuditLogsByUser(ctx, chi.URLParam(r, "userId"))
	writeAuditLogs(w, logs, err)
}

// GetAuditLogsByEventType returns all records of one event type.
func GetAuditLogsByEventType(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.AuditLogsByEventType(ctx, chi.URLParam(r, "eventType"))
	writeAuditLogs(w, logs, err)
}

// GetAuditLogsBySeverity returns all records at one severity.
func GetAuditLogsBySeverity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.AuditLogsBySeverity(ctx, chi.URLParam(r, "severity"))
	writeAuditLogs(w, logs, err)
}

// GetCriticalAuditLogs returns records with severity ERROR or CRITICAL.
func GetCriticalAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.CriticalAuditLogs(ctx)
	writeAuditLogs(w, logs, err)
}

// GetFailedAuditOperations returns records of failed operations.
func GetFailedAuditOperations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.FailedAuditOperations(ctx)
	writeAuditLogs(w, logs, err)
}

// GetAuditLogsByUserInRange returns a user's records between two timestamps.
// End date is inclusive: the filter extends to the end of that day.
func GetAuditLogsByUserInRange(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	logs, err := services.AuditLogsByUserInRange(ctx, chi.URLParam(r, "userId"), start, endOfDay(end))
	writeAuditLogs(w, logs, err)
}

// GetAuditEventTypeCount counts records of one event type.
func GetAuditEventTypeCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	eventType := chi.URLParam(r, "eventType")
	count, err := services.CountAuditLogsByEventType(ctx, eventType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"event_type": eventType,
		"count":      count,
	})
}

// GetFailedOperationsCount counts records of failed operations.
func GetFailedOperationsCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	count, err := services.CountFailedAuditOperations(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}
