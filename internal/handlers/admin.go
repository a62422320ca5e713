package handlers

import (
	"log"
	"net/http"

	"github.com/softcare/softcare-backend/internal/middleware"
)

// UnblockIP lifts a temporary rate-limit block from an IP address. Admin
// operation; the block otherwise expires on its own after 24 hours.
func UnblockIP(w http.ResponseWriter, r *http.Request) {
	ip := r.URL.Query().Get("ip")
	if ip == "" {
		writeError(w, http.StatusBadRequest, "IP address is required")
		return
	}

	blocked, err := middleware.IsIPBlocked(ip)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "Rate limit storage is unavailable")
		return
	}
	if !blocked {
		writeError(w, http.StatusNotFound, "IP is not blocked: "+ip)
		return
	}

	if err := middleware.UnblockIP(ip); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to unblock IP")
		return
	}

	log.Printf("IP unblocked by admin: %s", ip)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "IP unblocked successfully",
		"ip":      ip,
	})
}
