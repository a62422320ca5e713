package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the client IP for rate limiting and audit records.
// When the app runs behind a reverse proxy the first X-Forwarded-For hop is
// the client; otherwise fall back to X-Real-IP, then RemoteAddr.
func RealClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.SplitN(fwd, ",", 2)[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}
