package clientip

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealClientIPFromRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.7:54321"

	assert.Equal(t, "203.0.113.7", RealClientIP(r))
}

func TestRealClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")

	assert.Equal(t, "198.51.100.4", RealClientIP(r))
}

func TestRealClientIPRealIPHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Real-IP", "198.51.100.9")

	assert.Equal(t, "198.51.100.9", RealClientIP(r))
}

func TestRealClientIPNoPort(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.7"

	assert.Equal(t, "203.0.113.7", RealClientIP(r))
}
