package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnblockIPRequiresAddress(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/v1/admin/unblock-ip", nil)

	UnblockIP(rec, r)

	assert.Equal(t, 400, rec.Code)
}

func TestUnblockIPWithoutRateLimitStore(t *testing.T) {
	// RedisClient is nil in tests, so the block lookup reports the store
	// unavailable rather than dereferencing a nil client.
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("PUT", "/api/v1/admin/unblock-ip?ip=203.0.113.7", nil)

	UnblockIP(rec, r)

	assert.Equal(t, 503, rec.Code)
}
