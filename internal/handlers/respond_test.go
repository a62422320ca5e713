package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDate("14/03/2025")
	assert.Error(t, err)
	_, err = parseDate("")
	assert.Error(t, err)
}

func TestValidScale(t *testing.T) {
	three := 3
	zero := 0
	six := 6

	assert.True(t, validScale(nil))
	assert.True(t, validScale(&three))
	assert.False(t, validScale(&zero))
	assert.False(t, validScale(&six))
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	end := endOfDay(day)

	// Everything stamped on the 14th is admitted, the next midnight is not.
	lastInstant := time.Date(2025, 3, 14, 23, 59, 59, 999999999, time.UTC)
	nextMidnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, lastInstant, end)
	assert.False(t, lastInstant.After(end))
	assert.True(t, nextMidnight.After(end))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 404, "User not found")

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "User not found", body.Message)
}
