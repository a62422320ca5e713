package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/softcare/softcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestNewAuditLog_DefaultsSeverityFromSuccess(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := newAuditLog(AuditEvent{
		EventType:   models.EventUserCreated,
		Description: "User created: alice@example.com",
		UserID:      "user-1",
		Success:     true,
	}, now)

	assert.Equal(t, models.SeverityInfo, entry.Severity)
	assert.Equal(t, now, entry.Timestamp)
	assert.True(t, entry.Success)
	assert.False(t, entry.ID.IsZero())
}

func TestNewAuditLog_FailureDefaultsToError(t *testing.T) {
	entry := newAuditLog(AuditEvent{
		EventType:   models.EventUserLogin,
		Description: "Failed login attempt",
		Success:     false,
	}, time.Now())

	assert.Equal(t, models.SeverityError, entry.Severity)
	assert.False(t, entry.Success)
}

func TestNewAuditLog_SeverityOverride(t *testing.T) {
	entry := newAuditLog(AuditEvent{
		EventType: models.EventSecurityViolation,
		Severity:  models.SeverityCritical,
		Success:   false,
	}, time.Now())

	assert.Equal(t, models.SeverityCritical, entry.Severity)
}

func TestRecordAudit_ContainsWriteFailure(t *testing.T) {
	orig := insertAudit
	defer func() { insertAudit = orig }()

	insertAudit = func(ctx context.Context, entry *models.AuditLog) error {
		return errors.New("mongo down")
	}

	// Must not panic or propagate the storage error.
	RecordAudit(context.Background(), AuditEvent{
		EventType:   models.EventDiaryEntryCreated,
		Description: "Emotional diary entry created",
		UserID:      "user-1",
		Success:     true,
	})
}

func TestRecordAudit_PersistsStampedRecord(t *testing.T) {
	orig := insertAudit
	defer func() { insertAudit = orig }()

	var captured *models.AuditLog
	insertAudit = func(ctx context.Context, entry *models.AuditLog) error {
		captured = entry
		return nil
	}

	before := time.Now()
	RecordAudit(context.Background(), AuditEvent{
		EventType:   models.EventPasswordChange,
		Description: "Password changed for user: alice@example.com",
		UserID:      "user-1",
		UserEmail:   "alice@example.com",
		HTTPMethod:  "POST",
		RequestURL:  "/api/v1/users/user-1/change-password",
		IPAddress:   "10.0.0.1",
		Success:     true,
	})

	require.NotNil(t, captured)
	assert.Equal(t, models.EventPasswordChange, captured.EventType)
	assert.Equal(t, "alice@example.com", captured.UserEmail)
	assert.Equal(t, "POST", captured.HTTPMethod)
	assert.Equal(t, models.SeverityInfo, captured.Severity)
	assert.False(t, captured.Timestamp.Before(before))
}

// fakeAuditStore replaces findAuditLogs with an in-memory store that honors
// the user_id filter and the limit option the way the real collection would.
func fakeAuditStore(records []models.AuditLog) func(context.Context, bson.M, ...*options.FindOptions) ([]models.AuditLog, error) {
	return func(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.AuditLog, error) {
		out := []models.AuditLog{}
		for _, rec := range records {
			if userID, ok := filter["user_id"]; ok && rec.UserID != userID {
				continue
			}
			out = append(out, rec)
		}
		for _, opt := range opts {
			if opt.Limit != nil && int64(len(out)) > *opt.Limit {
				out = out[:*opt.Limit]
			}
		}
		return out, nil
	}
}

func TestRecentAuditLogsByUser_CappedAtLimit(t *testing.T) {
	orig := findAuditLogs
	defer func() { findAuditLogs = orig }()

	records := make([]models.AuditLog, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, models.AuditLog{
			EventType: models.EventDiaryEntryCreated,
			UserID:    "user-1",
			Timestamp: time.Date(2025, 6, 1, i, 0, 0, 0, time.UTC),
		})
	}
	findAuditLogs = fakeAuditStore(records)

	logs, err := RecentAuditLogsByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, logs, RecentAuditLimit)
}

func TestRecentAuditLogsByUser_OnlyRequestedUser(t *testing.T) {
	orig := findAuditLogs
	defer func() { findAuditLogs = orig }()

	findAuditLogs = fakeAuditStore([]models.AuditLog{
		{EventType: models.EventUserLogin, UserID: "user-1"},
		{EventType: models.EventUserLogin, UserID: "user-2"},
		{EventType: models.EventUserCreated, UserID: "user-1"},
	})

	logs, err := RecentAuditLogsByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, rec := range logs {
		assert.Equal(t, "user-1", rec.UserID)
	}
}

func TestLogSecurityViolation_IsCriticalFailure(t *testing.T) {
	orig := insertAudit
	defer func() { insertAudit = orig }()

	var captured *models.AuditLog
	insertAudit = func(ctx context.Context, entry *models.AuditLog) error {
		captured = entry
		return nil
	}

	LogSecurityViolation(context.Background(), "IP blocked after rate limit abuse", "", "10.0.0.9")

	require.NotNil(t, captured)
	assert.Equal(t, models.EventSecurityViolation, captured.EventType)
	assert.Equal(t, models.SeverityCritical, captured.Severity)
	assert.Equal(t, "10.0.0.9", captured.IPAddress)
	assert.False(t, captured.Success)
}
