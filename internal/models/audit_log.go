package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit log event types.
const (
	EventUserLogin      = "USER_LOGIN"
	EventUserLogout     = "USER_LOGOUT"
	EventUserCreated    = "USER_CREATED"
	EventUserUpdated    = "USER_UPDATED"
	EventUserDeleted    = "USER_DELETED"
	EventPasswordChange = "PASSWORD_CHANGED"

	EventAssessmentCreated = "ASSESSMENT_CREATED"
	EventAssessmentViewed  = "ASSESSMENT_VIEWED"

	EventDiaryEntryCreated    = "DIARY_ENTRY_CREATED"
	EventDiaryEntryUpdated    = "DIARY_ENTRY_UPDATED"
	EventDiaryEntryViewed     = "DIARY_ENTRY_VIEWED"
	EventDiaryConcernDetected = "DIARY_CONCERN_DETECTED"

	EventSupportChannelAccessed = "SUPPORT_CHANNEL_ACCESSED"

	EventSecurityViolation = "SECURITY_VIOLATION"
	EventSystemError       = "SYSTEM_ERROR"
)

// Audit log severities.
const (
	SeverityInfo     = "INFO"
	SeverityWarn     = "WARN"
	SeverityError    = "ERROR"
	SeverityCritical = "CRITICAL"
)

// AuditLog is an immutable record of one user-facing or system event.
// Records are only ever inserted and read, never updated.
type AuditLog struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	EventType   string `bson:"event_type" json:"event_type"`
	Description string `bson:"description" json:"description"`

	// User information
	UserID    string `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserEmail string `bson:"user_email,omitempty" json:"user_email,omitempty"`

	// Request information
	HTTPMethod string `bson:"http_method,omitempty" json:"http_method,omitempty"`
	RequestURL string `bson:"request_url,omitempty" json:"request_url,omitempty"`
	IPAddress  string `bson:"ip_address,omitempty" json:"ip_address,omitempty"`

	// Event details
	Severity   string `bson:"severity" json:"severity"`
	ResourceID string `bson:"resource_id,omitempty" json:"resource_id,omitempty"`

	// Results
	Success      bool   `bson:"success" json:"success"`
	ErrorMessage string `bson:"error_message,omitempty" json:"error_message,omitempty"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
