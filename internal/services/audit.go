package services

import (
	"context"
	"log"
	"time"

	"github.com/softcare/softcare-backend/internal/database"
	"github.com/softcare/softcare-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const auditCollection = "audit_logs"

// RecentAuditLimit is the maximum number of records returned by RecentAuditLogsByUser.
const RecentAuditLimit = 10

// AuditEvent describes one auditable action. Zero-value optional fields are
// simply omitted from the stored record.
type AuditEvent struct {
	EventType    string
	Description  string
	UserID       string
	UserEmail    string
	HTTPMethod   string
	RequestURL   string
	IPAddress    string
	Severity     string // optional override; defaults from Success
	ResourceID   string
	Success      bool
	ErrorMessage string
}

// insertAudit persists one audit record. A package variable so tests can
// stub out the MongoDB write.
var insertAudit = func(ctx context.Context, entry *models.AuditLog) error {
	_, err := database.DB.Collection(auditCollection).InsertOne(ctx, entry)
	return err
}

// newAuditLog builds the immutable record for an event, stamping the
// timestamp and defaulting severity to INFO for successes and ERROR for
// failures unless the caller overrides it.
func newAuditLog(ev AuditEvent, now time.Time) models.AuditLog {
	severity := ev.Severity
	if severity == "" {
		if ev.Success {
			severity = models.SeverityInfo
		} else {
			severity = models.SeverityError
		}
	}

	return models.AuditLog{
		ID:           primitive.NewObjectID(),
		EventType:    ev.EventType,
		Description:  ev.Description,
		UserID:       ev.UserID,
		UserEmail:    ev.UserEmail,
		HTTPMethod:   ev.HTTPMethod,
		RequestURL:   ev.RequestURL,
		IPAddress:    ev.IPAddress,
		Severity:     severity,
		ResourceID:   ev.ResourceID,
		Success:      ev.Success,
		ErrorMessage: ev.ErrorMessage,
		Timestamp:    now,
	}
}

// RecordAudit writes one audit record. It never fails the caller: if the
// underlying write fails the error is logged for operational monitoring and
// swallowed, so an audit outage cannot abort a business operation.
func RecordAudit(ctx context.Context, ev AuditEvent) {
	entry := newAuditLog(ev, time.Now())
	if err := insertAudit(ctx, &entry); err != nil {
		log.Printf("[audit] failed to write %s record: %v", ev.EventType, err)
	}
}

// LogEvent records a generic event with the common fields.
func LogEvent(ctx context.Context, eventType, description, userID string, success bool) {
	RecordAudit(ctx, AuditEvent{
		EventType:   eventType,
		Description: description,
		UserID:      userID,
		Success:     success,
	})
}

// LogSecurityViolation records a CRITICAL failed event.
func LogSecurityViolation(ctx context.Context, description, userID, ipAddress string) {
	RecordAudit(ctx, AuditEvent{
		EventType:   models.EventSecurityViolation,
		Description: description,
		UserID:      userID,
		IPAddress:   ipAddress,
		Severity:    models.SeverityCritical,
		Success:     false,
	})
}

// LogSystemError records an internal failure with its error message.
func LogSystemError(ctx context.Context, description, errorMessage string) {
	RecordAudit(ctx, AuditEvent{
		EventType:    models.EventSystemError,
		Description:  description,
		ErrorMessage: errorMessage,
		Success:      false,
	})
}

// findAuditLogs runs one query against the audit collection. A package
// variable, like insertAudit, so tests can substitute a fake store.
var findAuditLogs = func(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.AuditLog, error) {
	cursor, err := database.DB.Collection(auditCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []models.AuditLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// AuditLogsByUser returns all audit records for a user.
func AuditLogsByUser(ctx context.Context, userID string) ([]models.AuditLog, error) {
	return findAuditLogs(ctx, bson.M{"user_id": userID})
}

// RecentAuditLogsByUser returns the user's newest records, timestamp
// descending, capped at RecentAuditLimit. Ordering between records with
// identical timestamps is storage-defined.
func RecentAuditLogsByUser(ctx context.Context, userID string) ([]models.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(RecentAuditLimit)
	return findAuditLogs(ctx, bson.M{"user_id": userID}, opts)
}

// AuditLogsByEventType returns all records with the given event type.
func AuditLogsByEventType(ctx context.Context, eventType string) ([]models.AuditLog, error) {
	return findAuditLogs(ctx, bson.M{"event_type": eventType})
}

// AuditLogsBySeverity returns all records with the given severity.
func AuditLogsBySeverity(ctx context.Context, severity string) ([]models.AuditLog, error) {
	return findAuditLogs(ctx, bson.M{"severity": severity})
}

// CriticalAuditLogs returns records with severity ERROR or CRITICAL.
func CriticalAuditLogs(ctx context.Context) ([]models.AuditLog, error) {
	filter := bson.M{"severity": bson.M{"$in": []string{models.SeverityError, models.SeverityCritical}}}
	return findAuditLogs(ctx, filter)
}

// FailedAuditOperations returns records of operations that did not succeed.
func FailedAuditOperations(ctx context.Context) ([]models.AuditLog, error) {
	return findAuditLogs(ctx, bson.M{"success": false})
}

// AuditLogsByUserInRange returns a user's records within [start, end],
// timestamp descending.
func AuditLogsByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]models.AuditLog, error) {
	filter := bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	return findAuditLogs(ctx, filter, opts)
}

// CountAuditLogsByEventType counts records with the given event type.
func CountAuditLogsByEventType(ctx context.Context, eventType string) (int64, error) {
	return database.DB.Collection(auditCollection).CountDocuments(ctx, bson.M{"event_type": eventType})
}

// CountFailedAuditOperations counts records of failed operations.
func CountFailedAuditOperations(ctx context.Context) (int64, error) {
	return database.DB.Collection(auditCollection).CountDocuments(ctx, bson.M{"success": false})
}
