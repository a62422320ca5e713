package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/softcare/softcare-backend/internal/database"
	"github.com/softcare/softcare-backend/internal/models"
	"github.com/softcare/softcare-backend/internal/scoring"
	"github.com/softcare/softcare-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assessmentCollection = "psychosocial_assessments"

type AssessmentInputRequest struct {
	UserID                     string `json:"user_id"`
	WorkStressLevel            *int   `json:"work_stress_level,omitempty"`
	WorkLifeBalance            *int   `json:"work_life_balance,omitempty"`
	JobSatisfaction            *int   `json:"job_satisfaction,omitempty"`
	RelationshipWithColleagues *int   `json:"relationship_with_colleagues,omitempty"`
	PersonalWellbeing          *int   `json:"personal_wellbeing,omitempty"`
}

type AssessmentResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Assessment *models.Assessment `json:"assessment,omitempty"`
}

func validAssessmentInputs(req *AssessmentInputRequest) bool {
	return validScale(req.WorkStressLevel) &&
		validScale(req.WorkLifeBalance) &&
		validScale(req.JobSatisfaction) &&
		validScale(req.RelationshipWithColleagues) &&
		validScale(req.PersonalWellbeing)
}

func findAssessmentByID(w http.ResponseWriter, id string) (*models.Assessment, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid assessment id")
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	var assessment models.Assessment
	err = database.DB.Collection(assessmentCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Assessment not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &assessment, true
}

func findAssessments(w http.ResponseWriter, filter bson.M, opts ...*options.FindOptions) ([]models.Assessment, bool) {
	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(assessmentCollection).Find(ctx, filter, opts...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	defer cursor.Close(ctx)

	assessments := []models.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return assessments, true
}

// CreateAssessment stores a new psychosocial assessment. The overall score
// and risk level are derived server-side; client-supplied values are ignored.
func CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req AssessmentInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "User id is required")
		return
	}
	if !validAssessmentInputs(&req) {
		writeError(w, http.StatusBadRequest, "Assessment levels must be between 1 and 5")
		return
	}

	now := time.Now()
	assessment := models.Assessment{
		ID:                         primitive.NewObjectID(),
		CreatedAt:                  now,
		UpdatedAt:                  now,
		UserID:                     req.UserID,
		WorkStressLevel:            req.WorkStressLevel,
		WorkLifeBalance:            req.WorkLifeBalance,
		JobSatisfaction:            req.JobSatisfaction,
		RelationshipWithColleagues: req.RelationshipWithColleagues,
		PersonalWellbeing:          req.PersonalWellbeing,
	}
	scoring.Apply(&assessment)

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(assessmentCollection).InsertOne(ctx, assessment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create assessment")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventAssessmentCreated,
		Description: "Psychosocial assessment created",
		UserID:      assessment.UserID,
		ResourceID:  assessment.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusCreated, AssessmentResponse{
		Success:    true,
		Message:    "Assessment created successfully",
		Assessment: &assessment,
	})
}

// GetAssessmentByID returns one assessment and records the access.
func GetAssessmentByID(w http.ResponseWriter, r *http.Request) {
	assessment, ok := findAssessmentByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()
	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventAssessmentViewed,
		Description: "Psychosocial assessment viewed",
		UserID:      assessment.UserID,
		ResourceID:  assessment.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, assessment)
}

// GetAssessmentsByUser returns a user's assessments, newest first.
func GetAssessmentsByUser(w http.ResponseWriter, r *http.Request) {
	assessments, ok := findAssessments(w, bson.M{"user_id": chi.URLParam(r, "userId")},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}

// GetLatestAssessment returns a user's most recent assessment.
func GetLatestAssessment(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := dbContext()
	defer cancel()

	var assessment models.Assessment
	err := database.DB.Collection(assessmentCollection).FindOne(ctx, bson.M{"user_id": userID},
		options.FindOne().SetSort(bson.M{"created_at": -1})).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "No assessments for user")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// UpdateAssessment replaces the five inputs and rederives score and risk.
func UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	var req AssessmentInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validAssessmentInputs(&req) {
		writeError(w, http.StatusBadRequest, "Assessment levels must be between 1 and 5")
		return
	}

	assessment, ok := findAssessmentByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	assessment.WorkStressLevel = req.WorkStressLevel
	assessment.WorkLifeBalance = req.WorkLifeBalance
	assessment.JobSatisfaction = req.JobSatisfaction
	assessment.RelationshipWithColleagues = req.RelationshipWithColleagues
	assessment.PersonalWellbeing = req.PersonalWellbeing
	assessment.UpdatedAt = time.Now()
	scoring.Apply(assessment)

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(assessmentCollection).ReplaceOne(ctx, bson.M{"_id": assessment.ID}, assessment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update assessment")
		return
	}

	writeJSON(w, http.StatusOK, AssessmentResponse{
		Success:    true,
		Message:    "Assessment updated successfully",
		Assessment: assessment,
	})
}

// DeleteAssessment removes an assessment.
func DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	assessment, ok := findAssessmentByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(assessmentCollection).DeleteOne(ctx, bson.M{"_id": assessment.ID}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete assessment")
		return
	}

	writeJSON(w, http.StatusOK, AssessmentResponse{Success: true, Message: "Assessment deleted successfully"})
}

// GetAssessmentsByRiskLevel returns all assessments at a given risk level.
func GetAssessmentsByRiskLevel(w http.ResponseWriter, r *http.Request) {
	level := models.RiskLevel(chi.URLParam(r, "level"))
	if !level.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid risk level: "+string(level))
		return
	}

	assessments, ok := findAssessments(w, bson.M{"risk_level": level})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}

// GetHighRiskAssessments returns assessments at HIGH or CRITICAL risk.
func GetHighRiskAssessments(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{"risk_level": bson.M{"$in": []models.RiskLevel{models.RiskHigh, models.RiskCritical}}}
	assessments, ok := findAssessments(w, filter)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}

// GetAssessmentsInRange returns a user's assessments created between start and end.
func GetAssessmentsInRange(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
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

	filter := bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": start, "$lte": endOfDay(end)},
	}
	assessments, ok := findAssessments(w, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}

// GetAssessmentStatistics aggregates assessment counts per risk level.
func GetAssessmentStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	coll := database.DB.Collection(assessmentCollection)
	stats := models.AssessmentStatistics{}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	stats.TotalAssessments = total

	counts := []struct {
		level models.RiskLevel
		dst   *int64
	}{
		{models.RiskLow, &stats.LowRisk},
		{models.RiskModerate, &stats.ModerateRisk},
		{models.RiskHigh, &stats.HighRisk},
		{models.RiskCritical, &stats.CriticalRisk},
	}
	for _, c := range counts {
		n, err := coll.CountDocuments(ctx, bson.M{"risk_level": c.level})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		*c.dst = n
	}

	writeJSON(w, http.StatusOK, stats)
}
