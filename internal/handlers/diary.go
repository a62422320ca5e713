package handlers

import (
	"encoding/json"
	"log"
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

const diaryCollection = "emotional_diaries"

type CreateDiaryEntryRequest struct {
	UserID       string `json:"user_id"`
	EntryDate    string `json:"entry_date"` // YYYY-MM-DD
	MoodLevel    string `json:"mood_level"`
	EnergyLevel  *int   `json:"energy_level,omitempty"`
	StressLevel  *int   `json:"stress_level,omitempty"`
	SleepQuality *int   `json:"sleep_quality,omitempty"`
}

type UpdateDiaryEntryRequest struct {
	MoodLevel    string `json:"mood_level"`
	EnergyLevel  *int   `json:"energy_level,omitempty"`
	StressLevel  *int   `json:"stress_level,omitempty"`
	SleepQuality *int   `json:"sleep_quality,omitempty"`
}

// DiaryEntryView is a diary entry plus its derived wellness fields.
type DiaryEntryView struct {
	models.DiaryEntry
	WellnessScore    *float64 `json:"wellness_score,omitempty"`
	IndicatesConcern bool     `json:"indicates_concern"`
}

type DiaryEntryResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Entry   *DiaryEntryView `json:"entry,omitempty"`
}

func diaryView(entry models.DiaryEntry) DiaryEntryView {
	view := DiaryEntryView{DiaryEntry: entry, IndicatesConcern: scoring.IndicatesConcern(&entry)}
	if score, ok := scoring.WellnessScore(&entry); ok {
		view.WellnessScore = &score
	}
	return view
}

func diaryViews(entries []models.DiaryEntry) []DiaryEntryView {
	views := make([]DiaryEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, diaryView(entry))
	}
	return views
}

func validateDiaryMetrics(w http.ResponseWriter, mood string, energy, stress, sleep *int) (models.MoodLevel, bool) {
	moodLevel := models.MoodLevel(mood)
	if !moodLevel.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid mood level: "+mood)
		return "", false
	}
	if !validScale(energy) || !validScale(stress) || !validScale(sleep) {
		writeError(w, http.StatusBadRequest, "Energy, stress and sleep levels must be between 1 and 5")
		return "", false
	}
	return moodLevel, true
}

func findDiaryEntryByID(w http.ResponseWriter, id string) (*models.DiaryEntry, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid diary entry id")
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	var entry models.DiaryEntry
	err = database.DB.Collection(diaryCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Diary entry not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &entry, true
}

// CreateDiaryEntry records one emotional check-in. Only one entry may exist
// per user per day: the pre-check rejects known duplicates, and the unique
// (user_id, entry_date) index is the enforcement under concurrent requests.
func CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateDiaryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.EntryDate == "" {
		writeError(w, http.StatusBadRequest, "User id and entry date are required")
		return
	}

	entryDate, err := parseDate(req.EntryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry date, expected YYYY-MM-DD")
		return
	}

	moodLevel, ok := validateDiaryMetrics(w, req.MoodLevel, req.EnergyLevel, req.StressLevel, req.SleepQuality)
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	filter := bson.M{"user_id": req.UserID, "entry_date": entryDate}
	count, err := database.DB.Collection(diaryCollection).CountDocuments(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "Entry already exists for this date: "+req.EntryDate)
		return
	}

	now := time.Now()
	entry := models.DiaryEntry{
		ID:           primitive.NewObjectID(),
		CreatedAt:    now,
		UpdatedAt:    now,
		UserID:       req.UserID,
		EntryDate:    entryDate,
		MoodLevel:    moodLevel,
		EnergyLevel:  req.EnergyLevel,
		StressLevel:  req.StressLevel,
		SleepQuality: req.SleepQuality,
	}

	if _, err := database.DB.Collection(diaryCollection).InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusConflict, "Entry already exists for this date: "+req.EntryDate)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create diary entry")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventDiaryEntryCreated,
		Description: "Emotional diary entry created",
		UserID:      entry.UserID,
		ResourceID:  entry.ID.Hex(),
		Success:     true,
	}))

	if scoring.IndicatesConcern(&entry) {
		log.Printf("Diary entry indicates concern for user: %s", entry.UserID)
		services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
			EventType:   models.EventDiaryConcernDetected,
			Description: "Diary entry indicates potential concern",
			UserID:      entry.UserID,
			ResourceID:  entry.ID.Hex(),
			Severity:    models.SeverityWarn,
			Success:     true,
		}))
	}

	view := diaryView(entry)
	writeJSON(w, http.StatusCreated, DiaryEntryResponse{
		Success: true,
		Message: "Diary entry created successfully",
		Entry:   &view,
	})
}

// GetDiaryEntryByID returns one diary entry.
func GetDiaryEntryByID(w http.ResponseWriter, r *http.Request) {
	entry, ok := findDiaryEntryByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, diaryView(*entry))
}

// GetDiaryEntriesByUser returns a user's entries, newest entry date first.
func GetDiaryEntriesByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(diaryCollection).Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"entry_date": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryViews(entries))
}

// GetDiaryEntryByUserAndDate returns the single entry for a user on a date.
func GetDiaryEntryByUserAndDate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var entry models.DiaryEntry
	err = database.DB.Collection(diaryCollection).FindOne(ctx,
		bson.M{"user_id": userID, "entry_date": date}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Diary entry not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryView(entry))
}

// GetLatestDiaryEntry returns a user's most recent entry by entry date.
func GetLatestDiaryEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := dbContext()
	defer cancel()

	var entry models.DiaryEntry
	err := database.DB.Collection(diaryCollection).FindOne(ctx, bson.M{"user_id": userID},
		options.FindOne().SetSort(bson.M{"entry_date": -1})).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "No diary entries for user")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryView(entry))
}

// UpdateDiaryEntry replaces the four metric fields of an entry. Concern is
// re-evaluated and emits its own audit event in addition to the update event.
func UpdateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var req UpdateDiaryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	moodLevel, ok := validateDiaryMetrics(w, req.MoodLevel, req.EnergyLevel, req.StressLevel, req.SleepQuality)
	if !ok {
		return
	}

	entry, ok := findDiaryEntryByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	entry.MoodLevel = moodLevel
	entry.EnergyLevel = req.EnergyLevel
	entry.StressLevel = req.StressLevel
	entry.SleepQuality = req.SleepQuality
	entry.UpdatedAt = time.Now()

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(diaryCollection).ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update diary entry")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventDiaryEntryUpdated,
		Description: "Emotional diary entry updated",
		UserID:      entry.UserID,
		ResourceID:  entry.ID.Hex(),
		Success:     true,
	}))

	if scoring.IndicatesConcern(entry) {
		log.Printf("Updated diary entry indicates concern for user: %s", entry.UserID)
		services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
			EventType:   models.EventDiaryConcernDetected,
			Description: "Updated diary entry indicates potential concern",
			UserID:      entry.UserID,
			ResourceID:  entry.ID.Hex(),
			Severity:    models.SeverityWarn,
			Success:     true,
		}))
	}

	view := diaryView(*entry)
	writeJSON(w, http.StatusOK, DiaryEntryResponse{
		Success: true,
		Message: "Diary entry updated successfully",
		Entry:   &view,
	})
}

// DeleteDiaryEntry removes an entry.
func DeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := findDiaryEntryByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(diaryCollection).DeleteOne(ctx, bson.M{"_id": entry.ID}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete diary entry")
		return
	}

	writeJSON(w, http.StatusOK, DiaryEntryResponse{Success: true, Message: "Diary entry deleted successfully"})
}

func diaryRangeFilter(w http.ResponseWriter, r *http.Request, userID string) (bson.M, bool) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return nil, false
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return nil, false
	}
	return bson.M{
		"user_id":    userID,
		"entry_date": bson.M{"$gte": start, "$lte": end},
	}, true
}

// GetDiaryEntriesInRange returns a user's entries between start and end dates.
func GetDiaryEntriesInRange(w http.ResponseWriter, r *http.Request) {
	filter, ok := diaryRangeFilter(w, r, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(diaryCollection).Find(ctx, filter,
		options.Find().SetSort(bson.M{"entry_date": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryViews(entries))
}

// GetAverageWellnessScore averages the wellness score of a user's entries in
// a date range. Entries with no scoreable fields are skipped; null when no
// entry yields a score.
func GetAverageWellnessScore(w http.ResponseWriter, r *http.Request) {
	filter, ok := diaryRangeFilter(w, r, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(diaryCollection).Find(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	var total float64
	var scored int
	for i := range entries {
		if score, ok := scoring.WellnessScore(&entries[i]); ok {
			total += score
			scored++
		}
	}

	var average *float64
	if scored > 0 {
		avg := total / float64(scored)
		average = &avg
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":                true,
		"average_wellness_score": average,
		"entries_scored":         scored,
	})
}

// HasEntryForToday reports whether the user already checked in today.
func HasEntryForToday(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	today, _ := parseDate(time.Now().UTC().Format("2006-01-02"))

	ctx, cancel := dbContext()
	defer cancel()

	count, err := database.DB.Collection(diaryCollection).CountDocuments(ctx,
		bson.M{"user_id": userID, "entry_date": today})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "has_entry": count > 0})
}

// GetLowMoodEntries returns all entries with VERY_LOW or LOW mood.
func GetLowMoodEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	filter := bson.M{"mood_level": bson.M{"$in": []models.MoodLevel{models.MoodVeryLow, models.MoodLow}}}
	cursor, err := database.DB.Collection(diaryCollection).Find(ctx, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryViews(entries))
}

// GetHighStressEntries returns all entries with stress level 4 or 5.
func GetHighStressEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(diaryCollection).Find(ctx,
		bson.M{"stress_level": bson.M{"$gte": 4}})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, diaryViews(entries))
}

// GetDiaryStatistics aggregates a user's diary history: totals, concern
// count and mood distribution.
func GetDiaryStatistics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(diaryCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	entries := []models.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats := models.DiaryStatistics{TotalEntries: int64(len(entries))}
	for i := range entries {
		if scoring.IndicatesConcern(&entries[i]) {
			stats.ConcernEntries++
		}
		switch entries[i].MoodLevel {
		case models.MoodVeryLow:
			stats.VeryLowMood++
		case models.MoodLow:
			stats.LowMood++
		case models.MoodNeutral:
			stats.NeutralMood++
		case models.MoodGood:
			stats.GoodMood++
		case models.MoodVeryGood:
			stats.VeryGoodMood++
		}
	}

	writeJSON(w, http.StatusOK, stats)
}
