package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/softcare/softcare-backend/internal/database"
	"github.com/softcare/softcare-backend/internal/models"
	"github.com/softcare/softcare-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const supportChannelCollection = "support_channels"

// supportChannelListKey caches the full directory listing; invalidated on
// every create, update and delete.
const supportChannelListKey = "support_channels:all"

type SupportChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
}

type SupportChannelResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Channel *models.SupportChannel `json:"channel,omitempty"`
}

func findSupportChannelByID(w http.ResponseWriter, id string) (*models.SupportChannel, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid support channel id")
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	var channel models.SupportChannel
	err = database.DB.Collection(supportChannelCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&channel)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Support channel not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &channel, true
}

func findSupportChannels(w http.ResponseWriter, filter bson.M) ([]models.SupportChannel, bool) {
	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(supportChannelCollection).Find(ctx, filter,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	defer cursor.Close(ctx)

	channels := []models.SupportChannel{}
	if err := cursor.All(ctx, &channels); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return channels, true
}

// CreateSupportChannel registers a support resource in the directory.
func CreateSupportChannel(w http.ResponseWriter, r *http.Request) {
	var req SupportChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Channel name is required")
		return
	}

	now := time.Now()
	channel := models.SupportChannel{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        req.Name,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Website:     req.Website,
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(supportChannelCollection).InsertOne(ctx, channel); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create support channel")
		return
	}
	services.Cache.Delete(ctx, supportChannelListKey)

	writeJSON(w, http.StatusCreated, SupportChannelResponse{
		Success: true,
		Message: "Support channel created successfully",
		Channel: &channel,
	})
}

// GetSupportChannels lists all channels sorted by name. The directory is
// read often and changes rarely, so the full list is served from Redis when
// cached.
func GetSupportChannels(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	cached := []models.SupportChannel{}
	if hit, err := services.Cache.Get(ctx, supportChannelListKey, &cached); err == nil && hit {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	channels, ok := findSupportChannels(w, bson.M{})
	if !ok {
		return
	}

	if err := services.Cache.Set(ctx, supportChannelListKey, channels); err != nil {
		log.Printf("Failed to cache support channel list: %v", err)
	}

	writeJSON(w, http.StatusOK, channels)
}

// GetSupportChannelByID returns one channel.
func GetSupportChannelByID(w http.ResponseWriter, r *http.Request) {
	channel, ok := findSupportChannelByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channel)
}

// UpdateSupportChannel replaces a channel's directory information.
func UpdateSupportChannel(w http.ResponseWriter, r *http.Request) {
	var req SupportChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Channel name is required")
		return
	}

	channel, ok := findSupportChannelByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	channel.Name = req.Name
	channel.Description = req.Description
	channel.PhoneNumber = req.PhoneNumber
	channel.Email = req.Email
	channel.Website = req.Website
	channel.UpdatedAt = time.Now()

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(supportChannelCollection).ReplaceOne(ctx, bson.M{"_id": channel.ID}, channel); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update support channel")
		return
	}
	services.Cache.Delete(ctx, supportChannelListKey)

	writeJSON(w, http.StatusOK, SupportChannelResponse{
		Success: true,
		Message: "Support channel updated successfully",
		Channel: channel,
	})
}

// DeleteSupportChannel removes a channel from the directory.
func DeleteSupportChannel(w http.ResponseWriter, r *http.Request) {
	channel, ok := findSupportChannelByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(supportChannelCollection).DeleteOne(ctx, bson.M{"_id": channel.ID}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete support channel")
		return
	}
	services.Cache.Delete(ctx, supportChannelListKey)

	writeJSON(w, http.StatusOK, SupportChannelResponse{Success: true, Message: "Support channel deleted successfully"})
}

// SearchChannelsByName matches channel names, case-insensitive substring.
func SearchChannelsByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Search name is required")
		return
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	channels, ok := findSupportChannels(w, bson.M{"name": pattern})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// SearchChannelsByDescription matches channel descriptions, case-insensitive
// substring.
func SearchChannelsByDescription(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "Search text is required")
		return
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	channels, ok := findSupportChannels(w, bson.M{"description": pattern})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// GetChannelsWithPhone lists channels that publish a phone number.
func GetChannelsWithPhone(w http.ResponseWriter, r *http.Request) {
	channels, ok := findSupportChannels(w, bson.M{"phone_number": bson.M{"$exists": true, "$ne": ""}})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// GetChannelsWithEmail lists channels that publish an email address.
func GetChannelsWithEmail(w http.ResponseWriter, r *http.Request) {
	channels, ok := findSupportChannels(w, bson.M{"email": bson.M{"$exists": true, "$ne": ""}})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// GetChannelsWithWebsite lists channels that publish a website.
func GetChannelsWithWebsite(w http.ResponseWriter, r *http.Request) {
	channels, ok := findSupportChannels(w, bson.M{"website": bson.M{"$exists": true, "$ne": ""}})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, channels)
}

// RecordChannelAccess registers that a user consulted a support channel.
// The access itself only produces an audit record; nothing on the channel
// document changes.
func RecordChannelAccess(w http.ResponseWriter, r *http.Request) {
	channel, ok := findSupportChannelByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventSupportChannelAccessed,
		Description: "Support channel accessed: " + channel.Name,
		UserID:      r.URL.Query().Get("userId"),
		ResourceID:  channel.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, SupportChannelResponse{
		Success: true,
		Message: "Access recorded",
		Channel: channel,
	})
}
