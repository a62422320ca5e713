package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/softcare/softcare-backend/internal/database"
	"github.com/softcare/softcare-backend/internal/models"
	"github.com/softcare/softcare-backend/internal/services"
	"github.com/softcare/softcare-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

func findUserByID(w http.ResponseWriter, id string) (*models.User, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	err = database.DB.Collection(usersCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return &user, true
}

// CreateUser registers a new user. Duplicate emails are rejected with 409;
// the unique index on email is the actual enforcement under concurrency.
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	role := models.RoleEmployee
	if req.Role != "" {
		parsed, ok := models.UserRoleFromCode(req.Role)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid role: "+req.Role)
			return
		}
		role = parsed
	}

	ctx, cancel := dbContext()
	defer cancel()

	// Advisory pre-check; the unique index catches concurrent duplicates.
	count, err := database.DB.Collection(usersCollection).CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		writeError(w, http.StatusConflict, "User with this email already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      role,
	}

	if _, err := database.DB.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventUserCreated,
		Description: "User created: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		ResourceID:  user.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusCreated, UserResponse{
		Success: true,
		Message: "User created successfully",
		User:    &user,
	})
}

// GetUsers returns all users.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(usersCollection).Find(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUserByID returns one user by id.
func GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, ok := findUserByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUserByEmail returns one user by email.
func GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	err := database.DB.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateUser updates a user's name, email and role.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := findUserByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		count, err := database.DB.Collection(usersCollection).CountDocuments(ctx, bson.M{"email": req.Email})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if count > 0 {
			writeError(w, http.StatusConflict, "Email already in use: "+req.Email)
			return
		}
		user.Email = req.Email
	}
	if req.Role != "" {
		role, ok := models.UserRoleFromCode(req.Role)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid role: "+req.Role)
			return
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now()

	_, err := database.DB.Collection(usersCollection).ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			writeError(w, http.StatusConflict, "Email already in use: "+req.Email)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventUserUpdated,
		Description: "User updated: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		ResourceID:  user.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, UserResponse{
		Success: true,
		Message: "User updated successfully",
		User:    user,
	})
}

// DeleteUser removes a user.
func DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := findUserByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": user.ID}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventUserDeleted,
		Description: "User deleted: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		ResourceID:  user.ID.Hex(),
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, UserResponse{Success: true, Message: "User deleted successfully"})
}

// Login validates credentials. Both outcomes are audited; a failed attempt
// is recorded with success=false in place of any persistence.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	var user models.User
	err := database.DB.Collection(usersCollection).FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
			EventType:   models.EventUserLogin,
			Description: "Failed login attempt for non-existent email: " + req.Email,
			Success:     false,
		}))
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
			EventType:   models.EventUserLogin,
			Description: "Failed login attempt for email: " + req.Email,
			Success:     false,
		}))
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventUserLogin,
		Description: "User logged in: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, UserResponse{
		Success: true,
		Message: "Login successful",
		User:    &user,
	})
}

// Logout records the end of a user's session. Sessions are stateless, so
// this only produces the audit record.
func Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := findUserByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventUserLogout,
		Description: "User logged out: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, UserResponse{Success: true, Message: "Logout successful"})
}

// ChangePassword replaces a user's password after validating the current one.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Old and new passwords are required")
		return
	}

	user, ok := findUserByID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		writeError(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	update := bson.M{"$set": bson.M{"password": hashedPassword, "updated_at": time.Now()}}
	if _, err := database.DB.Collection(usersCollection).UpdateOne(ctx, bson.M{"_id": user.ID}, update); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	services.RecordAudit(ctx, withRequestInfo(r, services.AuditEvent{
		EventType:   models.EventPasswordChange,
		Description: "Password changed for user: " + user.Email,
		UserID:      user.ID.Hex(),
		UserEmail:   user.Email,
		Success:     true,
	}))

	writeJSON(w, http.StatusOK, UserResponse{Success: true, Message: "Password changed successfully"})
}

// GetUsersByRole returns users with the given role.
func GetUsersByRole(w http.ResponseWriter, r *http.Request) {
	role, ok := models.UserRoleFromCode(chi.URLParam(r, "role"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid role: "+chi.URLParam(r, "role"))
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	cursor, err := database.DB.Collection(usersCollection).Find(ctx, bson.M{"role": role},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
