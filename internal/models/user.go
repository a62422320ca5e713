package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole is the role a user has in the system.
type UserRole string

const (
	RoleEmployee    UserRole = "EMPLOYEE"
	RoleManager     UserRole = "MANAGER"
	RoleSystemAdmin UserRole = "SYSTEM_ADMIN"
)

var roleDisplayNames = map[UserRole]string{
	RoleEmployee:    "Funcionário",
	RoleManager:     "Gestor",
	RoleSystemAdmin: "Administrador do Sistema",
}

func (r UserRole) DisplayName() string {
	return roleDisplayNames[r]
}

// Valid reports whether r is one of the defined roles.
func (r UserRole) Valid() bool {
	_, ok := roleDisplayNames[r]
	return ok
}

// UserRoleFromCode maps a code string (e.g. "MANAGER") to its role.
func UserRoleFromCode(code string) (UserRole, bool) {
	role := UserRole(code)
	if role.Valid() {
		return role, true
	}
	return "", false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Name     string   `bson:"name" json:"name"`
	Email    string   `bson:"email" json:"email"`
	Password string   `bson:"password" json:"-"` // Don't return password in JSON
	Role     UserRole `bson:"role" json:"role"`
}

// IsAdmin reports whether the user is a system administrator.
func (u *User) IsAdmin() bool {
	return u.Role == RoleSystemAdmin
}

// CanAccessPsychosocialData reports whether the user may read other users' assessment data.
func (u *User) CanAccessPsychosocialData() bool {
	return u.Role == RoleManager || u.Role == RoleSystemAdmin
}
