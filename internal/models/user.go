package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles recognized by the API.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Account statuses. Patients are Active from signup; doctors start Pending
// and are moved to Verified or Rejected by an admin.
const (
	StatusActive   = "Active"
	StatusPending  = "Pending"
	StatusVerified = "Verified"
	StatusRejected = "Rejected"
)

// ValidUserStatus reports whether s is one of the recognized account statuses.
func ValidUserStatus(s string) bool {
	switch s {
	case StatusActive, StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone" json:"phone"`
	Password       string             `bson:"password" json:"-"` // bcrypt hash, hidden from JSON responses
	Role           string             `bson:"role" json:"role"`
	Status         string             `bson:"status" json:"status"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"` // doctors only
	DegreePath     string             `bson:"degree_path,omitempty" json:"degree_path,omitempty"`       // doctors only
}

// UserSummary is the admin-facing listing shape.
type UserSummary struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	Specialization string `json:"specialization,omitempty"`
	DegreePath     string `json:"degree_path,omitempty"`
}

// Summary converts a stored user into its listing shape.
func (u *User) Summary() UserSummary {
	status := u.Status
	if status == "" {
		status = StatusActive
	}
	return UserSummary{
		ID:             u.ID.Hex(),
		FullName:       u.FullName,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		Status:         status,
		Specialization: u.Specialization,
		DegreePath:     u.DegreePath,
	}
}

// DoctorProfile is the public directory entry for a verified doctor.
type DoctorProfile struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
}
