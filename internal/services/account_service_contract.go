package services

import (
	"context"
	"io"
)

// PatientSignup carries a patient registration.
type PatientSignup struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// DoctorSignup carries a doctor registration together with the uploaded
// credential document.
type DoctorSignup struct {
	FullName       string
	Email          string
	Phone          string
	Password       string
	Specialization string
	DegreeFilename string
	Degree         io.Reader
}

// LoginResult is returned on successful credential check.
type LoginResult struct {
	UserID   string
	Role     string
	FullName string
	Token    string
}

// AccountServiceContract defines registration, login and password recovery.
type AccountServiceContract interface {
	RegisterPatient(ctx context.Context, req PatientSignup) (string, error)
	RegisterDoctor(ctx context.Context, req DoctorSignup) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
