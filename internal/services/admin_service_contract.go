package services

import (
	"context"

	"github.com/haircareai/follicle-api/internal/models"
)

// AdminServiceContract defines the admin user-management operations and the
// public verified-doctor directory.
type AdminServiceContract interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	SetDoctorStatus(ctx context.Context, userID, status string) error
	DeleteUser(ctx context.Context, userID string) error
	ListVerifiedDoctors(ctx context.Context) ([]models.DoctorProfile, error)
}
