package services

import (
	"context"
	"errors"

	"github.com/haircareai/follicle-api/internal/models"
	"github.com/haircareai/follicle-api/internal/store"
)

var _ AdminServiceContract = (*AdminService)(nil)

// AdminService implements user administration.
type AdminService struct {
	users UserStore
}

func NewAdminService(users UserStore) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns every account in its listing shape.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// SetDoctorStatus updates an account's status. Only the recognized statuses
// are accepted.
func (s *AdminService) SetDoctorStatus(ctx context.Context, userID, status string) error {
	if !models.ValidUserStatus(status) {
		return ErrInvalidStatus
	}
	err := s.users.UpdateStatus(ctx, userID, status)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DeleteUser hard-deletes the account. Scans and reports referencing the
// user are not cascaded.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	err := s.users.Delete(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// ListVerifiedDoctors returns the public directory of Verified doctors.
func (s *AdminService) ListVerifiedDoctors(ctx context.Context) ([]models.DoctorProfile, error) {
	doctors, err := s.users.FindVerifiedDoctors(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]models.DoctorProfile, 0, len(doctors))
	for _, d := range doctors {
		profiles = append(profiles, models.DoctorProfile{
			FullName:       d.FullName,
			Email:          d.Email,
			Specialization: d.Specialization,
			Phone:          d.Phone,
		})
	}
	return profiles, nil
}
