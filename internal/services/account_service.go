package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/haircareai/follicle-api/internal/config"
	"github.com/haircareai/follicle-api/internal/models"
	"github.com/haircareai/follicle-api/internal/store"
	"github.com/haircareai/follicle-api/internal/utils"
)

// Compile-time check that AccountService satisfies its contract.
var _ AccountServiceContract = (*AccountService)(nil)

// AccountService implements registration, login and password recovery.
type AccountService struct {
	users  UserStore
	files  FileStore
	mailer Mailer

	jwtSecret  []byte
	appURL     string
	sessionTTL time.Duration
	resetTTL   time.Duration
}

func NewAccountService(users UserStore, files FileStore, mailer Mailer, cfg *config.Config) *AccountService {
	return &AccountService{
		users:      users,
		files:      files,
		mailer:     mailer,
		jwtSecret:  []byte(cfg.JWTSecret),
		appURL:     cfg.AppURL,
		sessionTTL: time.Duration(cfg.SessionTokenHours) * time.Hour,
		resetTTL:   time.Duration(cfg.ResetTokenExpirySecs) * time.Second,
	}
}

// RegisterPatient creates an Active patient account.
func (s *AccountService) RegisterPatient(ctx context.Context, req PatientSignup) (string, error) {
	if !utils.StrongPassword(req.Password) {
		return "", ErrWeakPassword
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return "", err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
		Role:     models.RolePatient,
		Status:   models.StatusActive,
	}
	if err := s.insertUser(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// RegisterDoctor stores the uploaded credential document and creates a
// Pending doctor account awaiting admin verification.
func (s *AccountService) RegisterDoctor(ctx context.Context, req DoctorSignup) (string, error) {
	if !utils.StrongPassword(req.Password) {
		return "", ErrWeakPassword
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return "", err
	}

	degreePath, err := s.files.SaveDegree(req.Email, req.DegreeFilename, req.Degree)
	if err != nil {
		return "", fmt.Errorf("store degree document: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       hash,
		Role:           models.RoleDoctor,
		Status:         models.StatusPending,
		Specialization: req.Specialization,
		DegreePath:     degreePath,
	}
	if err := s.insertUser(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// Login checks credentials and, for doctors, the verification gate.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if user.Role == models.RoleDoctor && user.Status == models.StatusPending {
		return nil, ErrPendingVerification
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID.Hex(), user.Role, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &LoginResult{
		UserID:   user.ID.Hex(),
		Role:     user.Role,
		FullName: user.FullName,
		Token:    token,
	}, nil
}

// RequestPasswordReset issues a reset token and mails the reset link. To
// avoid account enumeration it reports success for unknown emails too; mail
// is only dispatched for known accounts.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("password reset requested for unknown email %s", email)
		return nil
	}
	if err != nil {
		return err
	}

	token, err := utils.GenerateResetToken(s.jwtSecret, user.Email, s.resetTTL)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	resetLink := fmt.Sprintf("%s/reset-password/%s", s.appURL, token)
	if err := s.mailer.SendPasswordReset(user.Email, user.FullName, resetLink); err != nil {
		return err
	}
	log.Printf("reset email sent to %s", user.Email)
	return nil
}

// ResetPassword verifies the token and overwrites the account password.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := utils.VerifyResetToken(s.jwtSecret, token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if !utils.StrongPassword(newPassword) {
		return ErrWeakPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.users.UpdatePasswordByEmail(ctx, email, hash)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// checkEmailFree is the signup pre-check; the unique index on email backs it
// up against races.
func (s *AccountService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AccountService) insertUser(ctx context.Context, user *models.User) error {
	err := s.users.Insert(ctx, user)
	if errors.Is(err, store.ErrDuplicate) {
		return ErrDuplicateEmail
	}
	return err
}
