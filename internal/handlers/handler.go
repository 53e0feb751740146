package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haircareai/follicle-api/internal/services"
)

// Handler holds the services the HTTP layer maps onto.
type Handler struct {
	Accounts services.AccountServiceContract
	Admin    services.AdminServiceContract
	Scans    services.ScanServiceContract
}

func NewHandler(accounts services.AccountServiceContract, admin services.AdminServiceContract, scans services.ScanServiceContract) *Handler {
	return &Handler{
		Accounts: accounts,
		Admin:    admin,
		Scans:    scans,
	}
}

// statusFor maps a service error to its HTTP status. Unrecognized errors are
// treated as internal failures.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrUnsupportedFileType),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidResetToken):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrPendingVerification):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrScanNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrScanAlreadyProcessed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the standard error response for a service error, hiding
// internal failure details behind a generic message.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak collaborator error details.
		message = "Internal server error"
		if errors.Is(err, services.ErrInferenceFailed) {
			message = services.ErrInferenceFailed.Error()
		}
	}
	c.JSON(status, gin.H{"error": message})
}
