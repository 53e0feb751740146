package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haircareai/follicle-api/internal/services"
)

type PatientSignupRequest struct {
	FullName string `json:"fullName" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	Password string `json:"password" binding:"required"`
}

// SignupPatient handles POST /api/auth/signup/patient.
func (h *Handler) SignupPatient(c *gin.Context) {
	var req PatientSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Accounts.RegisterPatient(c.Request.Context(), services.PatientSignup{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Patient registered successfully"})
}

// SignupDoctor handles POST /api/auth/signup/doctor (multipart with the
// degree document).
func (h *Handler) SignupDoctor(c *gin.Context) {
	var req struct {
		FullName       string `form:"fullName" binding:"required,min=3"`
		Email          string `form:"email" binding:"required,email"`
		Phone          string `form:"phone" binding:"required,min=10,max=15"`
		Password       string `form:"password" binding:"required"`
		Specialization string `form:"specialization" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	degreeHeader, err := c.FormFile("degree")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Degree document is required"})
		return
	}
	degree, err := degreeHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read degree document"})
		return
	}
	defer degree.Close()

	if _, err := h.Accounts.RegisterDoctor(c.Request.Context(), services.DoctorSignup{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		Specialization: req.Specialization,
		DegreeFilename: degreeHeader.Filename,
		Degree:         degree,
	}); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Doctor registered. Awaiting Admin approval."})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"role":     result.Role,
		"fullName": result.FullName,
		"user_id":  result.UserID,
		"token":    result.Token,
	})
}

// ForgotPassword handles POST /api/auth/forgot-password. The response does
// not reveal whether the email is registered.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	if err := h.Accounts.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "If that email is registered, a reset link has been sent."})
}

// ResetPassword handles POST /api/auth/reset-password/:token.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if err := h.Accounts.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Password updated successfully"})
}
