package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /api/admin/users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// VerifyDoctor handles PUT /api/admin/verify-doctor/:userId.
func (h *Handler) VerifyDoctor(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := h.Admin.SetDoctorStatus(c.Request.Context(), c.Param("userId"), req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteUser handles DELETE /api/admin/delete-user/:userId.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.Admin.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ListDoctors handles GET /api/doctors/list, the public directory of
// verified doctors.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Admin.ListVerifiedDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
