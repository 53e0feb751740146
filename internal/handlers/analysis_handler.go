package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haircareai/follicle-api/internal/services"
)

// UploadScan handles POST /api/analysis/upload (multipart).
func (h *Handler) UploadScan(c *gin.Context) {
	var req struct {
		PatientName string `form:"patientName" binding:"required"`
		DoctorID    string `form:"doctorId" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scan image is required"})
		return
	}
	image, err := imageHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read scan image"})
		return
	}
	defer image.Close()

	if _, err := h.Scans.UploadScan(c.Request.Context(), services.ScanUpload{
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		Filename:    imageHeader.Filename,
		Image:       image,
	}); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Scan uploaded for analysis"})
}

// ProcessScan handles PUT /api/analysis/process-patient/:scanId.
func (h *Handler) ProcessScan(c *gin.Context) {
	stage, err := h.Scans.ProcessScan(c.Request.Context(), c.Param("scanId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "stage": stage})
}

// DoctorData handles GET /api/analysis/doctor-data/:doctorName.
func (h *Handler) DoctorData(c *gin.Context) {
	bundle, err := h.Scans.DoctorData(c.Request.Context(), c.Param("doctorName"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// PatientData handles GET /api/analysis/patient-data/:patientName.
func (h *Handler) PatientData(c *gin.Context) {
	bundle, err := h.Scans.PatientData(c.Request.Context(), c.Param("patientName"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}
