package services

import (
	"context"
	"io"

	"github.com/haircareai/follicle-api/internal/models"
)

// ScanUpload carries an uploaded scalp image.
type ScanUpload struct {
	PatientName string
	DoctorID    string
	Filename    string
	Image       io.Reader
}

// ScanBundle pairs the scans and reports returned by the queue and history
// queries. Slices are never nil.
type ScanBundle struct {
	Scans   []models.Scan   `json:"scans"`
	Reports []models.Report `json:"reports"`
}

// ScanServiceContract defines the scan lifecycle: upload, classification and
// the doctor/patient views.
type ScanServiceContract interface {
	UploadScan(ctx context.Context, req ScanUpload) (string, error)
	ProcessScan(ctx context.Context, scanID string) (int, error)
	DoctorData(ctx context.Context, doctorName string) (*ScanBundle, error)
	PatientData(ctx context.Context, patientName string) (*ScanBundle, error)
}
