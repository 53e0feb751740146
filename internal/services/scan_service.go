package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haircareai/follicle-api/internal/models"
	"github.com/haircareai/follicle-api/internal/storage"
	"github.com/haircareai/follicle-api/internal/store"
)

var _ ScanServiceContract = (*ScanService)(nil)

// ScanService implements the scan lifecycle.
type ScanService struct {
	scans      ScanStore
	reports    ReportStore
	files      FileStore
	classifier Classifier
}

func NewScanService(scans ScanStore, reports ReportStore, files FileStore, classifier Classifier) *ScanService {
	return &ScanService{
		scans:      scans,
		reports:    reports,
		files:      files,
		classifier: classifier,
	}
}

// UploadScan stores the image and creates a Waiting scan record.
func (s *ScanService) UploadScan(ctx context.Context, req ScanUpload) (string, error) {
	if !storage.AllowedImage(req.Filename) {
		return "", ErrUnsupportedFileType
	}

	imagePath, err := s.files.SaveScan(req.PatientName, req.Filename, req.Image)
	if err != nil {
		return "", fmt.Errorf("store scan image: %w", err)
	}

	scan := &models.Scan{
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		ImagePath:   imagePath,
		Status:      models.ScanWaiting,
		UploadDate:  time.Now().UTC(),
	}
	if err := s.scans.Insert(ctx, scan); err != nil {
		return "", err
	}
	return scan.ID.Hex(), nil
}

// ProcessScan classifies the scan image and, on success, flips the scan to
// Processed and writes its report. The Waiting→Processed flip is a
// conditional update, so concurrent or repeated calls produce at most one
// report; losers get ErrScanAlreadyProcessed. A classification failure
// leaves the scan Waiting.
func (s *ScanService) ProcessScan(ctx context.Context, scanID string) (int, error) {
	scan, err := s.scans.FindByID(ctx, scanID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrScanNotFound
	}
	if err != nil {
		return 0, err
	}
	if scan.Status != models.ScanWaiting {
		return 0, ErrScanAlreadyProcessed
	}

	stage, err := s.classifier.Classify(ctx, s.files.FilePath(scan.ImagePath))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}

	flipped, err := s.scans.MarkProcessed(ctx, scanID)
	if err != nil {
		return 0, err
	}
	if !flipped {
		return 0, ErrScanAlreadyProcessed
	}

	report := &models.Report{
		ScanID:        scanID,
		PatientName:   scan.PatientName,
		DoctorID:      scan.DoctorID,
		ImagePath:     scan.ImagePath,
		BaldnessStage: fmt.Sprintf("Stage %d", stage),
		Status:        models.ScanProcessed,
		ProcessedDate: time.Now().UTC(),
	}
	if err := s.reports.Insert(ctx, report); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	return stage, nil
}

// DoctorData returns the doctor's work queue: Waiting scans plus all of the
// doctor's reports. Matching on the doctor identifier is case-insensitive.
func (s *ScanService) DoctorData(ctx context.Context, doctorName string) (*ScanBundle, error) {
	scans, err := s.scans.FindWaitingByDoctor(ctx, doctorName)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.FindByDoctor(ctx, doctorName)
	if err != nil {
		return nil, err
	}
	return newBundle(scans, reports), nil
}

// PatientData returns every scan and report recorded under the exact patient
// name.
func (s *ScanService) PatientData(ctx context.Context, patientName string) (*ScanBundle, error) {
	scans, err := s.scans.FindByPatient(ctx, patientName)
	if err != nil {
		return nil, err
	}
	reports, err := s.reports.FindByPatient(ctx, patientName)
	if err != nil {
		return nil, err
	}
	return newBundle(scans, reports), nil
}

func newBundle(scans []models.Scan, reports []models.Report) *ScanBundle {
	if scans == nil {
		scans = make([]models.Scan, 0)
	}
	if reports == nil {
		reports = make([]models.Report, 0)
	}
	return &ScanBundle{Scans: scans, Reports: reports}
}
