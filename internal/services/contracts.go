package services

import (
	"context"
	"io"

	"github.com/haircareai/follicle-api/internal/models"
)

// Store contracts consumed by the services. The mongo-backed implementations
// live in internal/store; tests substitute mocks.

type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	FindVerifiedDoctors(ctx context.Context) ([]models.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type ScanStore interface {
	Insert(ctx context.Context, scan *models.Scan) error
	FindByID(ctx context.Context, id string) (*models.Scan, error)
	MarkProcessed(ctx context.Context, id string) (bool, error)
	FindWaitingByDoctor(ctx context.Context, doctorID string) ([]models.Scan, error)
	FindByPatient(ctx context.Context, patientName string) ([]models.Scan, error)
}

type ReportStore interface {
	Insert(ctx context.Context, r *models.Report) error
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Report, error)
	FindByPatient(ctx context.Context, patientName string) ([]models.Report, error)
}

// FileStore persists uploaded files and resolves their on-disk paths.
type FileStore interface {
	SaveDegree(email, filename string, r io.Reader) (string, error)
	SaveScan(patientName, filename string, r io.Reader) (string, error)
	FilePath(urlPath string) string
}

// Classifier is the external image-classification model: image in, baldness
// stage out.
type Classifier interface {
	Classify(ctx context.Context, imageFile string) (int, error)
}
