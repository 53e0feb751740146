package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/haircareai/follicle-api/internal/models"
)

// --- MockUserStore ---

var _ UserStore = (*MockUserStore)(nil)

type MockUserStore struct {
	InsertFunc                func(ctx context.Context, u *models.User) error
	FindByEmailFunc           func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc              func(ctx context.Context, id string) (*models.User, error)
	ListFunc                  func(ctx context.Context) ([]models.User, error)
	FindVerifiedDoctorsFunc   func(ctx context.Context) ([]models.User, error)
	UpdateStatusFunc          func(ctx context.Context, id, status string) error
	UpdatePasswordByEmailFunc func(ctx context.Context, email, passwordHash string) error
	DeleteFunc                func(ctx context.Context, id string) error

	InsertCallCount int32
}

func (m *MockUserStore) Insert(ctx context.Context, u *models.User) error {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, u)
	}
	return nil
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserStore) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) FindVerifiedDoctors(ctx context.Context) ([]models.User, error) {
	if m.FindVerifiedDoctorsFunc != nil {
		return m.FindVerifiedDoctorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockUserStore) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	if m.UpdatePasswordByEmailFunc != nil {
		return m.UpdatePasswordByEmailFunc(ctx, email, passwordHash)
	}
	return errors.New("UpdatePasswordByEmailFunc not implemented in mock")
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

// --- MockScanStore ---

var _ ScanStore = (*MockScanStore)(nil)

type MockScanStore struct {
	InsertFunc              func(ctx context.Context, scan *models.Scan) error
	FindByIDFunc            func(ctx context.Context, id string) (*models.Scan, error)
	MarkProcessedFunc       func(ctx context.Context, id string) (bool, error)
	FindWaitingByDoctorFunc func(ctx context.Context, doctorID string) ([]models.Scan, error)
	FindByPatientFunc       func(ctx context.Context, patientName string) ([]models.Scan, error)
}

func (m *MockScanStore) Insert(ctx context.Context, scan *models.Scan) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, scan)
	}
	return nil
}

func (m *MockScanStore) FindByID(ctx context.Context, id string) (*models.Scan, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockScanStore) MarkProcessed(ctx context.Context, id string) (bool, error) {
	if m.MarkProcessedFunc != nil {
		return m.MarkProcessedFunc(ctx, id)
	}
	return false, errors.New("MarkProcessedFunc not implemented in mock")
}

func (m *MockScanStore) FindWaitingByDoctor(ctx context.Context, doctorID string) ([]models.Scan, error) {
	if m.FindWaitingByDoctorFunc != nil {
		return m.FindWaitingByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockScanStore) FindByPatient(ctx context.Context, patientName string) ([]models.Scan, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(ctx, patientName)
	}
	return nil, nil
}

// --- MockReportStore ---

var _ ReportStore = (*MockReportStore)(nil)

type MockReportStore struct {
	InsertFunc        func(ctx context.Context, r *models.Report) error
	FindByDoctorFunc  func(ctx context.Context, doctorID string) ([]models.Report, error)
	FindByPatientFunc func(ctx context.Context, patientName string) ([]models.Report, error)

	InsertCallCount int32
}

func (m *MockReportStore) Insert(ctx context.Context, r *models.Report) error {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, r)
	}
	return nil
}

func (m *MockReportStore) FindByDoctor(ctx context.Context, doctorID string) ([]models.Report, error) {
	if m.FindByDoctorFunc != nil {
		return m.FindByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockReportStore) FindByPatient(ctx context.Context, patientName string) ([]models.Report, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(ctx, patientName)
	}
	return nil, nil
}

// --- MockFileStore ---

var _ FileStore = (*MockFileStore)(nil)

type MockFileStore struct {
	SaveDegreeFunc func(email, filename string, r io.Reader) (string, error)
	SaveScanFunc   func(patientName, filename string, r io.Reader) (string, error)
	FilePathFunc   func(urlPath string) string
}

func (m *MockFileStore) SaveDegree(email, filename string, r io.Reader) (string, error) {
	if m.SaveDegreeFunc != nil {
		return m.SaveDegreeFunc(email, filename, r)
	}
	return "/static/uploads/degrees/" + filename, nil
}

func (m *MockFileStore) SaveScan(patientName, filename string, r io.Reader) (string, error) {
	if m.SaveScanFunc != nil {
		return m.SaveScanFunc(patientName, filename, r)
	}
	return "/static/uploads/scans/" + patientName + "_" + filename, nil
}

func (m *MockFileStore) FilePath(urlPath string) string {
	if m.FilePathFunc != nil {
		return m.FilePathFunc(urlPath)
	}
	return urlPath
}

// --- MockClassifier ---

var _ Classifier = (*MockClassifier)(nil)

type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, imageFile string) (int, error)

	ClassifyCallCount int32
}

func (m *MockClassifier) Classify(ctx context.Context, imageFile string) (int, error) {
	atomic.AddInt32(&m.ClassifyCallCount, 1)
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, imageFile)
	}
	return 1, nil
}

// --- MockMailer ---

var _ Mailer = (*MockMailer)(nil)

type MockMailer struct {
	SendPasswordResetFunc func(toEmail, fullName, resetLink string) error

	SendCallCount int32
	LastResetLink string
}

func (m *MockMailer) SendPasswordReset(toEmail, fullName, resetLink string) error {
	atomic.AddInt32(&m.SendCallCount, 1)
	m.LastResetLink = resetLink
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(toEmail, fullName, resetLink)
	}
	return nil
}
