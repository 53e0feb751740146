package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/haircareai/follicle-api/internal/models"
)

// ReportStore wraps the reports collection. Reports are insert-only.
type ReportStore struct {
	col *mongo.Collection
}

// Insert writes a new report and fills in its generated id.
func (s *ReportStore) Insert(ctx context.Context, r *models.Report) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, r)
	return err
}

// FindByDoctor returns all reports for the doctor, matching the identifier
// case-insensitively.
func (s *ReportStore) FindByDoctor(ctx context.Context, doctorID string) ([]models.Report, error) {
	return s.find(ctx, bson.M{"doctorId": caseInsensitiveExact(doctorID)})
}

// FindByPatient returns all reports for the exact patient name.
func (s *ReportStore) FindByPatient(ctx context.Context, patientName string) ([]models.Report, error) {
	return s.find(ctx, bson.M{"patientName": patientName})
}

func (s *ReportStore) find(ctx context.Context, filter bson.M) ([]models.Report, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "processedDate", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
