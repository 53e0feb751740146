package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/haircareai/follicle-api/internal/models"
)

// ScanStore wraps the scans collection.
type ScanStore struct {
	col *mongo.Collection
}

// Insert writes a new scan and fills in its generated id.
func (s *ScanStore) Insert(ctx context.Context, scan *models.Scan) error {
	if scan.ID.IsZero() {
		scan.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, scan)
	return err
}

// FindByID returns the scan with the given hex id, or ErrNotFound.
func (s *ScanStore) FindByID(ctx context.Context, id string) (*models.Scan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var scan models.Scan
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&scan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &scan, nil
}

// MarkProcessed flips the scan from Waiting to Processed with a conditional
// update. It reports whether this call performed the flip; a false result
// with a nil error means the scan was already Processed (or vanished), so
// concurrent or repeated callers cannot both win.
func (s *ScanStore) MarkProcessed(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}
	result, err := s.col.UpdateOne(ctx,
		bson.M{"_id": oid, "status": models.ScanWaiting},
		bson.M{"$set": bson.M{"status": models.ScanProcessed}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// FindWaitingByDoctor returns all Waiting scans assigned to the doctor,
// matching the doctor identifier case-insensitively.
func (s *ScanStore) FindWaitingByDoctor(ctx context.Context, doctorID string) ([]models.Scan, error) {
	filter := bson.M{
		"doctorId": caseInsensitiveExact(doctorID),
		"status":   models.ScanWaiting,
	}
	return s.find(ctx, filter)
}

// FindByPatient returns all scans for the exact patient name, newest first.
func (s *ScanStore) FindByPatient(ctx context.Context, patientName string) ([]models.Scan, error) {
	return s.find(ctx, bson.M{"patientName": patientName})
}

func (s *ScanStore) find(ctx context.Context, filter bson.M) ([]models.Scan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scans []models.Scan
	if err := cursor.All(ctx, &scans); err != nil {
		return nil, err
	}
	return scans, nil
}

// caseInsensitiveExact builds a whole-string case-insensitive match.
func caseInsensitiveExact(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}
