package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is the immutable classification result for a scan. Exactly one
// report exists per processed scan.
type Report struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ScanID        string             `bson:"scanId" json:"scanId"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	DoctorID      string             `bson:"doctorId" json:"doctorId"`
	ImagePath     string             `bson:"imagePath" json:"imagePath"`
	BaldnessStage string             `bson:"baldnessStage" json:"baldnessStage"` // display form, e.g. "Stage 3"
	Status        string             `bson:"status" json:"status"`
	ProcessedDate time.Time          `bson:"processedDate" json:"processedDate"`
}
