package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scan statuses. A scan is created Waiting and flips to Processed exactly
// once, when classification succeeds.
const (
	ScanWaiting   = "Waiting"
	ScanProcessed = "Processed"
)

type Scan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientName string             `bson:"patientName" json:"patientName"`
	DoctorID    string             `bson:"doctorId" json:"doctorId"`
	ImagePath   string             `bson:"imagePath" json:"imagePath"`
	Status      string             `bson:"status" json:"status"`
	UploadDate  time.Time          `bson:"uploadDate" json:"uploadDate"`
}
