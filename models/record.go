package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record holds the structure for the records collection in mongo. The file
// itself lives in external storage, only its location is kept here.
type Record struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	PatientID   primitive.ObjectID `json:"patientId" bson:"patientId" validate:"required"`
	FileURL     string             `json:"fileUrl" bson:"fileUrl" validate:"required,http_url"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	UploadedAt  primitive.DateTime `json:"uploadedAt" bson:"uploadedAt"`
}

// NewRecord builds a record stamped with the current upload time
func NewRecord(patientID primitive.ObjectID, fileURL, description string) *Record {
	r := &Record{
		PatientID:   patientID,
		FileURL:     fileURL,
		Description: description,
	}
	r.ApplyDefaults()
	return r
}

// ApplyDefaults stamps the upload time when it has not been set
func (r *Record) ApplyDefaults() {
	if r.UploadedAt == 0 {
		r.UploadedAt = primitive.NewDateTimeFromTime(time.Now())
	}
}

// UploadSignature is returned to clients so they can upload a file straight
// to storage before creating the record.
type UploadSignature struct {
	CloudName    string `json:"cloudName"`
	APIKey       string `json:"apiKey"`
	Timestamp    string `json:"timestamp"`
	Folder       string `json:"folder"`
	UploadPreset string `json:"uploadPreset,omitempty"`
	Signature    string `json:"signature"`
}

// RecordResponse represents the API response structure
type RecordResponse struct {
	Records    []Record   `json:"records"`
	Pagination Pagination `json:"pagination"`
}
