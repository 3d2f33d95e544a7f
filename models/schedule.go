package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorSchedule holds one weekly duty slot for a doctor in the doctorschedules collection
type DoctorSchedule struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	DoctorID   primitive.ObjectID `json:"doctorId" bson:"doctorId" validate:"required"`
	DoctorName string             `json:"doctorName" bson:"doctorName" validate:"required"`
	Specialty  string             `json:"specialty" bson:"specialty"`
	Weekday    time.Weekday       `json:"weekday" bson:"weekday" validate:"min=0,max=6"`
	StartTime  string             `json:"startTime" bson:"startTime" validate:"required,datetime=15:04"`
	EndTime    string             `json:"endTime" bson:"endTime" validate:"required,datetime=15:04"`
	Available  bool               `json:"available" bson:"available"`
}
