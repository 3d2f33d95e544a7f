package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Indexes lists the indexes each collection needs, keyed by collection name
var Indexes = map[string][]mongo.IndexModel{
	userName: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	},
	patientProfileName: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	prescriptionName: {
		{Keys: bson.D{{Key: "appointmentId", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	recordName: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "uploadedAt", Value: -1}}},
	},
	appointmentName: {
		{Keys: bson.D{{Key: "scheduledAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	},
	doctorScheduleName: {
		{Keys: bson.D{{Key: "weekday", Value: 1}, {Key: "startTime", Value: 1}}},
	},
}

// EnsureIndexes creates any missing indexes. Creating an existing index is a no-op in mongo.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	for name, models := range Indexes {
		created, err := db.Collection(name).CreateIndexes(ctx, models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
		zap.S().Infow("ensured indexes", "collection", name, "indexes", created)
	}
	return nil
}
