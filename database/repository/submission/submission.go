package submissionRepo

import (
	"canteen/database"
	"canteen/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s models.Submission) (string, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSubmissionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubmissionRepo returns a SubmissionRepository backed by the
// submissions collection of db.
func NewMongoSubmissionRepo(db *mongo.Database) SubmissionRepository {
	return &mongoSubmissionRepo{
		coll: db.Collection(database.SubmissionsCollection),
	}
}

// Create inserts a contact-form submission.
func (r *mongoSubmissionRepo) Create(ctx context.Context, s models.Submission) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return "", fmt.Errorf("failed to insert submission: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// EnsureIndexes indexes submissions by email for manual follow-up.
func (r *mongoSubmissionRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_idx"),
	})
	if err != nil {
		return fmt.Errorf("failed to create submission indexes: %w", err)
	}
	return nil
}
