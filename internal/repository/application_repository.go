package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ebegrace/zion-academy-api/internal/models"
	"github.com/ebegrace/zion-academy-api/pkg/database"
)

// ApplicationRepository provides persistence for admission applications.
type ApplicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates the repository.
func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{collection: db.Collection(database.CollectionApplications)}
}

// List returns applications, optionally filtered by status, newest first.
func (r *ApplicationRepository) List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	applications := make([]models.Application, 0)
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return applications, nil
}

// GetByID fetches one application by its document id. A malformed id is
// reported the same way as an unknown one.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var application models.Application
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&application); err != nil {
		return nil, err
	}
	return &application, nil
}

// Insert stores a new application and backfills its generated id.
func (r *ApplicationRepository) Insert(ctx context.Context, application *models.Application) error {
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, application); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// Update persists status and credential changes on an existing application.
func (r *ApplicationRepository) Update(ctx context.Context, application *models.Application) error {
	update := bson.M{"$set": bson.M{
		"status":        application.Status,
		"loginEmail":    application.LoginEmail,
		"loginPassword": application.LoginPassword,
	}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": application.ID}, update); err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}
