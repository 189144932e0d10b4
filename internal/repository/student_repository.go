package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ebegrace/zion-academy-api/internal/models"
	"github.com/ebegrace/zion-academy-api/pkg/database"
)

// StudentRepository provides persistence for enrolled students.
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates the repository.
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{collection: db.Collection(database.CollectionStudents)}
}

// Insert stores a new student document.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// List returns all students, most recently enrolled first.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "enrollmentDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}
