package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ebegrace/zion-academy-api/internal/models"
	"github.com/ebegrace/zion-academy-api/pkg/database"
)

// NoticeRepository provides persistence for notices.
type NoticeRepository struct {
	collection *mongo.Collection
}

// NewNoticeRepository creates the repository.
func NewNoticeRepository(db *mongo.Database) *NoticeRepository {
	return &NoticeRepository{collection: db.Collection(database.CollectionNotices)}
}

// List returns every stored notice in natural (feed) order.
func (r *NoticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	notices := make([]models.Notice, 0)
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("decode notices: %w", err)
	}
	return notices, nil
}

// NextID recomputes the id to assign from the current collection state:
// max existing id + 1, or 1 when the collection is empty. Deleting the
// highest notice therefore frees its id for reuse.
func (r *NoticeRepository) NextID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var top models.Notice
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find max notice id: %w", err)
	}
	return top.ID + 1, nil
}

// Insert stores a new notice document.
func (r *NoticeRepository) Insert(ctx context.Context, notice *models.Notice) error {
	if _, err := r.collection.InsertOne(ctx, notice); err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// DeleteByID removes the notice with the matching id. Deleting an absent
// id is a no-op, not an error.
func (r *NoticeRepository) DeleteByID(ctx context.Context, id int) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete notice %d: %w", id, err)
	}
	return nil
}
