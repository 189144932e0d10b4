package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ebegrace/zion-academy-api/pkg/config"
)

// Collection names used across the repositories.
const (
	CollectionStudents     = "students"
	CollectionNotices      = "notices"
	CollectionApplications = "applications"
	CollectionUsers        = "users"
)

// Mongo wraps the client and the selected database handle.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the repositories rely on.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	notices := m.Database.Collection(CollectionNotices)
	noticeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "date", Value: -1}},
		},
	}
	if _, err := notices.Indexes().CreateMany(ctx, noticeIndexes); err != nil {
		return fmt.Errorf("create notice indexes: %w", err)
	}

	applications := m.Database.Collection(CollectionApplications)
	applicationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "submittedAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}
	if _, err := applications.Indexes().CreateMany(ctx, applicationIndexes); err != nil {
		return fmt.Errorf("create application indexes: %w", err)
	}

	students := m.Database.Collection(CollectionStudents)
	studentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "enrollmentDate", Value: -1}},
		},
	}
	if _, err := students.Indexes().CreateMany(ctx, studentIndexes); err != nil {
		return fmt.Errorf("create student indexes: %w", err)
	}

	users := m.Database.Collection(CollectionUsers)
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	return nil
}
