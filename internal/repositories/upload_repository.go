package repositories

import (
	"context"
	"time"

	"github.com/socially-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UploadRepository defines the interface for upload record operations
type UploadRepository interface {
	RecordUpload(ctx context.Context, upload *models.Upload) error
	GetByUploaderUID(ctx context.Context, uploaderUID string, limit int64) ([]models.Upload, error)
}

// MongoUploadRepository implements UploadRepository for MongoDB
type MongoUploadRepository struct {
	collection *mongo.Collection
}

// NewMongoUploadRepository creates a new MongoUploadRepository
func NewMongoUploadRepository(db *mongo.Database) *MongoUploadRepository {
	return &MongoUploadRepository{collection: db.Collection("uploads")}
}

// RecordUpload stores the record of a completed upload in MongoDB
func (r *MongoUploadRepository) RecordUpload(ctx context.Context, upload *models.Upload) error {
	upload.ID = primitive.NewObjectID()
	upload.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, upload)
	return err
}

// GetByUploaderUID retrieves the most recent uploads for one uploader
func (r *MongoUploadRepository) GetByUploaderUID(ctx context.Context, uploaderUID string, limit int64) ([]models.Upload, error) {
	var uploads []models.Upload
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"uploader_uid": uploaderUID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}
