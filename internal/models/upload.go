package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upload records one completed image upload (MongoDB). The uploader is keyed
// by Firebase UID because the record is written from the upload hook, before
// any local user row is required to exist.
type Upload struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UploaderUID string             `json:"uploader_uid" bson:"uploader_uid"`
	FileURL     string             `json:"file_url" bson:"file_url"`
	FileName    string             `json:"file_name" bson:"file_name"`
	Size        int64              `json:"size" bson:"size"`
	ContentType string             `json:"content_type" bson:"content_type"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
