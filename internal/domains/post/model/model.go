package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind names an editorial feed. Each kind lives in its own collection.
type Kind string

const (
	KindNews         Kind = "news"
	KindAnnouncement Kind = "announcement"
)

func (k Kind) Collection() string {
	if k == KindAnnouncement {
		return "announcements"
	}

	return string(k)
}

const (
	FieldID          = "_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldImagePath   = "image_path"
	FieldLink        = "link"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
	FieldUpdatedBy   = "updated_by"
)

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	ImagePath   string             `bson:"image_path,omitempty"`
	Link        string             `bson:"link,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	CreatedBy   string             `bson:"created_by"`
	UpdatedBy   string             `bson:"updated_by"`
}
