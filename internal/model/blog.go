package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// BlogPost is a document in the `blogs` collection.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Thumbnail   string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Content     string             `bson:"content" json:"content"`
	Status      string             `bson:"status" json:"status"`
	AuthorEmail string             `bson:"authorEmail,omitempty" json:"authorEmail,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
