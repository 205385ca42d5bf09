package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post là document lưu trong collection posts.
// Published là bool thường: document thiếu field này decode thành false.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Author    string             `bson:"author"`
	Published bool               `bson:"published"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// ToView converts the stored document to its wire representation
func (p *Post) ToView() PostView {
	return PostView{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Body:      p.Body,
		Author:    p.Author,
		Published: p.Published,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}
