package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostEntity is the persisted shape of a forum post. Field names are fixed
// lower-case strings in the store, independent of the Go property names.
type PostEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Text      string             `bson:"text" json:"text"`
	URL       string             `bson:"url" json:"url"`
	Type      PostType           `bson:"type" json:"type"`
	UpVotes   int64              `bson:"upvotes" json:"upvotes"`
	DownVotes int64              `bson:"downvotes" json:"downvotes"`
	PostedBy  string             `bson:"postedby" json:"postedby"`
	CreatedOn time.Time          `bson:"createdon" json:"createdon"`
	IsDeleted bool               `bson:"isdeleted" json:"isdeleted"`
}

// Validate checks the rules a post must satisfy before it is persisted.
// It returns an empty slice when the post is valid.
func (p *PostEntity) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "title", p.Title)
	errs = requireString(errs, "postedby", p.PostedBy)
	return errs
}
