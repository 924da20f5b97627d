package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentEntity is a threaded comment on a post. ParentID references another
// comment for replies; top-level comments carry the post id as their parent.
type CommentEntity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postid" json:"postid"`
	ParentID  primitive.ObjectID `bson:"parentid" json:"parentid"`
	URL       string             `bson:"url" json:"url"`
	Type      CommentType        `bson:"type" json:"type"`
	Text      string             `bson:"text" json:"text"`
	UpVotes   int64              `bson:"upvotes" json:"upvotes"`
	DownVotes int64              `bson:"downvotes" json:"downvotes"`
	PostedBy  string             `bson:"postedby" json:"postedby"`
	CreatedOn time.Time          `bson:"createdon" json:"createdon"`
}

// Validate applies the comment rules: post, parent and type are always
// required; plain-text comments need text, media comments need a url.
func (c *CommentEntity) Validate() []FieldError {
	var errs []FieldError
	errs = requireNonZero(errs, "postid", c.PostID.IsZero())
	errs = requireNonZero(errs, "parentid", c.ParentID.IsZero())
	errs = requireString(errs, "type", string(c.Type))

	switch c.Type {
	case CommentTypeNone:
		errs = requireString(errs, "text", c.Text)
	case CommentTypeImage, CommentTypeGif, CommentTypeVideo:
		errs = requireString(errs, "url", c.URL)
	}
	return errs
}
