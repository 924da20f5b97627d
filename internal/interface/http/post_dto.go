package handlers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/pkg/helpers"
)

// CreatePostRequest is the payload for a new post. The url slug, vote counts
// and timestamps are assigned server side and never taken from the client.
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	PostedBy string `json:"postedby" binding:"required"`
}

// ToEntity maps the request onto a fresh entity: nil id, zero votes, slug
// derived from the title, creation time pinned to now.
func (r *CreatePostRequest) ToEntity(now time.Time) *entity.PostEntity {
	return &entity.PostEntity{
		ID:        primitive.NilObjectID,
		Title:     r.Title,
		Text:      r.Text,
		URL:       helpers.Slug(r.Title, now),
		Type:      entity.ParsePostType(r.Type),
		UpVotes:   0,
		DownVotes: 0,
		PostedBy:  r.PostedBy,
		CreatedOn: now.UTC(),
		IsDeleted: false,
	}
}

// UpdatePostRequest carries the full replacement document for a post.
type UpdatePostRequest struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" binding:"required"`
	Text      string    `json:"text"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	UpVotes   int64     `json:"upvotes"`
	DownVotes int64     `json:"downvotes"`
	PostedBy  string    `json:"postedby" binding:"required"`
	CreatedOn time.Time `json:"createdon"`
	IsDeleted bool      `json:"isdeleted"`
}

// ToEntity maps the update payload. An absent id maps to the nil ObjectID;
// a present but malformed id is an error.
func (r *UpdatePostRequest) ToEntity() (*entity.PostEntity, error) {
	oid := primitive.NilObjectID
	if r.ID != "" {
		var err error
		oid, err = primitive.ObjectIDFromHex(r.ID)
		if err != nil {
			return nil, err
		}
	}
	return &entity.PostEntity{
		ID:        oid,
		Title:     r.Title,
		Text:      r.Text,
		URL:       r.URL,
		Type:      entity.ParsePostType(r.Type),
		UpVotes:   r.UpVotes,
		DownVotes: r.DownVotes,
		PostedBy:  r.PostedBy,
		CreatedOn: r.CreatedOn,
		IsDeleted: r.IsDeleted,
	}, nil
}
