package handlers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

// CreateCommentRequest is the payload for a new comment. Top-level comments
// pass the post id as parentid.
type CreateCommentRequest struct {
	PostID   string `json:"postid" binding:"required"`
	ParentID string `json:"parentid" binding:"required"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	URL      string `json:"url"`
	PostedBy string `json:"postedby" binding:"required"`
}

func (r *CreateCommentRequest) ToEntity(now time.Time) (*entity.CommentEntity, error) {
	postID, err := primitive.ObjectIDFromHex(r.PostID)
	if err != nil {
		return nil, err
	}
	parentID, err := primitive.ObjectIDFromHex(r.ParentID)
	if err != nil {
		return nil, err
	}
	return &entity.CommentEntity{
		ID:        primitive.NilObjectID,
		PostID:    postID,
		ParentID:  parentID,
		URL:       r.URL,
		Type:      entity.ParseCommentType(r.Type),
		Text:      r.Text,
		UpVotes:   0,
		DownVotes: 0,
		PostedBy:  r.PostedBy,
		CreatedOn: now.UTC(),
	}, nil
}

// CommentResponse is the wire shape of a comment, ids rendered as hex.
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postid"`
	ParentID  string    `json:"parentid"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	UpVotes   int64     `json:"upvotes"`
	DownVotes int64     `json:"downvotes"`
	PostedBy  string    `json:"postedby"`
	CreatedOn time.Time `json:"createdon"`
}

func NewCommentResponse(c *entity.CommentEntity) CommentResponse {
	return CommentResponse{
		ID:        c.ID.Hex(),
		PostID:    c.PostID.Hex(),
		ParentID:  c.ParentID.Hex(),
		URL:       c.URL,
		Type:      string(c.Type),
		Text:      c.Text,
		UpVotes:   c.UpVotes,
		DownVotes: c.DownVotes,
		PostedBy:  c.PostedBy,
		CreatedOn: c.CreatedOn,
	}
}

func NewCommentResponses(cs []entity.CommentEntity) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for i := range cs {
		out = append(out, NewCommentResponse(&cs[i]))
	}
	return out
}
