package handlers

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/identity"
)

func TestCreatePostRequestToEntity(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	req := CreatePostRequest{Title: "Hello World", Text: "body", Type: "Text", PostedBy: "alice"}

	p := req.ToEntity(now)

	assert.Equal(t, primitive.NilObjectID, p.ID)
	assert.Equal(t, "hello_world_"+strconv.FormatInt(now.Unix(), 10), p.URL)
	assert.Equal(t, entity.PostTypeText, p.Type)
	assert.Zero(t, p.UpVotes)
	assert.Zero(t, p.DownVotes)
	assert.Equal(t, now.UTC(), p.CreatedOn)
	assert.False(t, p.IsDeleted)
}

func TestCreatePostRequestUnknownType(t *testing.T) {
	p := (&CreatePostRequest{Title: "t", Type: "Podcast", PostedBy: "a"}).ToEntity(time.Now())
	assert.Equal(t, entity.PostTypeNone, p.Type)
}

func TestUpdatePostRequestToEntity(t *testing.T) {
	id := primitive.NewObjectID()
	req := UpdatePostRequest{ID: id.Hex(), Title: "t", PostedBy: "a", UpVotes: 3, IsDeleted: true}

	p, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, int64(3), p.UpVotes)
	assert.True(t, p.IsDeleted)
}

func TestUpdatePostRequestEmptyAndBadID(t *testing.T) {
	p, err := (&UpdatePostRequest{Title: "t", PostedBy: "a"}).ToEntity()
	require.NoError(t, err)
	assert.Equal(t, primitive.NilObjectID, p.ID)

	_, err = (&UpdatePostRequest{ID: "zz", Title: "t", PostedBy: "a"}).ToEntity()
	assert.Error(t, err)
}

func TestCommentRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	postID := primitive.NewObjectID()
	parentID := primitive.NewObjectID()

	req := CreateCommentRequest{
		PostID:   postID.Hex(),
		ParentID: parentID.Hex(),
		Type:     "Image",
		URL:      "https://cdn/img.png",
		PostedBy: "alice",
	}
	c, err := req.ToEntity(now)
	require.NoError(t, err)
	c.ID = primitive.NewObjectID()

	resp := NewCommentResponse(c)
	assert.Equal(t, c.ID.Hex(), resp.ID)
	assert.Equal(t, req.PostID, resp.PostID)
	assert.Equal(t, req.ParentID, resp.ParentID)
	assert.Equal(t, "Image", resp.Type)
	assert.Equal(t, req.URL, resp.URL)
	assert.Equal(t, req.PostedBy, resp.PostedBy)
	assert.Equal(t, now.UTC(), resp.CreatedOn)
}

func TestCreateCommentRequestBadReference(t *testing.T) {
	_, err := (&CreateCommentRequest{PostID: "zz", ParentID: "zz", PostedBy: "a"}).ToEntity(time.Now())
	assert.Error(t, err)
}

func TestSaveFavoriteRequestToEntity(t *testing.T) {
	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()
	now := time.Now()

	f, err := (&SaveFavoriteRequest{TargetID: targetID.Hex()}).ToEntity(userID.Hex(), entity.FavoriteTypeDirectory, now)
	require.NoError(t, err)
	assert.Equal(t, userID, f.UserID)
	assert.Equal(t, targetID, f.TargetID)
	assert.Equal(t, entity.FavoriteTypeDirectory, f.FavoriteType)

	_, err = (&SaveFavoriteRequest{TargetID: "bad"}).ToEntity(userID.Hex(), entity.FavoriteTypePost, now)
	assert.Error(t, err)
}

func TestGetUserResponseKeepsEmailCasing(t *testing.T) {
	u, err := identity.NewUserWithEmail("alice", "Alice.B@Example.COM")
	require.NoError(t, err)
	u.ID = primitive.NewObjectID()

	resp := NewGetUserResponse(u)

	assert.Equal(t, "Alice.B@Example.COM", resp.Email)
	assert.Equal(t, "alice", resp.UserName)
}
