package handlers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

// SaveFavoriteRequest names the target being favorited. The favorite type is
// fixed by the route variant, the owner by the authenticated user.
type SaveFavoriteRequest struct {
	TargetID string `json:"targetid" binding:"required"`
}

func (r *SaveFavoriteRequest) ToEntity(userID string, ft entity.FavoriteType, now time.Time) (*entity.FavoriteEntity, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	tid, err := primitive.ObjectIDFromHex(r.TargetID)
	if err != nil {
		return nil, err
	}
	return &entity.FavoriteEntity{
		ID:           primitive.NilObjectID,
		UserID:       uid,
		TargetID:     tid,
		FavoriteType: ft,
		CreatedOn:    now.UTC(),
	}, nil
}

// FavoriteResponse is the wire shape of a favorite, ids rendered as hex.
type FavoriteResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userid"`
	TargetID     string    `json:"targetid"`
	FavoriteType string    `json:"favoritetype"`
	CreatedOn    time.Time `json:"createdon"`
}

func NewFavoriteResponse(f *entity.FavoriteEntity) FavoriteResponse {
	return FavoriteResponse{
		ID:           f.ID.Hex(),
		UserID:       f.UserID.Hex(),
		TargetID:     f.TargetID.Hex(),
		FavoriteType: string(f.FavoriteType),
		CreatedOn:    f.CreatedOn,
	}
}

func NewFavoriteResponses(fs []entity.FavoriteEntity) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(fs))
	for i := range fs {
		out = append(out, NewFavoriteResponse(&fs[i]))
	}
	return out
}
