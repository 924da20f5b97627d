package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

// FavoriteRepository defines the persistence operations for favorites.
type FavoriteRepository interface {
	Insert(ctx context.Context, f *entity.FavoriteEntity) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.FavoriteEntity, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]entity.FavoriteEntity, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
