package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

// PostRepository defines the persistence operations for posts.
// A nil entity with a nil error means not found.
type PostRepository interface {
	Insert(ctx context.Context, p *entity.PostEntity) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.PostEntity, error)
	Find(ctx context.Context, params map[string]string, page, limit int) ([]entity.PostEntity, error)
	Replace(ctx context.Context, p *entity.PostEntity) (bool, error)
}
