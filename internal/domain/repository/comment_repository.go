package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

// CommentRepository defines the persistence operations for comments.
type CommentRepository interface {
	Insert(ctx context.Context, c *entity.CommentEntity) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.CommentEntity, error)
	FindByPost(ctx context.Context, postID primitive.ObjectID) ([]entity.CommentEntity, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
