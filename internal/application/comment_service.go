package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/domain/repository"
)

// CommentService orchestrates validation and persistence for comments.
type CommentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// CreateComment validates then inserts; the inserted document is re-read by
// id before being returned.
func (s *CommentService) CreateComment(ctx context.Context, c *entity.CommentEntity) (ServiceResult[*entity.CommentEntity], error) {
	if errs := c.Validate(); len(errs) > 0 {
		return Failed[*entity.CommentEntity](fromFieldErrors(errs)...), nil
	}

	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return ServiceResult[*entity.CommentEntity]{}, err
	}

	inserted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceResult[*entity.CommentEntity]{}, err
	}
	return Succeed(inserted), nil
}

func (s *CommentService) GetComment(ctx context.Context, id string) (*entity.CommentEntity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// GetCommentsForPost returns the flat comment list for a post; threading is
// reconstructed client side from parent references.
func (s *CommentService) GetCommentsForPost(ctx context.Context, postID string) ([]entity.CommentEntity, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByPost(ctx, oid)
}

func (s *CommentService) DeleteComment(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, oid)
}
