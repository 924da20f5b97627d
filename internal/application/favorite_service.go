package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/domain/repository"
)

// FavoriteService orchestrates persistence of user favorites. The favorite
// type is assigned by the mapping layer from the request variant before the
// entity reaches this service.
type FavoriteService struct {
	repo repository.FavoriteRepository
}

func NewFavoriteService(repo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) SaveFavorite(ctx context.Context, f *entity.FavoriteEntity) (ServiceResult[*entity.FavoriteEntity], error) {
	if errs := f.Validate(); len(errs) > 0 {
		return Failed[*entity.FavoriteEntity](fromFieldErrors(errs)...), nil
	}

	id, err := s.repo.Insert(ctx, f)
	if err != nil {
		return ServiceResult[*entity.FavoriteEntity]{}, err
	}

	inserted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceResult[*entity.FavoriteEntity]{}, err
	}
	return Succeed(inserted), nil
}

func (s *FavoriteService) GetFavoritesForUser(ctx context.Context, userID string) ([]entity.FavoriteEntity, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUser(ctx, oid)
}

// DeleteFavorite removes the favorite when it exists and belongs to the user.
func (s *FavoriteService) DeleteFavorite(ctx context.Context, id, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}
	f, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return false, err
	}
	if f == nil || f.UserID.Hex() != userID {
		return false, nil
	}
	return s.repo.Delete(ctx, oid)
}
