package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
)

type fakeFavoriteRepo struct {
	favs    map[primitive.ObjectID]*entity.FavoriteEntity
	deletes int
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favs: map[primitive.ObjectID]*entity.FavoriteEntity{}}
}

func (r *fakeFavoriteRepo) Insert(_ context.Context, f *entity.FavoriteEntity) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *f
	cp.ID = id
	r.favs[id] = &cp
	return id, nil
}

func (r *fakeFavoriteRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.FavoriteEntity, error) {
	if f, ok := r.favs[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]entity.FavoriteEntity, error) {
	var out []entity.FavoriteEntity
	for _, f := range r.favs {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.deletes++
	if _, ok := r.favs[id]; !ok {
		return false, nil
	}
	delete(r.favs, id)
	return true, nil
}

func TestSaveFavorite(t *testing.T) {
	repo := newFakeFavoriteRepo()
	svc := NewFavoriteService(repo)

	f := &entity.FavoriteEntity{
		UserID:       primitive.NewObjectID(),
		TargetID:     primitive.NewObjectID(),
		FavoriteType: entity.FavoriteTypePost,
		CreatedOn:    time.Now().UTC(),
	}
	res, err := svc.SaveFavorite(context.Background(), f)
	require.NoError(t, err)
	require.True(t, res.Succeeded)
	assert.False(t, res.Value.ID.IsZero())
}

func TestSaveFavoriteInvalid(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo())

	res, err := svc.SaveFavorite(context.Background(), &entity.FavoriteEntity{})
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Len(t, res.Errors, 3)
}

func TestDeleteFavoriteOwnership(t *testing.T) {
	repo := newFakeFavoriteRepo()
	svc := NewFavoriteService(repo)

	owner := primitive.NewObjectID()
	res, err := svc.SaveFavorite(context.Background(), &entity.FavoriteEntity{
		UserID:       owner,
		TargetID:     primitive.NewObjectID(),
		FavoriteType: entity.FavoriteTypeDirectory,
		CreatedOn:    time.Now().UTC(),
	})
	require.NoError(t, err)
	id := res.Value.ID

	// someone else cannot delete it
	deleted, err := svc.DeleteFavorite(context.Background(), id.Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Contains(t, repo.favs, id)

	deleted, err = svc.DeleteFavorite(context.Background(), id.Hex(), owner.Hex())
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, repo.favs, id)
}

func TestDeleteFavoriteUnknown(t *testing.T) {
	svc := NewFavoriteService(newFakeFavoriteRepo())
	deleted, err := svc.DeleteFavorite(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.False(t, deleted)
}
