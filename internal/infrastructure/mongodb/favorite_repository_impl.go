package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/domain/repository"
)

type FavoriteRepository struct {
	coll *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database, collection string) *FavoriteRepository {
	return &FavoriteRepository{coll: db.Collection(collection)}
}

func (r *FavoriteRepository) Insert(ctx context.Context, f *entity.FavoriteEntity) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *FavoriteRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.FavoriteEntity, error) {
	var f entity.FavoriteEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]entity.FavoriteEntity, error) {
	cur, err := r.coll.Find(ctx, bson.M{"userid": userID})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	favorites := make([]entity.FavoriteEntity, 0)
	if err := cur.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
