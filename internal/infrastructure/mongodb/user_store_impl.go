package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jericho-forum/jericho/internal/identity"
)

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database, collection string) *UserStore {
	return &UserStore{coll: db.Collection(collection)}
}

func (s *UserStore) Insert(ctx context.Context, u *identity.User) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*identity.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) FindByNormalizedName(ctx context.Context, normalized string) (*identity.User, error) {
	return s.findOne(ctx, bson.M{"normalizedusername": normalized})
}

func (s *UserStore) FindByNormalizedEmail(ctx context.Context, normalized string) (*identity.User, error) {
	return s.findOne(ctx, bson.M{"email.normalizedvalue": normalized})
}

func (s *UserStore) Replace(ctx context.Context, u *identity.User) (bool, error) {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*identity.User, error) {
	var u identity.User
	err := s.coll.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

var _ identity.UserStore = (*UserStore)(nil)
