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

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database, collection string) *CommentRepository {
	return &CommentRepository{coll: db.Collection(collection)}
}

func (r *CommentRepository) Insert(ctx context.Context, c *entity.CommentEntity) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.CommentEntity, error) {
	var c entity.CommentEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID primitive.ObjectID) ([]entity.CommentEntity, error) {
	cur, err := r.coll.Find(ctx, bson.M{"postid": postID})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	comments := make([]entity.CommentEntity, 0)
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
