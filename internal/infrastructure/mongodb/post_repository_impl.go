package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/domain/repository"
)

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database, collection string) *PostRepository {
	return &PostRepository{coll: db.Collection(collection)}
}

func (r *PostRepository) Insert(ctx context.Context, p *entity.PostEntity) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.PostEntity, error) {
	var p entity.PostEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Find runs the dynamic filter built from query parameters, paginated as
// skip = page*limit. No total count is computed.
func (r *PostRepository) Find(ctx context.Context, params map[string]string, page, limit int) ([]entity.PostEntity, error) {
	filter := BuildPostFilter(params)
	opts := options.Find().
		SetSkip(int64(page) * int64(limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	posts := make([]entity.PostEntity, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Replace overwrites the document matched by the entity id. It reports true
// only when the write matched an existing document.
func (r *PostRepository) Replace(ctx context.Context, p *entity.PostEntity) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
