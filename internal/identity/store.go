package identity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the persistence contract for user accounts. Lookups return a
// nil user with a nil error when no account matches.
type UserStore interface {
	Insert(ctx context.Context, u *User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByNormalizedName(ctx context.Context, normalized string) (*User, error)
	FindByNormalizedEmail(ctx context.Context, normalized string) (*User, error)
	Replace(ctx context.Context, u *User) (bool, error)
}
