package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteEntity marks a post or a directory as a favorite of a user.
type FavoriteEntity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userid" json:"userid"`
	TargetID     primitive.ObjectID `bson:"targetid" json:"targetid"`
	FavoriteType FavoriteType       `bson:"favoritetype" json:"favoritetype"`
	CreatedOn    time.Time          `bson:"createdon" json:"createdon"`
}

func (f *FavoriteEntity) Validate() []FieldError {
	var errs []FieldError
	errs = requireNonZero(errs, "userid", f.UserID.IsZero())
	errs = requireNonZero(errs, "targetid", f.TargetID.IsZero())
	errs = requireString(errs, "favoritetype", string(f.FavoriteType))
	return errs
}
