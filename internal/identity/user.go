package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrEmptyArgument  = errors.New("identity: empty argument")
	ErrAlreadyDeleted = errors.New("identity: user already deleted")
)

// Occurrence records when something happened.
type Occurrence struct {
	Instant time.Time `bson:"instant" json:"instant"`
}

func NewOccurrence() Occurrence {
	return Occurrence{Instant: time.Now().UTC()}
}

// UserEmail is the email value object: raw and normalized form plus the
// confirmation state.
type UserEmail struct {
	Value           string `bson:"value" json:"value"`
	NormalizedValue string `bson:"normalizedvalue" json:"normalizedvalue"`
	IsConfirmed     bool   `bson:"isconfirmed" json:"isconfirmed"`
}

func NewUserEmail(address string) UserEmail {
	return UserEmail{Value: address, NormalizedValue: strings.ToUpper(address)}
}

// UserClaim is a claim-type/value pair attached to a user.
type UserClaim struct {
	Type  string `bson:"type" json:"type"`
	Value string `bson:"value" json:"value"`
}

// UserLogin is an external login registered for a user.
type UserLogin struct {
	Provider string `bson:"provider" json:"provider"`
	Key      string `bson:"key" json:"key"`
}

// User is the account aggregate managed by the identity subsystem. State is
// mutated through the setter methods below, never by assigning fields from
// outside the package; setters validate their arguments.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserName           string             `bson:"username"`
	NormalizedUserName string             `bson:"normalizedusername"`
	FirstName          string             `bson:"firstname"`
	LastName           string             `bson:"lastname"`
	Email              UserEmail          `bson:"email"`
	PasswordHash       string             `bson:"passwordhash"`
	SecurityStamp      string             `bson:"securitystamp"`
	IsTwoFactorEnabled bool               `bson:"istwofactorenabled"`
	Claims             []UserClaim        `bson:"claims,omitempty"`
	Logins             []UserLogin        `bson:"logins,omitempty"`
	AccessFailedCount  int                `bson:"accessfailedcount"`
	IsLockoutEnabled   bool               `bson:"islockoutenabled"`
	LockoutEndDate     *Occurrence        `bson:"lockoutenddate,omitempty"`
	CreatedOn          Occurrence         `bson:"createdon"`
	DeletedOn          *Occurrence        `bson:"deletedon,omitempty"`
}

// NewUser constructs a user with the mandatory user name.
func NewUser(userName string) (*User, error) {
	if userName == "" {
		return nil, ErrEmptyArgument
	}
	return &User{
		UserName:  userName,
		CreatedOn: NewOccurrence(),
	}, nil
}

// NewUserWithEmail constructs a user with a user name and an email address.
func NewUserWithEmail(userName, email string) (*User, error) {
	u, err := NewUser(userName)
	if err != nil {
		return nil, err
	}
	if email != "" {
		u.Email = NewUserEmail(email)
	}
	return u, nil
}

func (u *User) EnableTwoFactorAuthentication()  { u.IsTwoFactorEnabled = true }
func (u *User) DisableTwoFactorAuthentication() { u.IsTwoFactorEnabled = false }

func (u *User) EnableLockout()  { u.IsLockoutEnabled = true }
func (u *User) DisableLockout() { u.IsLockoutEnabled = false }

func (u *User) SetEmail(address string) error {
	if address == "" {
		return ErrEmptyArgument
	}
	u.Email = NewUserEmail(address)
	return nil
}

func (u *User) SetNormalizedUserName(normalized string) error {
	if normalized == "" {
		return ErrEmptyArgument
	}
	u.NormalizedUserName = normalized
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return ErrEmptyArgument
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) SetSecurityStamp(stamp string) error {
	if stamp == "" {
		return ErrEmptyArgument
	}
	u.SecurityStamp = stamp
	return nil
}

func (u *User) SetAccessFailedCount(count int) { u.AccessFailedCount = count }
func (u *User) ResetAccessFailedCount()        { u.AccessFailedCount = 0 }

func (u *User) LockUntil(end time.Time) {
	u.LockoutEndDate = &Occurrence{Instant: end}
}

// IsLockedOut reports whether the lockout window is still open.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.IsLockoutEnabled && u.LockoutEndDate != nil && now.Before(u.LockoutEndDate.Instant)
}

func (u *User) AddClaim(claimType, value string) error {
	if claimType == "" {
		return ErrEmptyArgument
	}
	u.Claims = append(u.Claims, UserClaim{Type: claimType, Value: value})
	return nil
}

func (u *User) RemoveClaim(claimType, value string) {
	out := u.Claims[:0]
	for _, c := range u.Claims {
		if c.Type == claimType && c.Value == value {
			continue
		}
		out = append(out, c)
	}
	u.Claims = out
}

func (u *User) AddLogin(provider, key string) error {
	if provider == "" || key == "" {
		return ErrEmptyArgument
	}
	u.Logins = append(u.Logins, UserLogin{Provider: provider, Key: key})
	return nil
}

func (u *User) RemoveLogin(provider, key string) {
	out := u.Logins[:0]
	for _, l := range u.Logins {
		if l.Provider == provider && l.Key == key {
			continue
		}
		out = append(out, l)
	}
	u.Logins = out
}

// Delete soft-deletes the user. A user can be deleted only once.
func (u *User) Delete() error {
	if u.DeletedOn != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyDeleted, u.ID.Hex())
	}
	occ := NewOccurrence()
	u.DeletedOn = &occ
	return nil
}
