package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("identity: invalid credentials")

const (
	maxAccessFailures = 5
	lockoutWindow     = 5 * time.Minute
)

// Manager owns account lifecycle: creation, credential verification,
// confirmation tokens, password and email changes. It is the only place that
// touches password hashes.
type Manager struct {
	store  UserStore
	tokens *TokenProvider
	logger *logrus.Logger
}

func NewManager(store UserStore, tokens *TokenProvider, logger *logrus.Logger) *Manager {
	return &Manager{store: store, tokens: tokens, logger: logger}
}

func normalize(s string) string { return strings.ToUpper(s) }

// CreateUser registers the account: duplicate checks, password hashing, and
// the initial security stamp. On success the user's ID is populated.
func (m *Manager) CreateUser(ctx context.Context, u *User, password string) []Error {
	if existing, err := m.store.FindByNormalizedName(ctx, normalize(u.UserName)); err != nil {
		return []Error{errStoreFailure(err)}
	} else if existing != nil {
		return []Error{errDuplicateUserName(u.UserName)}
	}
	if u.Email.Value != "" {
		if existing, err := m.store.FindByNormalizedEmail(ctx, u.Email.NormalizedValue); err != nil {
			return []Error{errStoreFailure(err)}
		} else if existing != nil {
			return []Error{errDuplicateEmail(u.Email.Value)}
		}
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return []Error{errStoreFailure(err)}
	}
	_ = u.SetNormalizedUserName(normalize(u.UserName))
	_ = u.SetPasswordHash(hash)
	_ = u.SetSecurityStamp(uuid.NewString())
	u.EnableLockout()

	id, err := m.store.Insert(ctx, u)
	if err != nil {
		return []Error{errStoreFailure(err)}
	}
	u.ID = id
	return nil
}

// VerifyCredentials checks the password for the named user. When
// lockoutOnFailure is set, failed attempts count toward a temporary lockout;
// the sign-in path disables it.
func (m *Manager) VerifyCredentials(ctx context.Context, userName, password string, lockoutOnFailure bool) (*User, error) {
	u, err := m.store.FindByNormalizedName(ctx, normalize(userName))
	if err != nil {
		return nil, err
	}
	if u == nil || u.DeletedOn != nil {
		return nil, ErrInvalidCredentials
	}
	if u.IsLockedOut(time.Now().UTC()) {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		if lockoutOnFailure {
			u.SetAccessFailedCount(u.AccessFailedCount + 1)
			if u.AccessFailedCount >= maxAccessFailures {
				u.LockUntil(time.Now().UTC().Add(lockoutWindow))
				u.ResetAccessFailedCount()
			}
			if _, rerr := m.store.Replace(ctx, u); rerr != nil && m.logger != nil {
				m.logger.WithError(rerr).WithField("user", userName).Warn("persisting failed-access count failed")
			}
		}
		return nil, ErrInvalidCredentials
	}
	if u.AccessFailedCount > 0 {
		u.ResetAccessFailedCount()
		if _, rerr := m.store.Replace(ctx, u); rerr != nil && m.logger != nil {
			m.logger.WithError(rerr).WithField("user", userName).Warn("resetting failed-access count failed")
		}
	}
	return u, nil
}

// GenerateConfirmationToken issues the email-confirmation token for a user.
func (m *Manager) GenerateConfirmationToken(ctx context.Context, u *User) (string, error) {
	return m.tokens.Generate(ctx, u.ID.Hex())
}

// ConfirmEmail validates the token and marks the user's email confirmed.
func (m *Manager) ConfirmEmail(ctx context.Context, id, token string) []Error {
	u, errs := m.findByHexID(ctx, id)
	if errs != nil {
		return errs
	}
	if !m.tokens.Consume(ctx, u.ID.Hex(), token) {
		return []Error{errInvalidToken()}
	}
	u.Email.IsConfirmed = true
	if _, err := m.store.Replace(ctx, u); err != nil {
		return []Error{errStoreFailure(err)}
	}
	return nil
}

// ChangePassword verifies the old password before installing the new hash.
// The security stamp rotates with the password.
func (m *Manager) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) []Error {
	u, errs := m.findByHexID(ctx, id)
	if errs != nil {
		return errs
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, oldPassword) {
		return []Error{errPasswordMismatch()}
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return []Error{errStoreFailure(err)}
	}
	_ = u.SetPasswordHash(hash)
	_ = u.SetSecurityStamp(uuid.NewString())
	if _, err := m.store.Replace(ctx, u); err != nil {
		return []Error{errStoreFailure(err)}
	}
	return nil
}

// ChangeEmail replaces the email address; the new address starts unconfirmed.
func (m *Manager) ChangeEmail(ctx context.Context, id, newEmail string) []Error {
	u, errs := m.findByHexID(ctx, id)
	if errs != nil {
		return errs
	}
	if err := u.SetEmail(newEmail); err != nil {
		return []Error{{Code: "InvalidEmail", Description: "email must not be empty"}}
	}
	if _, err := m.store.Replace(ctx, u); err != nil {
		return []Error{errStoreFailure(err)}
	}
	return nil
}

// Replace overwrites the stored user document.
func (m *Manager) Replace(ctx context.Context, u *User) (bool, error) {
	return m.store.Replace(ctx, u)
}

// FindByID looks a user up by hex id. Nil without error means not found.
func (m *Manager) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return m.store.FindByID(ctx, oid)
}

// FindByName looks a user up by user name.
func (m *Manager) FindByName(ctx context.Context, userName string) (*User, error) {
	return m.store.FindByNormalizedName(ctx, normalize(userName))
}

func (m *Manager) findByHexID(ctx context.Context, id string) (*User, []Error) {
	u, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, []Error{errUserNotFound()}
	}
	if u == nil {
		return nil, []Error{errUserNotFound()}
	}
	return u, nil
}
