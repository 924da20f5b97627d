package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jericho-forum/jericho/internal/identity"
	"github.com/jericho-forum/jericho/pkg/helpers"
	"github.com/jericho-forum/jericho/pkg/mailer"
	"github.com/jericho-forum/jericho/pkg/mailer/templates"
)

// Publisher abstracts the queue the confirmation email is dispatched to.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuthToken is the signed JWT handed out after registration and sign-in.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserService is an orchestration veneer over the identity manager: account
// creation, credential checks, email confirmation and token issuance.
type UserService struct {
	manager         *identity.Manager
	jwt             *helpers.JWTManager
	pub             Publisher
	logger          *logrus.Logger
	confirmEmailURL string
	mailEnabled     bool
}

func NewUserService(manager *identity.Manager, jwt *helpers.JWTManager, pub Publisher, logger *logrus.Logger, confirmEmailURL string, mailEnabled bool) *UserService {
	return &UserService{
		manager:         manager,
		jwt:             jwt,
		pub:             pub,
		logger:          logger,
		confirmEmailURL: confirmEmailURL,
		mailEnabled:     mailEnabled,
	}
}

// SaveUser registers the account and returns a token. The confirmation email
// is dispatched without awaiting its outcome; a send failure never affects
// the creation result, it only reaches the log.
func (s *UserService) SaveUser(ctx context.Context, u *identity.User, password string) ServiceResult[AuthToken] {
	if errs := s.manager.CreateUser(ctx, u, password); len(errs) > 0 {
		return Failed[AuthToken](fromIdentityErrors(errs)...)
	}

	s.sendConfirmationEmail(u)

	return s.issueToken(u)
}

// AuthorizeUser checks credentials without persisting a session and without
// counting the attempt toward lockout, then issues a token.
func (s *UserService) AuthorizeUser(ctx context.Context, userName, password string) ServiceResult[AuthToken] {
	u, err := s.manager.VerifyCredentials(ctx, userName, password, false)
	if err != nil {
		if !errors.Is(err, identity.ErrInvalidCredentials) && s.logger != nil {
			s.logger.WithError(err).WithField("user", userName).Error("credential check failed")
		}
		return Failed[AuthToken](Error{Code: "InvalidCredentials", Description: "Invalid Username or Password"})
	}
	return s.issueToken(u)
}

// ConfirmEmail validates the confirmation token for the user id.
func (s *UserService) ConfirmEmail(ctx context.Context, id, token string) ServiceResult[struct{}] {
	if errs := s.manager.ConfirmEmail(ctx, id, token); len(errs) > 0 {
		return Failed[struct{}](fromIdentityErrors(errs)...)
	}
	return Succeed(struct{}{})
}

// GetUserByID wraps found/not-found as success/failure.
func (s *UserService) GetUserByID(ctx context.Context, id string) ServiceResult[*identity.User] {
	u, err := s.manager.FindByID(ctx, id)
	if err != nil || u == nil {
		return Failed[*identity.User](Error{Code: "UserNotFound", Description: "user does not exist"})
	}
	return Succeed(u)
}

// GetUserByUserName wraps found/not-found as success/failure.
func (s *UserService) GetUserByUserName(ctx context.Context, userName string) ServiceResult[*identity.User] {
	u, err := s.manager.FindByName(ctx, userName)
	if err != nil || u == nil {
		return Failed[*identity.User](Error{Code: "UserNotFound", Description: "user does not exist"})
	}
	return Succeed(u)
}

func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) ServiceResult[struct{}] {
	if errs := s.manager.ChangePassword(ctx, userID, oldPassword, newPassword); len(errs) > 0 {
		return Failed[struct{}](fromIdentityErrors(errs)...)
	}
	return Succeed(struct{}{})
}

// ChangeEmailAddress changes the email of the authenticated user and notifies
// the previous address.
func (s *UserService) ChangeEmailAddress(ctx context.Context, userID, newEmail string) ServiceResult[struct{}] {
	var userName, oldEmail string
	if u, err := s.manager.FindByID(ctx, userID); err == nil && u != nil {
		userName = u.UserName
		oldEmail = u.Email.Value
	}
	if errs := s.manager.ChangeEmail(ctx, userID, newEmail); len(errs) > 0 {
		return Failed[struct{}](fromIdentityErrors(errs)...)
	}
	s.sendEmailChangedNotice(userName, oldEmail, newEmail)
	return Succeed(struct{}{})
}

// UpdateUser replaces the stored user document with the given one.
func (s *UserService) UpdateUser(ctx context.Context, u *identity.User) (bool, error) {
	return s.manager.Replace(ctx, u)
}

func (s *UserService) issueToken(u *identity.User) ServiceResult[AuthToken] {
	token, exp, err := s.jwt.Generate(u.UserName, u.ID.Hex())
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("user", u.UserName).Error("token signing failed")
		}
		return Failed[AuthToken](Error{Code: "TokenFailure", Description: "could not issue token"})
	}
	return Succeed(AuthToken{Token: token, ExpiresAt: exp})
}

// sendConfirmationEmail dispatches the activation email onto the queue from a
// background goroutine. Failures are logged, never surfaced to the caller.
func (s *UserService) sendConfirmationEmail(u *identity.User) {
	if s.pub == nil || !s.mailEnabled || u.Email.Value == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		token, err := s.manager.GenerateConfirmationToken(ctx, u)
		if err != nil {
			if s.logger != nil {
				s.logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("confirmation token generation failed")
			}
			return
		}
		job := mailer.EmailJob{
			To:       u.Email.Value,
			Template: templates.ActivateAccount,
			Data: map[string]any{
				"UserName":   u.UserName,
				"Token":      token,
				"ConfirmURL": s.confirmEmailURL + "?id=" + u.ID.Hex() + "&token=" + token,
			},
		}
		if err := s.pub.PublishJSON(ctx, job); err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("confirmation email publish failed")
		}
	}()
}

// sendEmailChangedNotice warns the previous address that the account email
// moved. Failures only reach the log.
func (s *UserService) sendEmailChangedNotice(userName, oldEmail, newEmail string) {
	if s.pub == nil || !s.mailEnabled || oldEmail == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		job := mailer.EmailJob{
			To:       oldEmail,
			Template: templates.EmailChanged,
			Data: map[string]any{
				"UserName": userName,
				"NewEmail": newEmail,
			},
		}
		if err := s.pub.PublishJSON(ctx, job); err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("user", userName).Error("email change notice publish failed")
		}
	}()
}
