package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/identity"
	"github.com/jericho-forum/jericho/pkg/helpers"
	"github.com/jericho-forum/jericho/pkg/mailer"
	"github.com/jericho-forum/jericho/pkg/mailer/templates"
)

type fakeUserStore struct {
	users map[primitive.ObjectID]*identity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*identity.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, u *identity.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *u
	cp.ID = id
	s.users[id] = &cp
	return id, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*identity.User, error) {
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeUserStore) FindByNormalizedName(_ context.Context, normalized string) (*identity.User, error) {
	for _, u := range s.users {
		if u.NormalizedUserName == normalized {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByNormalizedEmail(_ context.Context, normalized string) (*identity.User, error) {
	for _, u := range s.users {
		if u.Email.NormalizedValue == normalized {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Replace(_ context.Context, u *identity.User) (bool, error) {
	if _, ok := s.users[u.ID]; !ok {
		return false, nil
	}
	cp := *u
	s.users[u.ID] = &cp
	return true, nil
}

func newUserService(store identity.UserStore) *UserService {
	manager := identity.NewManager(store, nil, nil)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(manager, jwt, nil, nil, "http://localhost/confirm", false)
}

func TestSaveUserIssuesToken(t *testing.T) {
	svc := newUserService(newFakeUserStore())

	u, err := identity.NewUserWithEmail("alice", "alice@example.com")
	require.NoError(t, err)

	res := svc.SaveUser(context.Background(), u, "password123")
	require.True(t, res.Succeeded)
	assert.NotEmpty(t, res.Value.Token)
	assert.True(t, res.Value.ExpiresAt.After(time.Now()))

	claims, err := helpers.NewJWTManager("test-secret", time.Hour).Parse(res.Value.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, u.ID.Hex(), claims.SessionID)
}

func TestSaveUserDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)

	first, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.True(t, svc.SaveUser(context.Background(), first, "password123").Succeeded)

	second, _ := identity.NewUserWithEmail("alice", "other@example.com")
	res := svc.SaveUser(context.Background(), second, "password123")
	assert.False(t, res.Succeeded)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "DuplicateUserName", res.Errors[0].Code)
}

func TestAuthorizeUser(t *testing.T) {
	svc := newUserService(newFakeUserStore())
	u, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.True(t, svc.SaveUser(context.Background(), u, "password123").Succeeded)

	res := svc.AuthorizeUser(context.Background(), "alice", "password123")
	require.True(t, res.Succeeded)
	assert.NotEmpty(t, res.Value.Token)
}

func TestAuthorizeUserBadCredentials(t *testing.T) {
	svc := newUserService(newFakeUserStore())
	u, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.True(t, svc.SaveUser(context.Background(), u, "password123").Succeeded)

	// wrong password and unknown user answer identically
	for _, tc := range []struct{ user, pass string }{
		{"alice", "wrong"},
		{"nobody", "password123"},
	} {
		res := svc.AuthorizeUser(context.Background(), tc.user, tc.pass)
		assert.False(t, res.Succeeded)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "InvalidCredentials", res.Errors[0].Code)
		assert.Equal(t, "Invalid Username or Password", res.Errors[0].Description)
	}
}

func TestGetUserByUserName(t *testing.T) {
	svc := newUserService(newFakeUserStore())
	u, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.True(t, svc.SaveUser(context.Background(), u, "password123").Succeeded)

	res := svc.GetUserByUserName(context.Background(), "alice")
	require.True(t, res.Succeeded)
	assert.Equal(t, "alice", res.Value.UserName)

	res = svc.GetUserByUserName(context.Background(), "nobody")
	assert.False(t, res.Succeeded)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "UserNotFound", res.Errors[0].Code)
}

type capturePublisher struct {
	jobs chan mailer.EmailJob
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{jobs: make(chan mailer.EmailJob, 1)}
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	if job, ok := body.(mailer.EmailJob); ok {
		p.jobs <- job
	}
	return nil
}

func TestChangeEmailAddressNotifiesOldAddress(t *testing.T) {
	store := newFakeUserStore()
	manager := identity.NewManager(store, nil, nil)
	pub := newCapturePublisher()
	svc := NewUserService(manager, helpers.NewJWTManager("test-secret", time.Hour), pub, nil, "http://localhost/confirm", true)

	u, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.Empty(t, manager.CreateUser(context.Background(), u, "password123"))

	res := svc.ChangeEmailAddress(context.Background(), u.ID.Hex(), "new@example.com")
	require.True(t, res.Succeeded)

	select {
	case job := <-pub.jobs:
		assert.Equal(t, "alice@example.com", job.To)
		assert.Equal(t, templates.EmailChanged, job.Template)
		assert.Equal(t, "new@example.com", job.Data["NewEmail"])
		assert.Equal(t, "alice", job.Data["UserName"])
	case <-time.After(2 * time.Second):
		t.Fatal("no email change notice published")
	}
}

func TestChangeEmailAddressUsesCallerID(t *testing.T) {
	store := newFakeUserStore()
	svc := newUserService(store)
	u, _ := identity.NewUserWithEmail("alice", "alice@example.com")
	require.True(t, svc.SaveUser(context.Background(), u, "password123").Succeeded)

	res := svc.ChangeEmailAddress(context.Background(), u.ID.Hex(), "new@example.com")
	require.True(t, res.Succeeded)
	assert.Equal(t, "new@example.com", store.users[u.ID].Email.Value)

	// missing caller id cannot change anyone's email
	res = svc.ChangeEmailAddress(context.Background(), "", "evil@example.com")
	assert.False(t, res.Succeeded)
}
