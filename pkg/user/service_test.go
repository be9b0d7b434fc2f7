package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hashedPassword, err := hashPassword("some secret")
	require.NoError(t, err)
	assert.NotContains(t, hashedPassword, "some secret")

	match, err := comparePasswords(hashedPassword, "some secret")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = comparePasswords(hashedPassword, "some other secret")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestComparePasswords_WrongFormat(t *testing.T) {
	_, err := comparePasswords("no-salt-separator", "whatever")
	require.Error(t, err)
}

func TestService_Register(t *testing.T) {
	repository := &mockUserRepository{}
	repository.
		On("Create", mock.AnythingOfType("*model.User")).
		Return(nil)
	s := NewService(repository)

	user, err := s.Register(context.Background(), " Ann ", "Ann@Example.COM", "some secret", "")

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.NotEqual(t, "some secret", user.Password)
	assert.Contains(t, user.Password, ".")
	assert.WithinDuration(t, time.Now(), user.LastLoginTime, time.Minute)
	repository.AssertExpectations(t)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repository := &mockUserRepository{}
	repository.
		On("Create", mock.AnythingOfType("*model.User")).
		Return(errdef.NewDuplicated("a user with that name or email already exists"))
	s := NewService(repository)

	_, err := s.Register(context.Background(), "Ann", "ann@example.com", "some secret", "")

	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))
}

func TestService_SignIn(t *testing.T) {
	hashedPassword, err := hashPassword("some secret")
	require.NoError(t, err)
	stored := &model.User{ID: 1, Email: "ann@example.com", Password: hashedPassword}
	repository := &mockUserRepository{}
	repository.
		On("FindByEmail", "ann@example.com").
		Return(stored, nil)
	repository.
		On("Save", mock.AnythingOfType("*model.User")).
		Return(nil)
	s := NewService(repository)

	user, err := s.SignIn(context.Background(), "Ann@Example.com", "some secret")

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), user.LastLoginTime, time.Minute)
	repository.AssertExpectations(t)
}

func TestService_SignIn_WrongPassword(t *testing.T) {
	hashedPassword, err := hashPassword("some secret")
	require.NoError(t, err)
	stored := &model.User{ID: 1, Email: "ann@example.com", Password: hashedPassword}
	repository := &mockUserRepository{}
	repository.
		On("FindByEmail", "ann@example.com").
		Return(stored, nil)
	s := NewService(repository)

	_, err = s.SignIn(context.Background(), "ann@example.com", "some other secret")

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
	repository.AssertNotCalled(t, "Save")
}

func TestService_SignIn_UnknownEmail(t *testing.T) {
	repository := &mockUserRepository{}
	repository.
		On("FindByEmail", "ann@example.com").
		Return(nil, errdef.NewNotFound("user not found by email: %s", "ann@example.com"))
	s := NewService(repository)

	_, err := s.SignIn(context.Background(), "ann@example.com", "some secret")

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err), "unknown email should not be distinguishable from a wrong password")
}

func TestService_Update_RehashesOnlyWhenPasswordChanges(t *testing.T) {
	stored := &model.User{ID: 1, Name: "Ann", Email: "ann@example.com", Password: "hash.salt"}
	repository := &mockUserRepository{}
	repository.
		On("FindById", uint(1)).
		Return(stored, nil)
	repository.
		On("Save", mock.AnythingOfType("*model.User")).
		Return(nil)
	s := NewService(repository)

	name := "Anne"
	user, err := s.Update(context.Background(), 1, UpdateUser{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Anne", user.Name)
	assert.Equal(t, "hash.salt", user.Password)

	password := "a new secret"
	user, err = s.Update(context.Background(), 1, UpdateUser{Password: &password})

	require.NoError(t, err)
	assert.NotEqual(t, "hash.salt", user.Password)
	assert.True(t, strings.Contains(user.Password, "."))
	repository.AssertExpectations(t)
}

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	called := m.Called(user)
	return called.Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	called := m.Called(email)
	user, _ := called.Get(0).(*model.User)
	return user, called.Error(1)
}

func (m *mockUserRepository) FindById(ctx context.Context, id uint) (*model.User, error) {
	called := m.Called(id)
	user, _ := called.Get(0).(*model.User)
	return user, called.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *model.User) error {
	called := m.Called(user)
	return called.Error(0)
}
