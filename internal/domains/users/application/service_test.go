package application

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	"github.com/Apurer/petstore-api/internal/domains/users/domain"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, domain.ErrDuplicateUsername
	}
	f.nextID++
	copy := *user
	copy.ID = f.nextID
	f.users[user.Username] = &copy
	out := copy
	return &out, nil
}

func (f *fakeUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := *user
	f.users[user.Username] = &copy
	return &copy, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[username]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	delete(f.users, username)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var list []*domain.User
	for _, u := range f.users {
		copy := *u
		list = append(list, &copy)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func str(v string) *string { return &v }

func createAlice(t *testing.T, svc *Service) *domain.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), types.CreateUserInput{
		Username: str("alice"), Email: str("alice@example.com"), Password: str("secret"),
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	user := createAlice(t, svc)
	assert.Equal(t, &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "secret"}, user)

	_, err := svc.CreateUser(context.Background(), types.CreateUserInput{
		Username: str("alice"), Email: str("x@example.com"), Password: str("x"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestCreateUser_MissingFieldsInOrder(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, types.CreateUserInput{})
	assert.ErrorIs(t, err, domain.ErrMissingUsername)
	_, err = svc.CreateUser(ctx, types.CreateUserInput{Username: str("bob")})
	assert.ErrorIs(t, err, domain.ErrMissingEmail)
	_, err = svc.CreateUser(ctx, types.CreateUserInput{Username: str("bob"), Email: str("b@example.com")})
	assert.ErrorIs(t, err, domain.ErrMissingPassword)
	assert.Equal(t, "Bad or missing data. Missing password field", err.Error())
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	createAlice(t, svc)
	ctx := context.Background()

	ack, err := svc.Login(ctx, types.LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", ack.Message)

	_, err = svc.Login(ctx, types.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, types.LoginInput{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, types.LoginInput{Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrMissingUsername)
	_, err = svc.Login(ctx, types.LoginInput{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrMissingPassword)
}

func TestLogin_RepositoryFailureIsNotMaskedAsCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("db down")
	svc := NewService(repo)

	_, err := svc.Login(context.Background(), types.LoginInput{Username: "alice", Password: "secret"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdate(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	created := createAlice(t, svc)
	ctx := context.Background()

	_, err := svc.Update(ctx, types.UpdateUserInput{Username: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.Update(ctx, types.UpdateUserInput{Username: "alice", Password: str("new")})
	assert.ErrorIs(t, err, domain.ErrMissingEmail)
	_, err = svc.Update(ctx, types.UpdateUserInput{Username: "alice", Email: str("new@example.com")})
	assert.ErrorIs(t, err, domain.ErrMissingPassword)

	updated, err := svc.Update(ctx, types.UpdateUserInput{Username: "alice", Email: str("new@example.com"), Password: str("new")})
	require.NoError(t, err)
	assert.Equal(t, &domain.User{ID: created.ID, Username: "alice", Email: "new@example.com", Password: "new"}, updated)
}

func TestDelete_IsIdempotent(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	createAlice(t, svc)
	ctx := context.Background()

	ack, err := svc.Delete(ctx, types.UserIdentifier{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "User alice deleted", ack.Message)

	ack, err = svc.Delete(ctx, types.UserIdentifier{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "User alice deleted", ack.Message)

	_, err = svc.GetByUsername(ctx, types.UserIdentifier{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
