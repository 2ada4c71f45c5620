package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookline/shopify-booking-service/internal/domain"
	userRepo "github.com/bookline/shopify-booking-service/internal/infra/storage/user"
	"github.com/bookline/shopify-booking-service/internal/service/users/models"
)

// fakeUserRepo репозиторий в памяти для тестов сервиса
type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	created := *u
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = &created
	return &created, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	result := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}
	return result, nil
}

// fakeTokenIssuer выпускает предсказуемый токен
type fakeTokenIssuer struct {
	token string
	err   error
}

func (i *fakeTokenIssuer) Issue(int64, string) (string, error) {
	return i.token, i.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{token: "t"}, noopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "user@example.com", resp.Email)

	// Хэш в хранилище не равен паролю и проверяется bcrypt-ом
	stored := repo.users[1]
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")))
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{token: "t"}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "another",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_MissingCredentials(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeTokenIssuer{token: "t"}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Email: "user@example.com"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Password: "hunter2"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{token: "issued-token"}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{token: "t"}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2",
	})
	_, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogin_TokenIssueFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{err: errors.New("no key")}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.ErrorIs(t, err, ErrInternal)
}

func TestGetByID_DoesNotExposePasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeTokenIssuer{token: "t"}, noopLogger{})

	created, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "user@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", resp.Email)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeTokenIssuer{token: "t"}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrUserNotFound)
}
