package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService() *UserService {
	return NewUserService(UserWithRepository(newStubUsers()), UserWithBcryptCost(bcrypt.MinCost))
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService()

	user, err := svc.CreateUser(ctx, CreateUserRequest{
		Email:             " Asha@Example.com ",
		Password:          "correct horse",
		Name:              "Asha",
		PreferredLanguage: "ta-IN",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "ta", user.PreferredLanguage)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

	tests := []struct {
		name string
		req  CreateUserRequest
		want error
	}{
		{name: "duplicate email", req: CreateUserRequest{Email: "asha@example.com", Password: "another one"}, want: ErrEmailTaken},
		{name: "bad email", req: CreateUserRequest{Email: "not-an-email", Password: "long enough"}, want: ErrInvalidEmail},
		{name: "display name in email", req: CreateUserRequest{Email: "Asha <a@b.com>", Password: "long enough"}, want: ErrInvalidEmail},
		{name: "short password", req: CreateUserRequest{Email: "b@example.com", Password: "short"}, want: ErrPasswordTooShort},
		{name: "unsupported language", req: CreateUserRequest{Email: "c@example.com", Password: "long enough", PreferredLanguage: "fr"}, want: ErrUnsupportedLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("Defaults to English", func(t *testing.T) {
		u, err := svc.CreateUser(ctx, CreateUserRequest{Email: "d@example.com", Password: "long enough"})
		require.NoError(t, err)
		assert.Equal(t, "en", u.PreferredLanguage)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService()
	created, err := svc.CreateUser(ctx, CreateUserRequest{Email: "e@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "E@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "e@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetPreferredLanguage(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService()
	created, err := svc.CreateUser(ctx, CreateUserRequest{Email: "f@example.com", Password: "long enough"})
	require.NoError(t, err)

	user, err := svc.SetPreferredLanguage(ctx, created.ID, "te")
	require.NoError(t, err)
	assert.Equal(t, "te", user.PreferredLanguage)

	_, err = svc.SetPreferredLanguage(ctx, created.ID, "klingon")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	_, err = svc.SetPreferredLanguage(ctx, uuid.New(), "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResolveLanguage(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService()
	created, err := svc.CreateUser(ctx, CreateUserRequest{Email: "g@example.com", Password: "long enough", PreferredLanguage: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "te", svc.ResolveLanguage(ctx, "te", &created.ID, "ta"))
	assert.Equal(t, "hi", svc.ResolveLanguage(ctx, "", &created.ID, "ta"))
	assert.Equal(t, "hi", svc.ResolveLanguage(ctx, "fr", &created.ID, "ta"))
	assert.Equal(t, "ta", svc.ResolveLanguage(ctx, "", nil, "ta-IN,en;q=0.5"))
	assert.Equal(t, "en", svc.ResolveLanguage(ctx, "", nil, ""))

	hindi := NewUserService(UserWithRepository(newStubUsers()), UserWithDefaultLanguage("hi"))
	assert.Equal(t, "hi", hindi.ResolveLanguage(ctx, "", nil, ""))
	assert.Equal(t, "ta", hindi.ResolveLanguage(ctx, "", nil, "ta"))
	assert.Equal(t, "hi", hindi.ResolveLanguage(ctx, "", nil, "fr-FR,de;q=0.5"))
	assert.Equal(t, "hi", hindi.DefaultLanguage())
}
