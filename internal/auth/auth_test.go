package auth

import (
	"context"
	"testing"

	"storefront/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() *ServiceImpl {
	return NewService(store.NewMemoryStore())
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{
		Email:     "amira@example.com",
		Password:  "correct horse battery",
		FirstName: "Amira",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterRequest{Email: "amira@example.com", Password: "password-one", FirstName: "Amira"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Email: "amira@example.com", Password: "password-two"})
	assert.ErrorIs(t, err, ErrUserExists)

	// The original account still authenticates with its own password.
	got, err := svc.Login(ctx, "amira@example.com", "password-one")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Amira", got.FirstName)
}

func TestLogin_Success(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Email: "noah@example.com", Password: "open sesame 123"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, "noah@example.com", "open sesame 123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLogin_NoEnumerationSignal(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "noah@example.com", Password: "open sesame 123"})
	require.NoError(t, err)

	// Wrong password and unknown email yield the identical error.
	_, wrongPassword := svc.Login(ctx, "noah@example.com", "wrong password")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "open sesame 123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestCurrentUser(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Email: "noah@example.com", Password: "open sesame 123"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "noah@example.com", user.Email)

	_, err = svc.CurrentUser(ctx, 999)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
