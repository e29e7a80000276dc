package services

import (
	"testing"

	"github.com/localnerve/storefront-studio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupAndLogin(t *testing.T) {
	bcryptCost = bcrypt.MinCost
	db, _ := testutil.NewSQLiteDB(t)

	account, err := Signup(db, "Ada <i>L</i>", " Ada@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Ada L", account.Name)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.NotEqual(t, "s3cret", account.PasswordHash)

	_, err = Signup(db, "Other", "ADA@example.com", "pw")
	assert.ErrorIs(t, err, ErrConflict)

	got, err := Login(db, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, account.AccountID, got.AccountID)

	_, err = Login(db, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Login(db, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupValidation(t *testing.T) {
	bcryptCost = bcrypt.MinCost
	db, _ := testutil.NewSQLiteDB(t)

	_, err := Signup(db, "", "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Signup(db, "A", "not-an-email", "pw")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Signup(db, "A", "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
