package services

import (
	"testing"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("lea", "lea@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)

	user, err := svc.GetUser(userID)
	require.NoError(t, err)
	assert.Equal(t, "lea@example.com", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	loginToken, err := svc.Login("lea@example.com", "password123")
	require.NoError(t, err)
	loginID, err := svc.ValidateToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, userID, loginID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("lea", "dup@example.com", "password123")
	require.NoError(t, err)

	// The duplicate is caught by the unique index, not a pre-check, so
	// concurrent registrations cannot race past it.
	_, err = svc.Register("leo", "dup@example.com", "otherpassword")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	var count int64
	db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("lea", "creds@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("creds@example.com", "wrongpassword")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = svc.Login("nobody@example.com", "password123")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestValidateTokenRejectsForgery(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
