package auth

import (
	"errors"
	"strings"

	"github.com/centavo/backend/internal/models"
	"gorm.io/gorm"
)

// ErrAuthFailed is returned when authentication fails.
//
// An unknown email and a wrong password return the same error so that
// the API cannot be used to enumerate users.
var ErrAuthFailed = errors.New("email or password is incorrect")

// Authenticate looks up the user by email and verifies the password.
func Authenticate(db *gorm.DB, email, password string) (models.User, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		return models.User{}, ErrAuthFailed
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return models.User{}, ErrAuthFailed
	}

	return user, nil
}
