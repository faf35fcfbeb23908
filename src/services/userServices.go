package services

import (
	"context"
	"errors"

	"github.com/especializacion-sena/sitios-backend/src/models"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when no user matches both username and password
var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// credentialsQuery matches username and password byte for byte. MySQL's
// default collations ignore case and trailing spaces, so it compares binary.
func credentialsQuery(dialect string) string {
	if dialect == "mysql" {
		return "CAST(username AS BINARY) = CAST(? AS BINARY) AND CAST(password AS BINARY) = CAST(? AS BINARY)"
	}
	return "username = ? AND password = ?"
}

// AuthenticateUser looks for a row equal to both username and password.
// Passwords are stored and compared in clear text.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.WithContext(ctx).
		Where(credentialsQuery(s.db.Dialector.Name()), username, password).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, result.Error
	}
	return &user, nil
}

// EnsureUser creates the user unless one with the same username exists.
// It reports whether a row was created.
func (s *UserService) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	var existing models.UserModel
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	user := models.UserModel{Username: username, Password: password}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
