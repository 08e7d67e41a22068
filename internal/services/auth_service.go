package services

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/casinoapp/casino-games/internal/models"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(name, email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GenerateToken(user models.User, secretKey []byte, ttl time.Duration) (string, error)
}

// authService implements the AuthService interface
type authService struct {
	db *gorm.DB
}

// NewAuthService creates a new authentication service
func NewAuthService(db *gorm.DB) AuthService {
	return &authService{
		db: db,
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *authService) Register(name, email, password string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrValidation
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email backstops the count check above when
		// two registrations race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	return user, nil
}

// Authenticate verifies user credentials and returns the user if valid.
// Unknown email and wrong password produce the same error.
func (s *authService) Authenticate(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrValidation
	}

	var user models.User
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, result.Error
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GenerateToken creates a new JWT token binding the user's id
func (s *authService) GenerateToken(user models.User, secretKey []byte, ttl time.Duration) (string, error) {
	expirationTime := time.Now().Add(ttl)
	claims := &models.Claims{
		UserID: user.ID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
