package services

import (
	"errors"
	"fmt"
	"time"

	"blogbox/app/models"
	"blogbox/app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles account creation, login, and public user lookups
type UserService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, jwtSecret []byte) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
	}
}

// CreateUserInput carries the signup payload.
type CreateUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput carries the login payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser hashes the password and stores a new user. A missing password
// fails before hashing; a missing or duplicate username surfaces from the
// record store unchanged.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	if input.Password == "" {
		return nil, &models.ValidationError{
			Field:   "password",
			Message: "password is required to derive a password hash",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Insert(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser verifies the credentials and returns a signed session token.
// Lookup and password failures are both access denials but carry distinct
// messages for caller-side UX.
func (s *UserService) LoginUser(input LoginInput) (string, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", &models.AuthenticationError{Reason: "invalid username"}
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", &models.AuthenticationError{Reason: "invalid password"}
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	return token.SignedString(s.jwtSecret)
}

// GetUserInfoByID returns the public-safe subset of a user.
// repositories.ErrNotFound passes through as the not-found signal.
func (s *UserService) GetUserInfoByID(id string) (*models.UserInfo, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// VerifyToken parses a session token and returns the acting user id.
func (s *UserService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", &models.AuthenticationError{Reason: "invalid session token"}
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", &models.AuthenticationError{Reason: "invalid session token"}
	}
	return sub, nil
}
