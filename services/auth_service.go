package services

import (
	"errors"
	"time"

	"PaiDeFerro/config"
	"PaiDeFerro/models"
	"PaiDeFerro/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	Email    string `json:"email"`
	ParentID string `json:"parent_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// AuthService registers and authenticates parent accounts and issues the
// bearer tokens the admin routes require.
type AuthService struct {
	ParentRepo repositories.ParentRepository
}

func NewAuthService(parentRepo repositories.ParentRepository) *AuthService {
	return &AuthService{ParentRepo: parentRepo}
}

func (s *AuthService) RegisterParent(name, email, password string) (models.Parent, string, error) {
	if password == "" {
		return models.Parent{}, "", errors.New("password cannot be empty")
	}

	if _, err := s.ParentRepo.FindByEmail(email); err == nil {
		return models.Parent{}, "", ErrEmailRegistered
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return models.Parent{}, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Parent{}, "", err
	}

	parent := models.Parent{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.ParentRepo.Save(parent); err != nil {
		return models.Parent{}, "", err
	}

	token, err := s.signToken(parent)
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

func (s *AuthService) LoginParent(email, password string) (models.Parent, string, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Parent{}, "", ErrInvalidLogin
		}
		return models.Parent{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return models.Parent{}, "", ErrInvalidLogin
	}

	token, err := s.signToken(parent)
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

func (s *AuthService) signToken(parent models.Parent) (string, error) {
	claims := &Claims{
		Email:    parent.Email,
		ParentID: parent.ID,
		UserType: "parent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
