package services

import (
	"errors"

	"github.com/castanedalj/tienda-backend/internal/auth"
	"github.com/castanedalj/tienda-backend/internal/config"
	"github.com/castanedalj/tienda-backend/internal/models"
	repo "github.com/castanedalj/tienda-backend/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong password.
// The two cases share one error so login responses cannot tell them apart.
// The user-facing wording lives in the HTTP layer.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	r repo.Users
	c config.Config
}

func NewUserService(r repo.Users, c config.Config) *UserService { return &UserService{r: r, c: c} }

// Register stores a new credential record with the default role. Duplicate
// usernames are accepted, the schema carries no uniqueness constraint.
func (s *UserService) Register(username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.r.Create(username, hash, models.RoleCliente)
	return err
}

// Login verifies the credentials and issues a session token for the stored
// role. Only a missing user or a hash mismatch counts as bad credentials;
// store failures propagate untouched.
func (s *UserService) Login(username, password string) (token, role string, err error) {
	u, err := s.r.GetByUsername(username)
	if errors.Is(err, repo.ErrNotFound) {
		return "", "", ErrInvalidCredentials
	}
	if err != nil {
		return "", "", err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = auth.SignToken(s.c.JWTSecret, u.Username, u.Role)
	if err != nil {
		return "", "", err
	}
	return token, u.Role, nil
}
