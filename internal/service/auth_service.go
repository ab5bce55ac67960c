package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/auth"
	"jobportal/internal/model"
)

const bcryptCost = 10

// ErrInvalidCredentials is returned for every failed login. The message
// never distinguishes an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *model.PublicUser, err error)
}

type authService struct {
	users      []model.User
	jwtService *auth.JWTService
}

// credential is one hard-coded entry of the fixed user table.
type credential struct {
	id       int64
	username string
	password string
	role     model.Role
}

// The user table is fixed, in-memory configuration. There is no
// create/update/delete lifecycle for users.
var fixedCredentials = []credential{
	{id: 1, username: "admin@portaljob.com", password: "123", role: model.RoleAdmin},
	{id: 2, username: "linn@gmail.com", password: "123", role: model.RoleUser},
}

// NewAuthService builds the fixed user table, hashing each credential
// once at startup so plaintext passwords never sit in the table itself.
func NewAuthService(jwtService *auth.JWTService) AuthService {
	users := make([]model.User, 0, len(fixedCredentials))
	for _, c := range fixedCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcryptCost)
		if err != nil {
			log.Fatalf("hash credential for %s: %v", c.username, err)
		}
		users = append(users, model.User{
			ID:           c.id,
			Username:     c.username,
			PasswordHash: string(hash),
			Role:         c.role,
		})
	}
	return &authService{users: users, jwtService: jwtService}
}

// Login matches the username/password pair against the fixed table and
// issues a signed, time-limited token on success.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.PublicUser, error) {
	var user *model.User
	for i := range s.users {
		if s.users[i].Username == username {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, &model.PublicUser{Username: user.Username, Role: user.Role}, nil
}
