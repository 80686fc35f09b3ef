package auth

import (
	"context"
	"strings"

	domuser "example.com/musicstore/internal/domain/user"
)

type PasswordService interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// Claims is what a parsed token asserts about the caller. Username is the
// principal name the checkout workflow matches order ownership against.
type Claims struct {
	UserID   int64
	Username string
	RoleCode domuser.RoleCode
	Email    string
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo  domuser.Repository
	passwords PasswordService
	tokens    TokenService
}

func NewService(userRepo domuser.Repository, passwords PasswordService, tokens TokenService) *Service {
	return &Service{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.passwords.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a customer account and logs it in.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if username == "" || email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.Create(ctx, &domuser.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		RoleCode:     domuser.RoleCodeCustomer,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}
