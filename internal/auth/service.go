// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotApproved = errors.New("account not approved")
	ErrAccountBanned      = errors.New("account banned")
	ErrUserExists         = errors.New("username or email already exists")
)

type UserInfo struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsApproved   bool
	IsBanned     bool
}

type CreateUserParams struct {
	Name           string
	Username       string
	Email          string
	PasswordHash   string
	DefaultPincode string
}

type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*UserInfo, error)
	Create(ctx context.Context, params CreateUserParams) (*UserInfo, error)
}

type Service struct {
	jwt          *TokenManager
	userProvider UserProvider
}

func NewService(jwt *TokenManager, userProvider UserProvider) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
	}
}

// Register creates a new account awaiting admin admission. The plaintext
// secret is hashed here and never stored.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*UserInfo, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(ctx, CreateUserParams{
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		DefaultPincode: req.DefaultPincode,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login checks existence, then approval, then ban, then the secret, strictly
// in that order. The ordering is load-bearing for the error surface; do not
// reorder without revisiting what each branch reveals to a caller.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	user, err := s.userProvider.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("login: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !user.IsApproved {
		return nil, ErrAccountNotApproved
	}

	if user.IsBanned {
		return nil, ErrAccountBanned
	}

	valid, err := core.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.CreateToken(TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: LoginUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}
