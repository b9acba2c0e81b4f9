// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/AaryaRajwade/SE-RMS/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new account in the pending state. Admission is a
// separate admin action; nothing here flips is_approved.
func (s *Service) Create(
	ctx context.Context,
	params auth.CreateUserParams,
) (*auth.UserInfo, error) {
	user := &User{
		ID:             uuid.New().String(),
		Name:           params.Name,
		Username:       params.Username,
		Email:          strings.ToLower(params.Email),
		PasswordHash:   params.PasswordHash,
		DefaultPincode: params.DefaultPincode,
		Role:           RoleUser,
		IsApproved:     false,
		IsBanned:       false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByUsername(
	ctx context.Context,
	username string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Approve flips a pending account to approved. Re-approving is a no-op
// success.
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.repo.SetApproved(ctx, id)
}

func (s *Service) Ban(ctx context.Context, username string) error {
	return s.repo.SetBanned(ctx, username, true)
}

func (s *Service) Unban(ctx context.Context, username string) error {
	return s.repo.SetBanned(ctx, username, false)
}

func (s *Service) ListPending(ctx context.Context) ([]User, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsApproved:   u.IsApproved,
		IsBanned:     u.IsBanned,
	}
}

var _ auth.UserProvider = (*Service)(nil)
