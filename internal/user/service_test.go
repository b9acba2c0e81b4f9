// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaryaRajwade/SE-RMS/internal/auth"
	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

type fakeRepository struct {
	byID       map[string]*User
	byUsername map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:       make(map[string]*User),
		byUsername: make(map[string]*User),
	}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	if _, exists := f.byUsername[u.Username]; exists {
		return core.ErrDuplicateKey
	}
	f.byID[u.ID] = u
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepository) GetByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepository) SetApproved(_ context.Context, id string) error {
	u, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	u.IsApproved = true
	return nil
}

func (f *fakeRepository) SetBanned(
	_ context.Context,
	username string,
	banned bool,
) error {
	u, ok := f.byUsername[username]
	if !ok {
		return core.ErrNotFound
	}
	u.IsBanned = banned
	return nil
}

func (f *fakeRepository) ListPending(_ context.Context) ([]User, error) {
	var pending []User
	for _, u := range f.byID {
		if !u.IsApproved {
			pending = append(pending, *u)
		}
	}
	return pending, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]User, error) {
	var all []User
	for _, u := range f.byID {
		all = append(all, *u)
	}
	return all, nil
}

func (f *fakeRepository) ResetAdmin(
	_ context.Context,
	username, passwordHash string,
) error {
	u, ok := f.byUsername[username]
	if !ok {
		return core.ErrNotFound
	}
	u.Role = RoleAdmin
	u.IsApproved = true
	u.IsBanned = false
	u.PasswordHash = passwordHash
	return nil
}

func createTestUser(t *testing.T, s *Service, username string) *auth.UserInfo {
	t.Helper()

	info, err := s.Create(context.Background(), auth.CreateUserParams{
		Name:         username,
		Username:     username,
		Email:        username + "@Example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return info
}

func TestCreateStartsPending(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	info := createTestUser(t, service, "alice")

	assert.NotEmpty(t, info.ID)
	assert.Equal(t, RoleUser, info.Role)
	assert.False(t, info.IsApproved)
	assert.False(t, info.IsBanned)
	assert.Equal(t, "alice@example.com", info.Email)
}

func TestApprove(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	info := createTestUser(t, service, "alice")

	require.NoError(t, service.Approve(context.Background(), info.ID))
	assert.True(t, repo.byID[info.ID].IsApproved)

	// Re-approving an already approved account succeeds.
	require.NoError(t, service.Approve(context.Background(), info.ID))
	assert.True(t, repo.byID[info.ID].IsApproved)
}

func TestApproveUnknownUser(t *testing.T) {
	service := NewService(newFakeRepository())

	err := service.Approve(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestBanAndUnban(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	createTestUser(t, service, "alice")

	require.NoError(t, service.Ban(context.Background(), "alice"))
	assert.True(t, repo.byUsername["alice"].IsBanned)

	require.NoError(t, service.Unban(context.Background(), "alice"))
	assert.False(t, repo.byUsername["alice"].IsBanned)
}

func TestBanUnknownUser(t *testing.T) {
	service := NewService(newFakeRepository())

	err := service.Ban(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestBanDoesNotTouchApproval(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	info := createTestUser(t, service, "alice")

	require.NoError(t, service.Approve(context.Background(), info.ID))
	require.NoError(t, service.Ban(context.Background(), "alice"))

	// The two flags are independent: banning keeps the approval.
	u := repo.byUsername["alice"]
	assert.True(t, u.IsApproved)
	assert.True(t, u.IsBanned)
}

func TestListPending(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	first := createTestUser(t, service, "alice")
	createTestUser(t, service, "bob")
	require.NoError(t, service.Approve(context.Background(), first.ID))

	pending, err := service.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "bob", pending[0].Username)
}
