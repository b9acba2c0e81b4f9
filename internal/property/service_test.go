// AngelaMos | 2026
// service_test.go

package property

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

type fakeRepository struct {
	properties map[string]*Property
	lastSearch SearchParams
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{properties: make(map[string]*Property)}
}

func (f *fakeRepository) Create(_ context.Context, p *Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, p *Property) error {
	if _, ok := f.properties[p.ID]; !ok {
		return core.ErrNotFound
	}
	copied := *p
	f.properties[p.ID] = &copied
	return nil
}

func (f *fakeRepository) SetApproved(_ context.Context, id string) error {
	p, ok := f.properties[id]
	if !ok {
		return core.ErrNotFound
	}
	p.IsApproved = true
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.properties[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakeRepository) ListApproved(_ context.Context) ([]Property, error) {
	var out []Property
	for _, p := range f.properties {
		if p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListPending(_ context.Context) ([]Property, error) {
	var out []Property
	for _, p := range f.properties {
		if !p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByOwner(
	_ context.Context,
	ownerID string,
) ([]Property, error) {
	var out []Property
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Search(
	_ context.Context,
	params SearchParams,
) ([]Property, error) {
	f.lastSearch = params
	return nil, nil
}

func submitTestProperty(t *testing.T, s *Service, ownerID string) *Property {
	t.Helper()

	property, err := s.Submit(context.Background(), ownerID, CreatePropertyRequest{
		Name:         "Sunrise Villa",
		Address:      "12 Lake Road",
		Type:         TypeBungalow,
		Pincode:      "10003",
		RentPerMonth: 15000,
		Deposit:      50000,
		BHK:          "3",
		Amenities:    []string{"parking", "garden"},
	})
	require.NoError(t, err)
	return property
}

func TestSubmitStartsPending(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	property := submitTestProperty(t, service, "owner-1")

	assert.NotEmpty(t, property.ID)
	assert.Equal(t, "owner-1", property.OwnerID)
	assert.False(t, property.IsApproved)
}

func TestSubmitDefaultsAmenities(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	property, err := service.Submit(context.Background(), "owner-1",
		CreatePropertyRequest{
			Name:         "Bare Flat",
			Address:      "1 Main St",
			Type:         TypeFlat,
			Pincode:      "10001",
			RentPerMonth: 8000,
			Deposit:      20000,
		})
	require.NoError(t, err)
	require.NotNil(t, property.Amenities)
	assert.Empty(t, property.Amenities)
}

func TestEditByNonOwner(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	name := "Hijacked"
	_, err := service.Edit(context.Background(), property.ID, "intruder",
		UpdatePropertyRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Equal(t, "Sunrise Villa", repo.properties[property.ID].Name)
}

func TestEditAfterApproval(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	require.NoError(t, service.Approve(context.Background(), property.ID))

	// Even the owner cannot edit once the listing is approved.
	name := "Renamed"
	_, err := service.Edit(context.Background(), property.ID, "owner-1",
		UpdatePropertyRequest{Name: &name})
	assert.ErrorIs(t, err, ErrAlreadyApproved)
}

func TestEditPartialUpdate(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	rent := 18000.0
	updated, err := service.Edit(context.Background(), property.ID, "owner-1",
		UpdatePropertyRequest{RentPerMonth: &rent})
	require.NoError(t, err)

	assert.Equal(t, 18000.0, updated.RentPerMonth)
	// Everything not named in the request stays as submitted.
	assert.Equal(t, "Sunrise Villa", updated.Name)
	assert.Equal(t, "12 Lake Road", updated.Address)
	assert.Equal(t, []string{"parking", "garden"}, []string(updated.Amenities))
}

func TestEditUnknownProperty(t *testing.T) {
	service := NewService(newFakeRepository())

	name := "Nothing"
	_, err := service.Edit(context.Background(), "no-such-id", "owner-1",
		UpdatePropertyRequest{Name: &name})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestGetVisiblePendingListing(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	// While pending, only the owner and admins can see the listing; everyone
	// else gets not-found, including anonymous callers holding the ID.
	_, err := service.GetVisible(context.Background(), property.ID, "", false)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = service.GetVisible(
		context.Background(), property.ID, "stranger", false)
	assert.ErrorIs(t, err, core.ErrNotFound)

	got, err := service.GetVisible(
		context.Background(), property.ID, "owner-1", false)
	require.NoError(t, err)
	assert.Equal(t, property.ID, got.ID)

	got, err = service.GetVisible(context.Background(), property.ID, "", true)
	require.NoError(t, err)
	assert.Equal(t, property.ID, got.ID)
}

func TestGetVisibleApprovedListing(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	require.NoError(t, service.Approve(context.Background(), property.ID))

	got, err := service.GetVisible(context.Background(), property.ID, "", false)
	require.NoError(t, err)
	assert.Equal(t, property.ID, got.ID)
}

func TestApproveIdempotent(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	require.NoError(t, service.Approve(context.Background(), property.ID))
	require.NoError(t, service.Approve(context.Background(), property.ID))
	assert.True(t, repo.properties[property.ID].IsApproved)
}

func TestRejectDeletes(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)
	property := submitTestProperty(t, service, "owner-1")

	require.NoError(t, service.Reject(context.Background(), property.ID))
	assert.NotContains(t, repo.properties, property.ID)

	err := service.Reject(context.Background(), property.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSearchPassesFilters(t *testing.T) {
	repo := newFakeRepository()
	service := NewService(repo)

	_, err := service.Search(context.Background(), SearchRequest{
		Pincode:   "10003",
		Amenities: []string{"parking"},
		MaxRent:   20000,
		BHK:       "2",
	})
	require.NoError(t, err)

	assert.Equal(t, SearchParams{
		Pincode:   "10003",
		Amenities: []string{"parking"},
		MaxRent:   20000,
		BHK:       "2",
	}, repo.lastSearch)
}
