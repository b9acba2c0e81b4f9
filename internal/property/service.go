// AngelaMos | 2026
// service.go

package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

var (
	ErrNotOwner        = errors.New("only the property owner can update")
	ErrAlreadyApproved = errors.New("cannot update approved property")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit creates a pending listing. Submission is open to any authenticated
// user, approved or not; only the listing itself waits on admission.
func (s *Service) Submit(
	ctx context.Context,
	ownerID string,
	req CreatePropertyRequest,
) (*Property, error) {
	property := &Property{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		Type:         req.Type,
		Pincode:      req.Pincode,
		OwnerID:      ownerID,
		RentPerMonth: req.RentPerMonth,
		Deposit:      req.Deposit,
		Photo:        req.Photo,
		Description:  req.Description,
		BHK:          req.BHK,
		Amenities:    req.Amenities,
		IsApproved:   false,
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// GetVisible fetches a single listing subject to the pending-visibility
// rule: an unapproved listing exists only for its owner and for admins.
// Everyone else gets not-found so the lookup does not confirm the ID.
func (s *Service) GetVisible(
	ctx context.Context,
	id, requesterID string,
	isAdmin bool,
) (*Property, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.IsApproved && !property.IsOwnedBy(requesterID) && !isAdmin {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}

	return property, nil
}

// Approve is idempotent; approval is one-way.
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.repo.SetApproved(ctx, id)
}

// Reject removes the record entirely. There is no reject path for approved
// listings beyond this hard delete, which mirrors the admin console flow.
func (s *Service) Reject(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Edit applies a partial update. Allowed only for the owner and only while
// the listing is pending: once approved, a listing is immutable to everyone
// through this path.
func (s *Service) Edit(
	ctx context.Context,
	id, requesterID string,
	req UpdatePropertyRequest,
) (*Property, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !property.IsOwnedBy(requesterID) {
		return nil, ErrNotOwner
	}

	if property.IsApproved {
		return nil, ErrAlreadyApproved
	}

	applyUpdate(property, req)

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

func applyUpdate(property *Property, req UpdatePropertyRequest) {
	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.Type != nil {
		property.Type = *req.Type
	}
	if req.Pincode != nil {
		property.Pincode = *req.Pincode
	}
	if req.RentPerMonth != nil {
		property.RentPerMonth = *req.RentPerMonth
	}
	if req.Deposit != nil {
		property.Deposit = *req.Deposit
	}
	if req.Photo != nil {
		property.Photo = *req.Photo
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.BHK != nil {
		property.BHK = *req.BHK
	}
	if req.Amenities != nil {
		property.Amenities = *req.Amenities
	}
}

func (s *Service) ListApproved(ctx context.Context) ([]Property, error) {
	return s.repo.ListApproved(ctx)
}

func (s *Service) ListPending(ctx context.Context) ([]Property, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Property, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Search(
	ctx context.Context,
	req SearchRequest,
) ([]Property, error) {
	return s.repo.Search(ctx, SearchParams{
		Pincode:   req.Pincode,
		Amenities: req.Amenities,
		MaxRent:   req.MaxRent,
		BHK:       req.BHK,
	})
}
