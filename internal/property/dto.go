// AngelaMos | 2026
// dto.go

package property

import (
	"time"
)

type CreatePropertyRequest struct {
	Name         string   `json:"name"         validate:"required,min=1,max=200"`
	Address      string   `json:"address"      validate:"required,min=1,max=500"`
	Type         string   `json:"type"         validate:"required,oneof=flat bungalow 'pin code'"`
	Pincode      string   `json:"pincode"      validate:"omitempty,max=10"`
	RentPerMonth float64  `json:"rentPerMonth" validate:"required,gt=0"`
	Deposit      float64  `json:"deposit"      validate:"required,gt=0"`
	Photo        string   `json:"photo"        validate:"omitempty"`
	Description  string   `json:"description"  validate:"omitempty,max=5000"`
	BHK          string   `json:"bhk"          validate:"omitempty,max=10"`
	Amenities    []string `json:"amenities"    validate:"omitempty,dive,min=1,max=50"`
}

// UpdatePropertyRequest carries partial-update semantics: only fields present
// in the request body overwrite stored values.
type UpdatePropertyRequest struct {
	Name         *string   `json:"name,omitempty"         validate:"omitempty,min=1,max=200"`
	Address      *string   `json:"address,omitempty"      validate:"omitempty,min=1,max=500"`
	Type         *string   `json:"type,omitempty"         validate:"omitempty,oneof=flat bungalow 'pin code'"`
	Pincode      *string   `json:"pincode,omitempty"      validate:"omitempty,max=10"`
	RentPerMonth *float64  `json:"rentPerMonth,omitempty" validate:"omitempty,gt=0"`
	Deposit      *float64  `json:"deposit,omitempty"      validate:"omitempty,gt=0"`
	Photo        *string   `json:"photo,omitempty"        validate:"omitempty"`
	Description  *string   `json:"description,omitempty"  validate:"omitempty,max=5000"`
	BHK          *string   `json:"bhk,omitempty"          validate:"omitempty,max=10"`
	Amenities    *[]string `json:"amenities,omitempty"    validate:"omitempty,dive,min=1,max=50"`
}

type SearchRequest struct {
	Pincode   string   `json:"pincode"`
	Amenities []string `json:"amenities"`
	MaxRent   float64  `json:"maxRent"`
	BHK       string   `json:"bhk"`
}

type CreatePropertyResponse struct {
	Message    string `json:"message"`
	PropertyID string `json:"propertyId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PropertyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Type         string    `json:"type"`
	Pincode      string    `json:"pincode,omitempty"`
	OwnerID      string    `json:"ownerId"`
	RenterID     *string   `json:"renterId,omitempty"`
	RentPerMonth float64   `json:"rentPerMonth"`
	Deposit      float64   `json:"deposit"`
	Photo        string    `json:"photo,omitempty"`
	Description  string    `json:"description,omitempty"`
	BHK          string    `json:"bhk,omitempty"`
	Amenities    []string  `json:"amenities"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToPropertyResponse(p *Property) PropertyResponse {
	amenities := []string(p.Amenities)
	if amenities == nil {
		amenities = []string{}
	}

	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Type:         p.Type,
		Pincode:      p.Pincode,
		OwnerID:      p.OwnerID,
		RenterID:     p.RenterID,
		RentPerMonth: p.RentPerMonth,
		Deposit:      p.Deposit,
		Photo:        p.Photo,
		Description:  p.Description,
		BHK:          p.BHK,
		Amenities:    amenities,
		IsApproved:   p.IsApproved,
		CreatedAt:    p.CreatedAt,
	}
}

func ToPropertyResponseList(properties []Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		responses = append(responses, ToPropertyResponse(&p))
	}
	return responses
}
