// AngelaMos | 2026
// entity.go

package property

import (
	"time"

	"github.com/lib/pq"
)

// Property lifecycle: created pending by its owner, editable by the owner
// only while pending, approved (one-way) or rejected-and-deleted by an admin.
type Property struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Address      string         `db:"address"`
	Type         string         `db:"type"`
	Pincode      string         `db:"pincode"`
	OwnerID      string         `db:"owner_id"`
	RenterID     *string        `db:"renter_id"`
	RentPerMonth float64        `db:"rent_per_month"`
	Deposit      float64        `db:"deposit"`
	Photo        string         `db:"photo"`
	Description  string         `db:"description"`
	BHK          string         `db:"bhk"`
	Amenities    pq.StringArray `db:"amenities"`
	IsApproved   bool           `db:"is_approved"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (p *Property) IsOwnedBy(userID string) bool {
	return p.OwnerID == userID
}

const (
	TypeFlat     = "flat"
	TypeBungalow = "bungalow"
	TypePinCode  = "pin code"
)
