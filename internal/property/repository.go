// AngelaMos | 2026
// repository.go

package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

type SearchParams struct {
	Pincode   string
	Amenities []string
	MaxRent   float64
	BHK       string
}

type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id string) (*Property, error)
	Update(ctx context.Context, property *Property) error
	SetApproved(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ListApproved(ctx context.Context) ([]Property, error)
	ListPending(ctx context.Context) ([]Property, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Property, error)
	Search(ctx context.Context, params SearchParams) ([]Property, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const propertyColumns = `
	id, name, address, type, pincode, owner_id, renter_id,
	rent_per_month, deposit, photo, description, bhk, amenities,
	is_approved, created_at, updated_at`

func (r *repository) Create(ctx context.Context, property *Property) error {
	query := `
		INSERT INTO properties (
			id, name, address, type, pincode, owner_id,
			rent_per_month, deposit, photo, description, bhk, amenities,
			is_approved
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, property, query,
		property.ID,
		property.Name,
		property.Address,
		property.Type,
		property.Pincode,
		property.OwnerID,
		property.RentPerMonth,
		property.Deposit,
		property.Photo,
		property.Description,
		property.BHK,
		property.Amenities,
		property.IsApproved,
	)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Property, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM properties WHERE id = $1`,
		propertyColumns,
	)

	var property Property
	err := r.db.GetContext(ctx, &property, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get property: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}

	return &property, nil
}

func (r *repository) Update(ctx context.Context, property *Property) error {
	query := `
		UPDATE properties
		SET name = $2, address = $3, type = $4, pincode = $5,
		    rent_per_month = $6, deposit = $7, photo = $8,
		    description = $9, bhk = $10, amenities = $11,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &property.UpdatedAt, query,
		property.ID,
		property.Name,
		property.Address,
		property.Type,
		property.Pincode,
		property.RentPerMonth,
		property.Deposit,
		property.Photo,
		property.Description,
		property.BHK,
		property.Amenities,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update property: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	return nil
}

// SetApproved is idempotent like user approval; approval is one-way, there
// is no reverse transition anywhere in the schema.
func (r *repository) SetApproved(ctx context.Context, id string) error {
	query := `
		UPDATE properties
		SET is_approved = true, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("approve property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("approve property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("approve property: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete property: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListApproved(ctx context.Context) ([]Property, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM properties
		WHERE is_approved = true
		ORDER BY created_at DESC`, propertyColumns)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("list approved properties: %w", err)
	}

	return properties, nil
}

func (r *repository) ListPending(ctx context.Context) ([]Property, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM properties
		WHERE is_approved = false
		ORDER BY created_at DESC`, propertyColumns)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("list pending properties: %w", err)
	}

	return properties, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Property, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC`, propertyColumns)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query, ownerID); err != nil {
		return nil, fmt.Errorf("list properties by owner: %w", err)
	}

	return properties, nil
}

func (r *repository) Search(
	ctx context.Context,
	params SearchParams,
) ([]Property, error) {
	conditions, args := searchConditions(params)

	query := fmt.Sprintf(`
		SELECT %s FROM properties
		WHERE %s
		ORDER BY created_at DESC`,
		propertyColumns,
		strings.Join(conditions, " AND "),
	)

	var properties []Property
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}

	return properties, nil
}

// searchConditions builds the WHERE clause for a search. Filters combine
// with AND over the implicit is_approved base predicate; a filter with a
// zero/unparseable input is disabled rather than failing the query.
func searchConditions(params SearchParams) ([]string, []any) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, "is_approved = true")

	if lo, hi, ok := pincodeBand(params.Pincode); ok {
		conditions = append(conditions, fmt.Sprintf(
			"pincode BETWEEN $%d AND $%d", argIdx, argIdx+1))
		args = append(args, lo, hi)
		argIdx += 2
	}

	if len(params.Amenities) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"amenities @> $%d", argIdx))
		args = append(args, pq.Array(params.Amenities))
		argIdx++
	}

	if params.MaxRent > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"rent_per_month <= $%d", argIdx))
		args = append(args, params.MaxRent)
		argIdx++
	}

	if params.BHK != "" {
		conditions = append(conditions, fmt.Sprintf("bhk = $%d", argIdx))
		args = append(args, params.BHK)
	}

	return conditions, args
}

// pincodeBand computes the inclusive proximity band [p-2, p+2], rendered
// back to strings so the comparison uses the same representation the column
// was written with. Non-numeric or empty input disables the filter.
func pincodeBand(pincode string) (string, string, bool) {
	trimmed := strings.TrimSpace(pincode)
	if trimmed == "" {
		return "", "", false
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return "", "", false
	}

	return strconv.Itoa(n - 2), strconv.Itoa(n + 2), true
}
