package ports

import (
	"context"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// Search fields accepted by ListCustomersFilter.
const (
	SearchFieldName   = "name"
	SearchFieldPolicy = "policy"
)

// ListCustomersFilter carries the optional substring search for listing
// customers. An empty Term means no filter. Field selects the column:
// "name" matches name_insured, "policy" matches policy_number.
type ListCustomersFilter struct {
	Field string
	Term  string
}

// CustomerRepository defines persistence operations for customer records.
// Implementations map driver-level failures (unique violations, missing
// rows) to the domain sentinels; raw driver errors never cross this
// boundary upward unmapped.
type CustomerRepository interface {
	// List returns customers matching filter, ordered by updated_at
	// descending. The ordering is part of the contract: most recently
	// touched records surface first.
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.Customer, error)
	// Create inserts a new record and returns its generated id.
	// A policy_number collision yields domain.ErrDuplicatePolicy.
	Create(ctx context.Context, c *domain.Customer) (int64, error)
	// Update replaces all mutable fields of the record with the given id.
	// Missing id yields domain.ErrCustomerNotFound; a policy_number
	// collision with a different record yields domain.ErrDuplicatePolicy.
	Update(ctx context.Context, c *domain.Customer) error
	// Delete permanently removes the record. Missing id yields
	// domain.ErrCustomerNotFound.
	Delete(ctx context.Context, id int64) error
}
