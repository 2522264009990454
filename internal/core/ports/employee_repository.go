package ports

import (
	"context"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// EmployeeRepository defines the interface for employee credential persistence.
type EmployeeRepository interface {
	// FindActiveByUsername returns the employee with the given username where
	// is_active is true, or domain.ErrEmployeeNotFound.
	FindActiveByUsername(ctx context.Context, username string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
}
