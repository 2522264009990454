package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns customers ordered by updated_at descending, optionally
// filtered by a case-insensitive substring match on name_insured or
// policy_number.
func (r *CustomerRepository) List(ctx context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, error) {
	q := r.db.WithContext(ctx).Model(&domain.Customer{})

	if filter.Term != "" {
		pattern := "%" + filter.Term + "%"
		switch filter.Field {
		case ports.SearchFieldName:
			q = q.Where("name_insured ILIKE ?", pattern)
		case ports.SearchFieldPolicy:
			q = q.Where("policy_number ILIKE ?", pattern)
		}
	}

	var customers []*domain.Customer
	if err := q.Order("updated_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicatePolicy
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return c.ID, nil
}

// Update replaces all mutable fields of the row. id, created_at and
// created_by are deliberately excluded from the column list.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"source":              c.Source,
			"name_insured":        c.NameInsured,
			"contact_person":      c.ContactPerson,
			"phone_number":        c.PhoneNumber,
			"address":             c.Address,
			"email":               c.Email,
			"policy_number":       c.PolicyNumber,
			"carrier":             c.Carrier,
			"premium":             c.Premium,
			"effective_date":      c.EffectiveDate,
			"expiration_date":     c.ExpirationDate,
			"alert":               c.Alert,
			"product":             c.Product,
			"status":              c.Status,
			"reference":           c.Reference,
			"additional_comments": c.AdditionalComments,
			"updated_at":          c.UpdatedAt,
			"last_modified_by":    c.LastModifiedBy,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrDuplicatePolicy
		}
		return fmt.Errorf("update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
