package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

// CustomerService implements the customer CRUD contract: attribution
// stamping, full-replace updates, and the updated_at DESC listing order.
type CustomerService struct {
	repo   ports.CustomerRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, now: func() time.Time { return time.Now().UTC() }, logger: logger}
}

func (s *CustomerService) List(ctx context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, error) {
	if filter.Field != ports.SearchFieldName && filter.Field != ports.SearchFieldPolicy {
		// An unrecognised field degrades to an unfiltered listing, matching
		// the behaviour of the search form.
		filter = ports.ListCustomersFilter{}
	}
	return s.repo.List(ctx, filter)
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput, actor string) (int64, error) {
	now := s.now()
	c := customerFromInput(in)
	c.CreatedAt = now
	c.UpdatedAt = now
	c.CreatedBy = actor
	c.LastModifiedBy = actor

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("customer_id", id).Str("policy_number", c.PolicyNumber).Str("actor", actor).Msg("customer created")
	return id, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.CustomerInput, actor string) error {
	c := customerFromInput(in)
	c.ID = id
	c.UpdatedAt = s.now()
	c.LastModifiedBy = actor

	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}

	s.logger.Info().Int64("customer_id", id).Str("actor", actor).Msg("customer updated")
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}

// customerFromInput maps the full submitted payload onto a record. Updates
// are full-replace: every mutable field comes from the input.
func customerFromInput(in ports.CustomerInput) *domain.Customer {
	return &domain.Customer{
		Source:             in.Source,
		NameInsured:        in.NameInsured,
		ContactPerson:      in.ContactPerson,
		PhoneNumber:        in.PhoneNumber,
		Address:            in.Address,
		Email:              in.Email,
		PolicyNumber:       in.PolicyNumber,
		Carrier:            in.Carrier,
		Premium:            in.Premium,
		EffectiveDate:      in.EffectiveDate,
		ExpirationDate:     in.ExpirationDate,
		Alert:              in.Alert,
		Product:            in.Product,
		Status:             in.Status,
		Reference:          in.Reference,
		AdditionalComments: in.AdditionalComments,
	}
}
