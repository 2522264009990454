package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
)

// CustomerInput carries all mutable customer fields for create and update.
// The client always submits the full record; omitted fields are replaced,
// not preserved.
type CustomerInput struct {
	Source             string
	NameInsured        string
	ContactPerson      string
	PhoneNumber        string
	Address            string
	Email              string
	PolicyNumber       string
	Carrier            string
	Premium            decimal.Decimal
	EffectiveDate      string
	ExpirationDate     string
	Alert              string
	Product            string
	Status             string
	Reference          string
	AdditionalComments string
}

// CustomerService implements the customer CRUD contract. The actor is the
// username of the logged-in employee performing the call; it drives the
// created_by / last_modified_by attribution.
type CustomerService interface {
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.Customer, error)
	Create(ctx context.Context, in CustomerInput, actor string) (int64, error)
	Update(ctx context.Context, id int64, in CustomerInput, actor string) error
	Delete(ctx context.Context, id int64) error
}
