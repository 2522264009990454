package handler

import (
	"github.com/shopspring/decimal"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

// --- Request / Response types ---

// customerRequest is the full record payload used by both create and
// update: the client always resubmits every field.
type customerRequest struct {
	Source             string          `json:"source"              validate:"required"`
	NameInsured        string          `json:"name_insured"        validate:"required"`
	ContactPerson      string          `json:"contact_person"      validate:"required"`
	PhoneNumber        string          `json:"phone_number"        validate:"required"`
	Address            string          `json:"address"             validate:"required"`
	Email              string          `json:"email"               validate:"required,email"`
	PolicyNumber       string          `json:"policy_number"       validate:"required"`
	Carrier            string          `json:"carrier"             validate:"required"`
	Premium            decimal.Decimal `json:"premium"             validate:"gte=0"`
	EffectiveDate      string          `json:"effective_date"      validate:"required,datetime=2006-01-02"`
	ExpirationDate     string          `json:"expiration_date"     validate:"required,datetime=2006-01-02"`
	Alert              string          `json:"alert"               validate:"required,oneof=due not_due"`
	Product            string          `json:"product"             validate:"required"`
	Status             string          `json:"status"              validate:"required"`
	Reference          string          `json:"reference"`
	AdditionalComments string          `json:"additional_comments"`
}

type listCustomersResponse struct {
	Success   bool               `json:"success"`
	Customers []*domain.Customer `json:"customers"`
}

type createCustomerResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CustomerID int64  `json:"customerId"`
}

type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// toCustomerInput maps the HTTP request to the service DTO.
func toCustomerInput(r customerRequest) ports.CustomerInput {
	return ports.CustomerInput{
		Source:             r.Source,
		NameInsured:        r.NameInsured,
		ContactPerson:      r.ContactPerson,
		PhoneNumber:        r.PhoneNumber,
		Address:            r.Address,
		Email:              r.Email,
		PolicyNumber:       r.PolicyNumber,
		Carrier:            r.Carrier,
		Premium:            r.Premium,
		EffectiveDate:      r.EffectiveDate,
		ExpirationDate:     r.ExpirationDate,
		Alert:              r.Alert,
		Product:            r.Product,
		Status:             r.Status,
		Reference:          r.Reference,
		AdditionalComments: r.AdditionalComments,
	}
}
