package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Alert signals whether a policy renewal is coming up.
const (
	AlertDue    = "due"
	AlertNotDue = "not_due"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDuplicatePolicy  = errors.New("policy number already exists")
)

// Customer is a single insurance-customer record. PolicyNumber is globally
// unique; a colliding create or update is rejected, never overwritten.
// Premium is a fixed 2-decimal monetary value and must never pass through a
// binary float.
type Customer struct {
	ID                 int64           `json:"id" gorm:"primaryKey"`
	Source             string          `json:"source" gorm:"size:100;not null"`
	NameInsured        string          `json:"name_insured" gorm:"size:200;not null"`
	ContactPerson      string          `json:"contact_person" gorm:"size:200;not null"`
	PhoneNumber        string          `json:"phone_number" gorm:"size:20;not null"`
	Address            string          `json:"address" gorm:"type:text;not null"`
	Email              string          `json:"email" gorm:"size:100;not null"`
	PolicyNumber       string          `json:"policy_number" gorm:"uniqueIndex;size:50;not null"`
	Carrier            string          `json:"carrier" gorm:"size:100;not null"`
	Premium            decimal.Decimal `json:"premium" gorm:"type:decimal(10,2);not null"`
	EffectiveDate      string          `json:"effective_date" gorm:"size:10;not null"`
	ExpirationDate     string          `json:"expiration_date" gorm:"size:10;not null"`
	Alert              string          `json:"alert" gorm:"size:20;not null"`
	Product            string          `json:"product" gorm:"size:100;not null"`
	Status             string          `json:"status" gorm:"size:20;not null"`
	Reference          string          `json:"reference,omitempty" gorm:"size:100"`
	AdditionalComments string          `json:"additional_comments,omitempty" gorm:"type:text"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	CreatedBy          string          `json:"created_by" gorm:"size:50;not null"`
	LastModifiedBy     string          `json:"last_modified_by" gorm:"size:50;not null"`
}
