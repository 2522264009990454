package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

type stubCustomerRepo struct {
	nextID     int64
	records    map[int64]*domain.Customer
	lastFilter ports.ListCustomersFilter
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{nextID: 1, records: make(map[int64]*domain.Customer)}
}

func (r *stubCustomerRepo) List(_ context.Context, filter ports.ListCustomersFilter) ([]*domain.Customer, error) {
	r.lastFilter = filter
	out := make([]*domain.Customer, 0, len(r.records))
	for _, c := range r.records {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (int64, error) {
	for _, existing := range r.records {
		if existing.PolicyNumber == c.PolicyNumber {
			return 0, domain.ErrDuplicatePolicy
		}
	}
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.records[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	existing, ok := r.records[c.ID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	for id, other := range r.records {
		if id != c.ID && other.PolicyNumber == c.PolicyNumber {
			return domain.ErrDuplicatePolicy
		}
	}
	// Mutable fields replaced wholesale; created_at/created_by untouched.
	updated := *c
	updated.CreatedAt = existing.CreatedAt
	updated.CreatedBy = existing.CreatedBy
	r.records[c.ID] = &updated
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.records, id)
	return nil
}

func sampleInput(policy string) ports.CustomerInput {
	return ports.CustomerInput{
		Source:         "referral",
		NameInsured:    "Smith Logistics LLC",
		ContactPerson:  "Jane Smith",
		PhoneNumber:    "555-0100",
		Address:        "12 Harbor Way",
		Email:          "jane@smithlogistics.example",
		PolicyNumber:   policy,
		Carrier:        "Atlantic Mutual",
		Premium:        decimal.RequireFromString("1250.50"),
		EffectiveDate:  "2026-01-01",
		ExpirationDate: "2027-01-01",
		Alert:          domain.AlertNotDue,
		Product:        "Commercial Auto",
		Status:         "active",
	}
}

func newCustomerService(repo *stubCustomerRepo, now time.Time) *CustomerService {
	svc := NewCustomerService(repo, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCustomerService_Create_StampsAttribution(t *testing.T) {
	repo := newStubCustomerRepo()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newCustomerService(repo, now)

	id, err := svc.Create(context.Background(), sampleInput("POL-1001"), "admin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	c := repo.records[id]
	if c.CreatedBy != "admin" || c.LastModifiedBy != "admin" {
		t.Fatalf("expected both attributions to be admin, got %q/%q", c.CreatedBy, c.LastModifiedBy)
	}
	if !c.CreatedAt.Equal(now) || !c.UpdatedAt.Equal(now) {
		t.Fatalf("expected created_at == updated_at == now, got %v / %v", c.CreatedAt, c.UpdatedAt)
	}
	if !c.Premium.Equal(decimal.RequireFromString("1250.50")) {
		t.Fatalf("premium drifted: %s", c.Premium)
	}
}

func TestCustomerService_Create_DuplicatePolicy(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, time.Now())

	if _, err := svc.Create(context.Background(), sampleInput("POL-1001"), "admin"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), sampleInput("POL-1001"), "admin"); err != domain.ErrDuplicatePolicy {
		t.Fatalf("expected ErrDuplicatePolicy, got %v", err)
	}
	if len(repo.records) != 1 {
		t.Fatalf("failed create must not leave a partial row, have %d records", len(repo.records))
	}
}

func TestCustomerService_Update_StampsModification(t *testing.T) {
	repo := newStubCustomerRepo()
	created := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	svc := newCustomerService(repo, created)

	id, err := svc.Create(context.Background(), sampleInput("POL-1001"), "admin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	later := created.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	in := sampleInput("POL-1001")
	in.Status = "renewed"
	if err := svc.Update(context.Background(), id, in, "jsmith"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	c := repo.records[id]
	if c.ID != id || !c.CreatedAt.Equal(created) || c.CreatedBy != "admin" {
		t.Fatalf("id/created_at/created_by must be immutable, got %+v", c)
	}
	if c.LastModifiedBy != "jsmith" || !c.UpdatedAt.Equal(later) {
		t.Fatalf("expected modification stamp by jsmith at %v, got %q at %v", later, c.LastModifiedBy, c.UpdatedAt)
	}
	if c.Status != "renewed" {
		t.Fatalf("mutable field not replaced: %q", c.Status)
	}
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	svc := newCustomerService(newStubCustomerRepo(), time.Now())

	if err := svc.Update(context.Background(), 42, sampleInput("POL-1"), "admin"); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerService_Update_DuplicatePolicy(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, time.Now())

	id1, _ := svc.Create(context.Background(), sampleInput("POL-1"), "admin")
	_, _ = svc.Create(context.Background(), sampleInput("POL-2"), "admin")

	in := sampleInput("POL-2")
	if err := svc.Update(context.Background(), id1, in, "admin"); err != domain.ErrDuplicatePolicy {
		t.Fatalf("expected ErrDuplicatePolicy, got %v", err)
	}
}

func TestCustomerService_Update_SamePolicyIsNotACollision(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, time.Now())

	id, _ := svc.Create(context.Background(), sampleInput("POL-1"), "admin")
	if err := svc.Update(context.Background(), id, sampleInput("POL-1"), "admin"); err != nil {
		t.Fatalf("resubmitting the record's own policy number must succeed, got %v", err)
	}
}

func TestCustomerService_Delete(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, time.Now())

	id, _ := svc.Create(context.Background(), sampleInput("POL-1"), "admin")
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), id); err != domain.ErrCustomerNotFound {
		t.Fatalf("second delete should report ErrCustomerNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 999); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound for unknown id, got %v", err)
	}
}

func TestCustomerService_List_FilterNormalisation(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := newCustomerService(repo, time.Now())

	if _, err := svc.List(context.Background(), ports.ListCustomersFilter{Field: "carrier", Term: "Atlantic"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter != (ports.ListCustomersFilter{}) {
		t.Fatalf("unknown field should degrade to unfiltered listing, got %+v", repo.lastFilter)
	}

	want := ports.ListCustomersFilter{Field: ports.SearchFieldName, Term: "Smith"}
	if _, err := svc.List(context.Background(), want); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter != want {
		t.Fatalf("name filter should pass through, got %+v", repo.lastFilter)
	}
}
