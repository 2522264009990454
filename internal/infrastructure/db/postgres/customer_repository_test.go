package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brokerdesk/employee-portal/internal/core/domain"
	"github.com/brokerdesk/employee-portal/internal/core/ports"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func expectMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name_insured", "policy_number", "premium", "updated_at"})
}

// Listing always sorts newest-change-first in SQL; rows come back in the
// order the database returns them.
func TestCustomerRepository_List_OrdersByUpdatedAtDesc(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	newer := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-48 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" ORDER BY updated_at DESC`)).
		WillReturnRows(customerRows().
			AddRow(2, "Harbor Freight Co", "POL-1002", "980.00", newer).
			AddRow(1, "Smith Logistics LLC", "POL-1001", "1250.50", older))

	got, err := repo.List(context.Background(), ports.ListCustomersFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("expected newest-first order, got ids %d, %d", got[0].ID, got[1].ID)
	}
	expectMet(t, mock)
}

// The name filter matches substrings through ILIKE, so a lowercase term
// finds a mixed-case insured name.
func TestCustomerRepository_List_NameFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE name_insured ILIKE $1 ORDER BY updated_at DESC`)).
		WithArgs("%smith%").
		WillReturnRows(customerRows().
			AddRow(1, "Smith Logistics LLC", "POL-1001", "1250.50", time.Now()))

	got, err := repo.List(context.Background(), ports.ListCustomersFilter{
		Field: ports.SearchFieldName,
		Term:  "smith",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].NameInsured != "Smith Logistics LLC" {
		t.Fatalf("unexpected result: %+v", got)
	}
	expectMet(t, mock)
}

func TestCustomerRepository_List_PolicyFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" WHERE policy_number ILIKE $1 ORDER BY updated_at DESC`)).
		WithArgs("%pol-10%").
		WillReturnRows(customerRows())

	got, err := repo.List(context.Background(), ports.ListCustomersFilter{
		Field: ports.SearchFieldPolicy,
		Term:  "pol-10",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %+v", got)
	}
	expectMet(t, mock)
}

func TestCustomerRepository_Create_DuplicatePolicy(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_customers_policy_number"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &domain.Customer{PolicyNumber: "POL-1001"})
	if !errors.Is(err, domain.ErrDuplicatePolicy) {
		t.Fatalf("expected ErrDuplicatePolicy, got %v", err)
	}
	expectMet(t, mock)
}

func TestCustomerRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "customers" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domain.Customer{ID: 99, PolicyNumber: "POL-9999"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	expectMet(t, mock)
}

func TestCustomerRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "customers" WHERE "customers"."id" = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	expectMet(t, mock)
}
