//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdesk/staffdesk/internal/model"
	"github.com/staffdesk/staffdesk/internal/testutil"
)

func newEmployeeTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	ctx := context.Background()
	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := testutil.ResetEmployeesSchema(ctx, pool); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, NewWithDB(pool, nil)
}

func newTestEmployee(i int) *model.Employee {
	return &model.Employee{
		Name:  fmt.Sprintf("Employee %d", i),
		Email: fmt.Sprintf("employee%d@example.com", i),
		Phone: fmt.Sprintf("555000%04d", i),
	}
}

func TestIntegrationEmployeeRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newEmployeeTestEnv(t)

	employee := newTestEmployee(1)
	if err := repo.CreateEmployee(ctx, employee); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	if employee.ID == "" {
		t.Fatal("expected a generated id")
	}

	retrieved, err := repo.GetEmployeeByPhone(ctx, employee.Phone)
	if err != nil {
		t.Fatalf("GetEmployeeByPhone failed: %v", err)
	}

	if retrieved.Name != employee.Name {
		t.Errorf("Name mismatch: got %q, want %q", retrieved.Name, employee.Name)
	}
	if retrieved.Email != employee.Email {
		t.Errorf("Email mismatch: got %q, want %q", retrieved.Email, employee.Email)
	}
	if retrieved.Phone != employee.Phone {
		t.Errorf("Phone mismatch: got %q, want %q", retrieved.Phone, employee.Phone)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationEmployeeRepository_DuplicatePhone(t *testing.T) {
	ctx, repo := newEmployeeTestEnv(t)

	employee := newTestEmployee(2)
	if err := repo.CreateEmployee(ctx, employee); err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}

	duplicate := newTestEmployee(3)
	duplicate.Phone = employee.Phone
	if err := repo.CreateEmployee(ctx, duplicate); !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}
}

func TestIntegrationEmployeeRepository_GetMissing(t *testing.T) {
	ctx, repo := newEmployeeTestEnv(t)

	if _, err := repo.GetEmployeeByPhone(ctx, "9999999999"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestIntegrationEmployeeRepository_List(t *testing.T) {
	ctx, repo := newEmployeeTestEnv(t)

	const n = 5
	inserted := make(map[string]bool, n)
	for i := range n {
		employee := newTestEmployee(10 + i)
		if err := repo.CreateEmployee(ctx, employee); err != nil {
			t.Fatalf("CreateEmployee failed: %v", err)
		}
		inserted[employee.Phone] = true
	}

	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}

	if len(employees) != n {
		t.Fatalf("expected %d employees, got %d", n, len(employees))
	}
	for _, employee := range employees {
		if !inserted[employee.Phone] {
			t.Errorf("unexpected employee in list: %q", employee.Phone)
		}
	}
}
