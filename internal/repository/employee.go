package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"

	"github.com/staffdesk/staffdesk/internal/model"
)

// Common errors for employee repository operations.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPhoneExists      = errors.New("phone number already registered")
)

// CreateEmployee inserts a new employee. The store assigns the id and
// timestamps; any id supplied by the caller is discarded.
func (r *Repository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	start := time.Now()
	defer func() {
		r.metrics.ObserveDBQueryDuration("create_employee", time.Since(start))
	}()

	now := time.Now().UTC()
	employee.ID = ulid.Make().String()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	query := `
		INSERT INTO employees (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.CreatedAt,
		employee.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrPhoneExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// ListEmployees retrieves all employees.
// Returns an empty slice when the store holds no records.
func (r *Repository) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveDBQueryDuration("list_employees", time.Since(start))
	}()

	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM employees
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*model.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetEmployeeByPhone retrieves an employee by exact phone match.
func (r *Repository) GetEmployeeByPhone(ctx context.Context, phone string) (*model.Employee, error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveDBQueryDuration("get_employee_by_phone", time.Since(start))
	}()

	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM employees
		WHERE phone = $1
	`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by phone: %w", err)
	}

	return employee, nil
}

// scanEmployee scans a single row into an Employee model.
func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var employee model.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	return &employee, err
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
