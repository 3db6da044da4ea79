// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/staffdesk/staffdesk/internal/cache"
	"github.com/staffdesk/staffdesk/internal/metrics"
	"github.com/staffdesk/staffdesk/internal/model"
	"github.com/staffdesk/staffdesk/internal/repository"
)

// Service errors.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPhoneExists      = errors.New("phone number already registered")
)

// EmployeeRepository is the store contract the service depends on.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	GetEmployeeByPhone(ctx context.Context, phone string) (*model.Employee, error)
}

// EmployeeCache caches phone lookups.
// Implementations must be safe for concurrent use.
type EmployeeCache interface {
	GetEmployeeByPhone(ctx context.Context, phone string) (*model.CachedEmployee, error)
	SetEmployee(ctx context.Context, employee *model.Employee) error
	SetNotFound(ctx context.Context, phone string) error
}

// EmployeeService handles employee business logic.
type EmployeeService struct {
	repo    EmployeeRepository
	cache   EmployeeCache
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewEmployeeService creates a new EmployeeService.
// The cache may be nil, in which case every lookup goes to the repository.
func NewEmployeeService(repo EmployeeRepository, cache EmployeeCache, recorder metrics.Recorder, logger *slog.Logger) *EmployeeService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeService{
		repo:    repo,
		cache:   cache,
		metrics: recorder,
		logger:  logger,
	}
}

// CreateEmployeeInput defines input for creating an employee.
// Field validation happens at the HTTP boundary before this is built.
type CreateEmployeeInput struct {
	Name  string
	Email string
	Phone string
}

// GetAllEmployees returns every employee in the store.
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]*model.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetEmployeeByPhoneNumber returns the employee with the given phone number.
// The returned error wraps ErrEmployeeNotFound and carries the queried phone
// number when no employee matches.
func (s *EmployeeService) GetEmployeeByPhoneNumber(ctx context.Context, phone string) (*model.Employee, error) {
	if s.cache != nil {
		cached, err := s.cache.GetEmployeeByPhone(ctx, phone)
		switch {
		case err == nil:
			s.metrics.IncLookupCacheHit()
			return cached.ToEmployee(phone), nil
		case errors.Is(err, cache.ErrNotFoundCached):
			s.metrics.IncLookupCacheHit()
			return nil, notFoundError(phone)
		case errors.Is(err, cache.ErrCacheMiss):
			s.metrics.IncLookupCacheMiss()
		default:
			// Cache failures never fail the lookup.
			s.metrics.IncLookupCacheMiss()
			s.logger.Warn("employee cache read failed", "error", err)
		}
	}

	employee, err := s.repo.GetEmployeeByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			if s.cache != nil {
				if cacheErr := s.cache.SetNotFound(ctx, phone); cacheErr != nil {
					s.logger.Warn("employee cache write failed", "error", cacheErr)
				}
			}
			return nil, notFoundError(phone)
		}
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.SetEmployee(ctx, employee); cacheErr != nil {
			s.logger.Warn("employee cache write failed", "error", cacheErr)
		}
	}

	return employee, nil
}

// CreateEmployee persists a new employee. The store assigns the id.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error) {
	employee := &model.Employee{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrPhoneExists) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.metrics.IncEmployeeCreated()

	if s.cache != nil {
		if cacheErr := s.cache.SetEmployee(ctx, employee); cacheErr != nil {
			s.logger.Warn("employee cache write failed", "error", cacheErr)
		}
	}

	return employee, nil
}

func notFoundError(phone string) error {
	return fmt.Errorf("%w with phone number: %s", ErrEmployeeNotFound, phone)
}
