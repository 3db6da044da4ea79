// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// Employee represents a single staff record.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachedEmployee represents employee data stored in Redis cache.
// Uses string types for Redis hash compatibility. The phone number is
// part of the cache key and therefore not stored in the hash.
type CachedEmployee struct {
	ID        string `redis:"id"`
	Name      string `redis:"name"`
	Email     string `redis:"email"`
	CreatedAt string `redis:"created_at"` // Unix timestamp
	UpdatedAt string `redis:"updated_at"` // Unix timestamp
}

// ToEmployee converts CachedEmployee to the Employee domain model.
func (c *CachedEmployee) ToEmployee(phone string) *Employee {
	employee := &Employee{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: phone,
	}

	if c.CreatedAt != "" {
		if ts, err := strconv.ParseInt(c.CreatedAt, 10, 64); err == nil {
			employee.CreatedAt = time.Unix(ts, 0).UTC()
		}
	}

	if c.UpdatedAt != "" {
		if ts, err := strconv.ParseInt(c.UpdatedAt, 10, 64); err == nil {
			employee.UpdatedAt = time.Unix(ts, 0).UTC()
		}
	}

	return employee
}

// ToCachedEmployee converts an Employee to its cache representation.
func (e *Employee) ToCachedEmployee() *CachedEmployee {
	return &CachedEmployee{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		CreatedAt: strconv.FormatInt(e.CreatedAt.Unix(), 10),
		UpdatedAt: strconv.FormatInt(e.UpdatedAt.Unix(), 10),
	}
}
