// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/staffdesk/staffdesk/internal/model"
)

// Validation messages keyed by the violated constraint.
const (
	MsgBlank = "must not be blank"
	MsgName  = "Name must contain between 2 to 40 characters"
	MsgEmail = "must be a well-formed email address"
	MsgPhone = "Telephone number should be 10 numbers"
)

// Name length constraints in characters.
const (
	MinNameLength = 2
	MaxNameLength = 40
)

// phonePattern matches exactly ten decimal digits.
var phonePattern = regexp.MustCompile(`^\d{10}$`)

// CreateEmployeeRequest represents the request body for creating an employee.
// Any id supplied by the client is ignored; the store assigns one.
type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate checks field constraints and returns a map of field name to
// violation message. An empty map means the request is valid.
func (r *CreateEmployeeRequest) Validate() map[string]string {
	violations := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		violations["name"] = MsgBlank
	} else if n := utf8.RuneCountInString(r.Name); n < MinNameLength || n > MaxNameLength {
		violations["name"] = MsgName
	}

	if strings.TrimSpace(r.Email) == "" {
		violations["email"] = MsgBlank
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		violations["email"] = MsgEmail
	}

	if strings.TrimSpace(r.Phone) == "" {
		violations["phone"] = MsgBlank
	} else if !phonePattern.MatchString(r.Phone) {
		violations["phone"] = MsgPhone
	}

	return violations
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToEmployeeResponse converts an Employee model to EmployeeResponse.
func ToEmployeeResponse(employee *model.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Email:     employee.Email,
		Phone:     employee.Phone,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// ToEmployeeListResponse converts a slice of Employee models to response DTOs.
func ToEmployeeListResponse(employees []*model.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = *ToEmployeeResponse(employee)
	}
	return responses
}
