package dto

import (
	"strings"
	"testing"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "1234567890",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateEmployeeRequest)
		field   string
		message string
	}{
		{
			name:   "valid",
			mutate: func(r *CreateEmployeeRequest) {},
		},
		{
			name:    "blank_name",
			mutate:  func(r *CreateEmployeeRequest) { r.Name = "   " },
			field:   "name",
			message: MsgBlank,
		},
		{
			name:    "name_too_short",
			mutate:  func(r *CreateEmployeeRequest) { r.Name = "J" },
			field:   "name",
			message: MsgName,
		},
		{
			name:    "name_too_long",
			mutate:  func(r *CreateEmployeeRequest) { r.Name = strings.Repeat("a", 41) },
			field:   "name",
			message: MsgName,
		},
		{
			name:   "name_at_min_length",
			mutate: func(r *CreateEmployeeRequest) { r.Name = "Jo" },
		},
		{
			name:   "name_at_max_length",
			mutate: func(r *CreateEmployeeRequest) { r.Name = strings.Repeat("a", 40) },
		},
		{
			name:    "blank_email",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "" },
			field:   "email",
			message: MsgBlank,
		},
		{
			name:    "malformed_email",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: MsgEmail,
		},
		{
			name:    "email_missing_local_part",
			mutate:  func(r *CreateEmployeeRequest) { r.Email = "@example.com" },
			field:   "email",
			message: MsgEmail,
		},
		{
			name:    "blank_phone",
			mutate:  func(r *CreateEmployeeRequest) { r.Phone = "" },
			field:   "phone",
			message: MsgBlank,
		},
		{
			name:    "phone_too_short",
			mutate:  func(r *CreateEmployeeRequest) { r.Phone = "123456789" },
			field:   "phone",
			message: MsgPhone,
		},
		{
			name:    "phone_too_long",
			mutate:  func(r *CreateEmployeeRequest) { r.Phone = "12345678901" },
			field:   "phone",
			message: MsgPhone,
		},
		{
			name:    "phone_with_letters",
			mutate:  func(r *CreateEmployeeRequest) { r.Phone = "12345abcde" },
			field:   "phone",
			message: MsgPhone,
		},
		{
			name:    "phone_with_separators",
			mutate:  func(r *CreateEmployeeRequest) { r.Phone = "123-456-78" },
			field:   "phone",
			message: MsgPhone,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := valid
			test.mutate(&req)

			violations := req.Validate()

			if test.field == "" {
				if len(violations) != 0 {
					t.Fatalf("expected no violations, got %v", violations)
				}
				return
			}

			if len(violations) != 1 {
				t.Fatalf("expected 1 violation, got %v", violations)
			}
			if got := violations[test.field]; got != test.message {
				t.Errorf("expected %q for field %q, got %q", test.message, test.field, got)
			}
		})
	}
}

func TestCreateEmployeeRequest_Validate_MultipleViolations(t *testing.T) {
	req := CreateEmployeeRequest{
		Name:  "J",
		Email: "nope",
		Phone: "123",
	}

	violations := req.Validate()
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %v", violations)
	}

	if violations["name"] != MsgName {
		t.Errorf("unexpected name message: %q", violations["name"])
	}
	if violations["email"] != MsgEmail {
		t.Errorf("unexpected email message: %q", violations["email"])
	}
	if violations["phone"] != MsgPhone {
		t.Errorf("unexpected phone message: %q", violations["phone"])
	}
}
