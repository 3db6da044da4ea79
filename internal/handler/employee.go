package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/staffdesk/staffdesk/internal/handler/dto"
	"github.com/staffdesk/staffdesk/internal/model"
	"github.com/staffdesk/staffdesk/internal/service"
)

// EmployeeService defines the service operations the handler depends on.
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]*model.Employee, error)
	GetEmployeeByPhoneNumber(ctx context.Context, phone string) (*model.Employee, error)
	CreateEmployee(ctx context.Context, input service.CreateEmployeeInput) (*model.Employee, error)
}

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	svc    EmployeeService
	logger *slog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(svc EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.GetAllEmployees(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// Search handles GET /api/employees/search.
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_PHONE", "Query parameter 'phone' is required")
		return
	}

	employee, err := h.svc.GetEmployeeByPhoneNumber(r.Context(), phone)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Create handles POST /api/employees.
// The request body is validated before the service runs; violations come
// back as a 400 with a field-to-message map.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, violations)
		return
	}

	employee, err := h.svc.CreateEmployee(r.Context(), service.CreateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("employee_created",
		"employee_id", employee.ID,
		"phone", employee.Phone,
	)

	writeJSON(w, http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// handleServiceError maps service errors to HTTP responses.
func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		h.writeError(w, http.StatusNotFound, "EMPLOYEE_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrPhoneExists):
		h.writeError(w, http.StatusConflict, "PHONE_TAKEN", "Phone number already registered")
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func (h *EmployeeHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
