// Package api provides the JSON response envelope used by every HTTP handler
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format
type Response struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	Meta      *Meta  `json:"meta,omitempty"`
}

// Meta contains metadata for API responses
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination contains pagination information
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	Created(ctx context.Context, w http.ResponseWriter, data any)
	SuccessWithMeta(ctx context.Context, w http.ResponseWriter, data any, meta *Meta)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	Unauthorized(ctx context.Context, w http.ResponseWriter, message string)
	Forbidden(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	Conflict(ctx context.Context, w http.ResponseWriter, message string)
	TooManyRequests(ctx context.Context, w http.ResponseWriter, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
}

// New creates a new instance of the API response handler
func New() Api {
	return &api{}
}

// NewPagination builds pagination metadata from an offset/limit window and the real total
func NewPagination(offset, limit, total int) *Pagination {
	if total < 0 {
		total = 0
	}
	if limit <= 0 {
		limit = 1
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	page := 1
	if total > 0 && offset < total {
		page = offset/limit + 1
	} else if total > 0 {
		page = totalPages
	}

	return &Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: total > 0 && offset+limit < total,
		HasPrevPage: total > 0 && offset > 0,
	}
}

func (a *api) buildResponse(ctx context.Context, status string, data any, meta *Meta, apiErr *Error) Response {
	return Response{
		RequestID: middleware.GetReqID(ctx),
		Status:    status,
		Data:      data,
		Meta:      meta,
		Error:     apiErr,
	}
}

func (a *api) write(w http.ResponseWriter, statusCode int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// the status line is already sent, an encoding error cannot be reported to the client
	_ = json.NewEncoder(w).Encode(response)
}

// Success sends a 200 OK response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, nil, nil))
}

// Created sends a 201 Created response with data
func (a *api) Created(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(w, http.StatusCreated, a.buildResponse(ctx, StatusSuccess, data, nil, nil))
}

// SuccessWithMeta sends a successful response with data and metadata
func (a *api) SuccessWithMeta(ctx context.Context, w http.ResponseWriter, data any, meta *Meta) {
	a.write(w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, meta, nil))
}

// Error sends an error response with specific HTTP status code and error details
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.write(w, statusCode, a.buildResponse(ctx, StatusError, nil, nil, apiErr))
}

// BadRequest sends a 400 Bad Request response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{Code: "BAD_REQUEST", Message: message})
}

// Unauthorized sends a 401 Unauthorized response
func (a *api) Unauthorized(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusUnauthorized, &Error{Code: "UNAUTHORIZED", Message: message})
}

// Forbidden sends a 403 Forbidden response
func (a *api) Forbidden(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusForbidden, &Error{Code: "FORBIDDEN", Message: message})
}

// NotFound sends a 404 Not Found response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{Code: "NOT_FOUND", Message: message})
}

// Conflict sends a 409 Conflict response
func (a *api) Conflict(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusConflict, &Error{Code: "CONFLICT", Message: message})
}

// TooManyRequests sends a 429 Too Many Requests response
func (a *api) TooManyRequests(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusTooManyRequests, &Error{Code: "TOO_MANY_REQUESTS", Message: message})
}

// InternalServerError sends a 500 Internal Server Error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{Code: "INTERNAL_SERVER_ERROR", Message: message})
}

// ValidationError sends a 422 Unprocessable Entity response with validation details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusUnprocessableEntity, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}
