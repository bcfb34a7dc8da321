package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/rentdesk/pkg/db/pagination"
)

// TypeAll is the sentinel meaning "no type filter".
const TypeAll = "all"

type CreatePaymentRequest struct {
	MemberID    string
	Amount      float64
	PaymentDate *time.Time
	PaymentType string
	Status      string
	Notes       string
}

type UpdatePaymentRequest struct {
	ID string

	MemberID    *string
	Amount      *float64
	PaymentDate *time.Time
	PaymentType *string
	Status      *string
	Notes       *string
}

type ListPaymentsRequest struct {
	// Query is matched case-insensitively against the member name.
	Query string
	// Type filters on payment type; empty or "all" disables it.
	Type string
	Page int
	// PageSize of zero falls back to the configured page size.
	PageSize int
}

type ListPaymentsResponse struct {
	pagination.PageInfo
	Payments []PaymentView `json:"payments"`
}

type GetPaymentRequest struct {
	ID string
}

type DeletePaymentRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreatePaymentRequest) (Payment, error)
	List(context.Context, ListPaymentsRequest) (ListPaymentsResponse, error)
	GetByID(context.Context, GetPaymentRequest) (Payment, error)
	Update(context.Context, UpdatePaymentRequest) (Payment, error)
	Delete(context.Context, DeletePaymentRequest) error
	// Summarize totals completed and pending amounts across all payments,
	// plus everything dated in the given month.
	Summarize(ctx context.Context, now time.Time) (Summary, error)
}

var (
	ErrMemberRequired = errors.New("member_required")
	ErrInvalidAmount  = errors.New("invalid_amount")
	ErrInvalidType    = errors.New("invalid_type")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
