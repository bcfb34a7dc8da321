package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/rentdesk/pkg/db/pagination"
)

// StatusAll is the sentinel meaning "no status filter".
const StatusAll = "all"

type CreateRentRecordRequest struct {
	MemberID string
	MonthID  string

	Rent       float64
	EBShare    float64
	ExtraShare float64
	Advance    float64

	PaymentStatus string
	PaidDate      *time.Time
	PaymentNote   string
}

type UpdateRentRecordRequest struct {
	ID string

	MemberID *string
	MonthID  *string

	Rent       *float64
	EBShare    *float64
	ExtraShare *float64
	Advance    *float64

	PaymentStatus *string
	PaidDate      *time.Time
	PaymentNote   *string
}

type ListRentRecordsRequest struct {
	// Query is matched case-insensitively against the denormalized member
	// name.
	Query string
	// Status filters on payment status; empty or "all" disables it.
	Status string
	Page   int
	// PageSize of zero falls back to the configured rent page size.
	PageSize int
}

type ListRentRecordsResponse struct {
	pagination.PageInfo
	Records []RentRecordView `json:"records"`
}

type GetRentRecordRequest struct {
	ID string
}

type DeleteRentRecordRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateRentRecordRequest) (RentRecord, error)
	List(context.Context, ListRentRecordsRequest) (ListRentRecordsResponse, error)
	// Filtered returns the full filtered set in store order, unsliced.
	// Export runs over this so a report covers every matching record, not
	// just the visible page.
	Filtered(context.Context, ListRentRecordsRequest) ([]RentRecordView, error)
	GetByID(context.Context, GetRentRecordRequest) (RentRecord, error)
	Update(context.Context, UpdateRentRecordRequest) (RentRecord, error)
	Delete(context.Context, DeleteRentRecordRequest) error
}

var (
	ErrMemberRequired = errors.New("member_required")
	ErrMonthRequired  = errors.New("month_required")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
