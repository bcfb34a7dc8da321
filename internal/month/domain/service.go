package domain

import (
	"context"
	"errors"
)

type CreateMonthRequest struct {
	MonthName string
	Year      int

	EBPrev   float64
	EBCurr   float64
	UnitRate float64

	Water    float64
	Gas      float64
	Internet float64
	Misc     float64

	TotalRent float64
}

type UpdateMonthRequest struct {
	ID string

	MonthName *string
	Year      *int

	EBPrev   *float64
	EBCurr   *float64
	UnitRate *float64

	Water    *float64
	Gas      *float64
	Internet *float64
	Misc     *float64

	TotalRent *float64
}

type GetMonthRequest struct {
	ID string
}

type DeleteMonthRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateMonthRequest) (Month, error)
	List(context.Context) ([]Month, error)
	GetByID(context.Context, GetMonthRequest) (Month, error)
	Update(context.Context, UpdateMonthRequest) (Month, error)
	Delete(context.Context, DeleteMonthRequest) error
}

var (
	ErrInvalidMonthName = errors.New("invalid_month_name")
	ErrInvalidYear      = errors.New("invalid_year")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
	ErrMonthExists      = errors.New("month_exists")
	ErrMonthInUse       = errors.New("month_in_use")
)
