package domain

import (
	"context"
	"errors"
	"time"
)

// StatusAll is the sentinel meaning "no status filter".
const StatusAll = "all"

type CreateMemberRequest struct {
	Name     string
	Phone    string
	Email    string
	RoomNo   string
	Avatar   string
	Status   string
	JoinDate *time.Time
}

type UpdateMemberRequest struct {
	ID       string
	Name     *string
	Phone    *string
	Email    *string
	RoomNo   *string
	Avatar   *string
	Status   *string
	JoinDate *time.Time
}

type ListMemberRequest struct {
	Status string
}

type ListMemberFilter struct {
	Status string
}

type GetMemberRequest struct {
	ID string
}

type DeleteMemberRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateMemberRequest) (Member, error)
	List(context.Context, ListMemberRequest) ([]Member, error)
	GetByID(context.Context, GetMemberRequest) (Member, error)
	Update(context.Context, UpdateMemberRequest) (Member, error)
	Delete(context.Context, DeleteMemberRequest) error
	ActiveCount(context.Context) (int64, error)
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrMemberInUse   = errors.New("member_in_use")
)
