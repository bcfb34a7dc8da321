package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListPaymentFilter narrows the store query. Name and type filtering
// happen in the service so both predicates share one code path.
type ListPaymentFilter struct {
	MemberID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Payment, error)
	ListViews(ctx context.Context, db *gorm.DB, filter ListPaymentFilter) ([]*PaymentView, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
