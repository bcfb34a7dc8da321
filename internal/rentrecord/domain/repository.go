package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// ListRentRecordFilter narrows the store query. Name and status filtering
// happen in memory on the fetched set; only the month scope pushes down.
type ListRentRecordFilter struct {
	MonthID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *RentRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*RentRecord, error)
	ListViews(ctx context.Context, db *gorm.DB, filter ListRentRecordFilter) ([]*RentRecordView, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
