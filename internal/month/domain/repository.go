package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, month *Month) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Month, error)
	List(ctx context.Context, db *gorm.DB) ([]*Month, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
