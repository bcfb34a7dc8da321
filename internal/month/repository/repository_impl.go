package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/month/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, month *domain.Month) error {
	return db.WithContext(ctx).Create(month).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Month, error) {
	var month domain.Month
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&month).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &month, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Month, error) {
	var months []*domain.Month
	err := db.WithContext(ctx).
		Model(&domain.Month{}).
		Order("year desc, created_at desc").
		Find(&months).Error
	if err != nil {
		return nil, err
	}
	return months, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.Month{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Month{}).Error
}
