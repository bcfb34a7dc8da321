package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.RentRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.RentRecord, error) {
	var record domain.RentRecord
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListViews fetches rent records joined one level to members and months.
// The join is display-only: the member name/avatar and the month label.
func (r *repo) ListViews(ctx context.Context, db *gorm.DB, filter domain.ListRentRecordFilter) ([]*domain.RentRecordView, error) {
	var views []*domain.RentRecordView
	stmt := db.WithContext(ctx).
		Table("rent_records").
		Select(`rent_records.*,
			members.name AS member_name,
			members.avatar AS member_avatar,
			months.month_year AS month_label`).
		Joins("LEFT JOIN members ON members.id = rent_records.member_id").
		Joins("LEFT JOIN months ON months.id = rent_records.month_id")
	if filter.MonthID != 0 {
		stmt = stmt.Where("rent_records.month_id = ?", filter.MonthID)
	}
	err := stmt.
		Order("rent_records.created_at desc, rent_records.id desc").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.RentRecord{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.RentRecord{}).Error
}
