package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentdesk/internal/payment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Payment, error) {
	var payment domain.Payment
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// ListViews fetches payments joined to their member's name, newest payment
// date first.
func (r *repo) ListViews(ctx context.Context, db *gorm.DB, filter domain.ListPaymentFilter) ([]*domain.PaymentView, error) {
	var views []*domain.PaymentView
	stmt := db.WithContext(ctx).
		Table("payments").
		Select(`payments.*,
			members.name AS member_name,
			members.avatar AS member_avatar`).
		Joins("LEFT JOIN members ON members.id = payments.member_id")
	if filter.MemberID != 0 {
		stmt = stmt.Where("payments.member_id = ?", filter.MemberID)
	}
	err := stmt.
		Order("payments.payment_date desc, payments.id desc").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Payment{}).Error
}
