package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	TypeRent    = "rent"
	TypeAdvance = "advance"
	TypeOther   = "other"

	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

// Payment is money received from a member, tracked independently of rent
// records. Marking a rent record paid and logging a payment are separate
// actions reconciled by the operator.
type Payment struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	MemberID    snowflake.ID `gorm:"column:member_id;not null;index" json:"member_id"`
	Amount      float64      `gorm:"not null;default:0" json:"amount"`
	PaymentDate time.Time    `gorm:"column:payment_date;not null" json:"payment_date"`
	PaymentType string       `gorm:"column:payment_type;not null;default:rent" json:"payment_type"`
	Status      string       `gorm:"not null;default:completed" json:"status"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// PaymentView is a payment joined to its member's name for display.
type PaymentView struct {
	Payment

	MemberName   string `gorm:"column:member_name" json:"member_name"`
	MemberAvatar string `gorm:"column:member_avatar" json:"member_avatar,omitempty"`
}

// Summary aggregates payment amounts for the dashboard cards.
type Summary struct {
	TotalCompleted float64 `json:"total_completed"`
	TotalPending   float64 `json:"total_pending"`
	CurrentMonth   float64 `json:"current_month"`
}

// ValidType reports whether value is a recognized payment type.
func ValidType(value string) bool {
	switch value {
	case TypeRent, TypeAdvance, TypeOther:
		return true
	default:
		return false
	}
}

// ValidStatus reports whether value is a recognized payment status.
func ValidStatus(value string) bool {
	switch value {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	default:
		return false
	}
}
