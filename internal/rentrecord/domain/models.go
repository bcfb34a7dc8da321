package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusUnpaid  = "unpaid"
)

// RentRecord is one member's bill for one billing month. FinalTotal is a
// stored column recomputed from its inputs on every create/update; it can
// be negative when an advance exceeds the period's charges (credit
// balance).
type RentRecord struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	MemberID snowflake.ID `gorm:"column:member_id;not null;index" json:"member_id"`
	MonthID  snowflake.ID `gorm:"column:month_id;not null;index" json:"month_id"`

	Rent       float64 `gorm:"not null;default:0" json:"rent"`
	EBShare    float64 `gorm:"column:eb_share;not null;default:0" json:"eb_share"`
	ExtraShare float64 `gorm:"column:extra_share;not null;default:0" json:"extra_share"`
	Advance    float64 `gorm:"not null;default:0" json:"advance"`
	FinalTotal float64 `gorm:"column:final_total;not null;default:0" json:"final_total"`

	PaymentStatus string     `gorm:"column:payment_status;not null;default:pending" json:"payment_status"`
	PaidDate      *time.Time `gorm:"column:paid_date" json:"paid_date,omitempty"`
	PaymentNote   string     `gorm:"column:payment_note" json:"payment_note,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RentRecord) TableName() string { return "rent_records" }

// RentRecordView is a rent record joined one level to its member and month
// for display and export. The joined fields are denormalized copies; they
// never round-trip back into the record.
type RentRecordView struct {
	RentRecord

	MemberName   string `gorm:"column:member_name" json:"member_name"`
	MemberAvatar string `gorm:"column:member_avatar" json:"member_avatar,omitempty"`
	MonthLabel   string `gorm:"column:month_label" json:"month_label"`
}

// ValidStatus reports whether value is a recognized payment status.
func ValidStatus(value string) bool {
	switch value {
	case StatusPending, StatusPaid, StatusUnpaid:
		return true
	default:
		return false
	}
}
