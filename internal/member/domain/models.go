package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member is a housemate sharing rent and utilities.
type Member struct {
	ID        snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Phone     string            `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	RoomNo    string            `gorm:"column:room_no" json:"room_no,omitempty"`
	Avatar    string            `json:"avatar,omitempty"`
	Status    string            `gorm:"not null;default:active" json:"status"`
	JoinDate  *time.Time        `gorm:"column:join_date" json:"join_date,omitempty"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Member) TableName() string { return "members" }

// ValidStatus reports whether value is a recognized member status.
func ValidStatus(value string) bool {
	return value == StatusActive || value == StatusInactive
}
