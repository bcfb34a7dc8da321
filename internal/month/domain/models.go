package domain

import (
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Month is one billing period. The eb_* and extra_* derived columns are
// stored, not computed on read: the service recomputes them from their
// inputs before every persist, so a direct out-of-band write can
// desynchronize them.
type Month struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	MonthName string       `gorm:"column:month_name;not null;uniqueIndex:ux_months_name_year" json:"month_name"`
	Year      int          `gorm:"not null;uniqueIndex:ux_months_name_year" json:"year"`
	MonthYear string       `gorm:"column:month_year;not null" json:"month_year"`

	EBPrev    float64 `gorm:"column:eb_prev;not null;default:0" json:"eb_prev"`
	EBCurr    float64 `gorm:"column:eb_curr;not null;default:0" json:"eb_curr"`
	UnitRate  float64 `gorm:"column:unit_rate;not null;default:0" json:"unit_rate"`
	EBUnits   float64 `gorm:"column:eb_units;not null;default:0" json:"eb_units"`
	EBTotal   float64 `gorm:"column:eb_total;not null;default:0" json:"eb_total"`
	EBPerHead float64 `gorm:"column:eb_per_head;not null;default:0" json:"eb_per_head"`

	Water        float64 `gorm:"not null;default:0" json:"water"`
	Gas          float64 `gorm:"not null;default:0" json:"gas"`
	Internet     float64 `gorm:"not null;default:0" json:"internet"`
	Misc         float64 `gorm:"not null;default:0" json:"misc"`
	ExtraTotal   float64 `gorm:"column:extra_total;not null;default:0" json:"extra_total"`
	ExtraPerHead float64 `gorm:"column:extra_per_head;not null;default:0" json:"extra_per_head"`

	TotalMembers int     `gorm:"column:total_members;not null;default:0" json:"total_members"`
	TotalRent    float64 `gorm:"column:total_rent;not null;default:0" json:"total_rent"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Month) TableName() string { return "months" }

// MonthLabel builds the display label shown across the dashboard.
func MonthLabel(monthName string, year int) string {
	return monthName + " " + strconv.Itoa(year)
}
