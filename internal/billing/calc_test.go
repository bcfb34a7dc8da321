package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnits(t *testing.T) {
	tests := []struct {
		name string
		prev float64
		curr float64
		want float64
	}{
		{"normal consumption", 4520, 4880, 360},
		{"no consumption", 100, 100, 0},
		{"rollover clamps to zero", 4880, 4520, 0},
		{"fractional readings", 10.5, 12.25, 1.75},
		{"zero readings", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Units(tt.prev, tt.curr))
		})
	}
}

func TestPerHead_ZeroMembers(t *testing.T) {
	assert.Equal(t, float64(0), PerHead(1800, 0))
	assert.Equal(t, float64(0), PerHead(1800, -1))
	assert.Equal(t, float64(0), PerHead(0, 0))
}

func TestElectricity(t *testing.T) {
	// prev=4520, curr=4880, rate=5, 4 active members
	bill := Electricity(4520, 4880, 5, 4)
	assert.Equal(t, float64(360), bill.Units)
	assert.Equal(t, float64(1800), bill.Total)
	assert.Equal(t, float64(450), bill.PerHead)
}

func TestElectricity_NegativeConsumption(t *testing.T) {
	bill := Electricity(5000, 4800, 7, 3)
	assert.Equal(t, float64(0), bill.Units)
	assert.Equal(t, float64(0), bill.Total)
	assert.Equal(t, float64(0), bill.PerHead)
}

func TestElectricity_UnroundedPerHead(t *testing.T) {
	// 100 units at rate 1 across 3 members: the derivation keeps the full
	// quotient, display rounding happens elsewhere.
	bill := Electricity(0, 100, 1, 3)
	assert.InDelta(t, 33.333333, bill.PerHead, 1e-6)
	assert.NotEqual(t, 33.33, bill.PerHead)
}

func TestSharedExpenses(t *testing.T) {
	split := SharedExpenses(400, 200, 150, 50, 4)
	assert.Equal(t, float64(800), split.Total)
	assert.Equal(t, float64(200), split.PerHead)
}

func TestSharedExpenses_NoActiveMembers(t *testing.T) {
	split := SharedExpenses(400, 200, 150, 50, 0)
	assert.Equal(t, float64(800), split.Total)
	assert.Equal(t, float64(0), split.PerHead)
}

func TestSharedExpenses_PerCategory(t *testing.T) {
	// Per-category shares use the same guard as the aggregate.
	assert.Equal(t, float64(100), PerHead(400, 4))
	assert.Equal(t, float64(0), PerHead(400, 0))
}

func TestRentTotal(t *testing.T) {
	assert.Equal(t, float64(5150), RentTotal(5000, 450, 200, 500))
}

func TestRentTotal_NegativeIsCredit(t *testing.T) {
	// advance > rent+eb+extra leaves a credit balance; no floor at zero.
	total := RentTotal(1000, 100, 50, 2000)
	assert.Equal(t, float64(-850), total)
}

func TestRentTotal_ZeroDefaults(t *testing.T) {
	assert.Equal(t, float64(0), RentTotal(0, 0, 0, 0))
}
