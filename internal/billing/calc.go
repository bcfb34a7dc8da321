// Package billing contains the pure derivation functions behind the
// dashboard: electricity billing from meter readings, shared-expense
// splitting, and the rent-record final total.
//
// These functions are PURE:
// - No side effects
// - No DB access
// - Fully deterministic
//
// No rounding is applied here; display formatting is a presentation concern.
package billing

// ElectricityBill is the derived outcome of one meter cycle.
type ElectricityBill struct {
	Units   float64 `json:"units"`
	Total   float64 `json:"total"`
	PerHead float64 `json:"per_head"`
}

// Units returns the consumption between two readings. A current reading
// below the previous one (meter rollover, data-entry error) clamps to zero
// instead of producing negative consumption.
func Units(prev, curr float64) float64 {
	units := curr - prev
	if units < 0 {
		return 0
	}
	return units
}

// PerHead splits a total evenly across the active member count. A house
// with no active members yields zero rather than an error.
func PerHead(total float64, activeMembers int) float64 {
	if activeMembers <= 0 {
		return 0
	}
	return total / float64(activeMembers)
}

// Electricity derives the full electricity bill for one cycle.
func Electricity(prev, curr, unitRate float64, activeMembers int) ElectricityBill {
	units := Units(prev, curr)
	total := units * unitRate
	return ElectricityBill{
		Units:   units,
		Total:   total,
		PerHead: PerHead(total, activeMembers),
	}
}

// ExpenseSplit is the derived outcome of the four flat expense categories.
type ExpenseSplit struct {
	Total   float64 `json:"total"`
	PerHead float64 `json:"per_head"`
}

// SharedExpenses totals the flat categories and splits them per head.
// Individual categories are split with PerHead directly when the dashboard
// shows per-category shares before the aggregate save.
func SharedExpenses(water, gas, internet, misc float64, activeMembers int) ExpenseSplit {
	total := water + gas + internet + misc
	return ExpenseSplit{
		Total:   total,
		PerHead: PerHead(total, activeMembers),
	}
}

// RentTotal derives a rent record's final total. A large advance can drive
// the total negative; that is a credit balance, not an error, so no floor
// is applied.
func RentTotal(rent, ebShare, extraShare, advance float64) float64 {
	return rent + ebShare + extraShare - advance
}
