package model

import (
	"sort"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// RateHours is the summed hours for one overtime tier of one technician.
type RateHours struct {
	Rate  string  `json:"rate"`
	Hours float64 `json:"hours"`
}

// TechnicianOvertimeTotal is one technician's overtime summary. Only
// technicians with at least one overtime entry in the window appear; the
// overtime report is deliberately sparse.
type TechnicianOvertimeTotal struct {
	UserID   types.UserID `json:"userId"`
	UserName string       `json:"userName"`
	Rates    []RateHours  `json:"rates"`
}

// TotalHours returns the sum across the technician's tiers.
func (t *TechnicianOvertimeTotal) TotalHours() float64 {
	sum := decimal.Zero
	for _, r := range t.Rates {
		sum = sum.Add(decimal.NewFromFloat(r.Hours))
	}
	return sum.InexactFloat64()
}

type overtimeAccum struct {
	userID types.UserID
	name   string
	hours  map[RateTier]decimal.Decimal
}

// AggregateOvertime folds entries into per-technician, per-tier totals over
// HoursRounded. Normal-rate entries are excluded; unknown rates are excluded
// and counted as anomalies for the caller to surface. Technicians sort
// descending by total hours (name ascending on ties), and within each
// technician the 50% tier sorts before 100%.
func AggregateOvertime(entries []TimeEntry) ([]TechnicianOvertimeTotal, int) {
	accums := make(map[types.UserID]*overtimeAccum)
	anomalies := 0

	for _, e := range entries {
		tier := ClassifyRate(e.Rate)
		if tier == TierOther {
			anomalies++
			continue
		}
		if !tier.IsOvertime() {
			continue
		}

		acc, ok := accums[e.UserID]
		if !ok {
			acc = &overtimeAccum{
				userID: e.UserID,
				name:   e.TechnicianName().String(),
				hours:  make(map[RateTier]decimal.Decimal),
			}
			accums[e.UserID] = acc
		}
		acc.hours[tier] = acc.hours[tier].Add(decimal.NewFromFloat(e.HoursRounded))
	}

	totals := make([]TechnicianOvertimeTotal, 0, len(accums))
	for _, acc := range accums {
		var rates []RateHours
		for _, tier := range []RateTier{TierOvertime50, TierOvertime100} {
			if sum, ok := acc.hours[tier]; ok {
				rates = append(rates, RateHours{
					Rate:  tier.String(),
					Hours: sum.InexactFloat64(),
				})
			}
		}
		totals = append(totals, TechnicianOvertimeTotal{
			UserID:   acc.userID,
			UserName: acc.name,
			Rates:    rates,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		ti, tj := totals[i].TotalHours(), totals[j].TotalHours()
		if ti != tj {
			return ti > tj
		}
		return totals[i].UserName < totals[j].UserName
	})

	return totals, anomalies
}
