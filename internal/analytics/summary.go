// Package analytics computes derived, read-only summary statistics over
// a snapshot. Everything here is a pure function: results are
// recomputed on every read and never cached across mutations.
package analytics

import (
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

// Summary aggregates ledger-wide metrics across every investment in
// every portfolio. Totals include inactive positions; best and worst
// picks consider active investments only.
//
// Values are exact sums: AbsoluteReturn always equals
// TotalCurrentValue - TotalInvested, and PercentageReturn is defined as
// zero when nothing has been invested.
type Summary struct {
	TotalInvested        float64            `json:"totalInvested"`
	TotalCurrentValue    float64            `json:"totalCurrentValue"`
	AbsoluteReturn       float64            `json:"absoluteReturn"`
	PercentageReturn     float64            `json:"percentageReturn"`
	DistributionByType   map[string]float64 `json:"distributionByType"`
	DistributionByBroker map[string]float64 `json:"distributionByBroker"`
	BestInvestment       *model.Investment  `json:"bestInvestment"`
	WorstInvestment      *model.Investment  `json:"worstInvestment"`
}

// Summarize computes the ledger summary from the flattened investment
// set across all portfolios, in portfolio order then insertion order.
//
// That flattened order is the tie-break for best/worst selection: the
// first investment encountered with the extremal annualized return rate
// wins. The iteration order is stable for a given snapshot, which makes
// the selection deterministic. Both picks are nil when there are no
// active investments; that is a valid empty result, not an error.
func Summarize(snap model.Snapshot) Summary {
	summary := Summary{
		DistributionByType:   map[string]float64{},
		DistributionByBroker: map[string]float64{},
	}

	for i := range snap.Portfolios {
		for j := range snap.Portfolios[i].Investments {
			inv := &snap.Portfolios[i].Investments[j]

			summary.TotalInvested += inv.InvestedAmount
			summary.TotalCurrentValue += inv.CurrentValue

			// Keys are exactly the distinct values present; absent
			// categories get no zero-filled placeholder.
			summary.DistributionByType[string(inv.Type)] += inv.CurrentValue
			if inv.Broker != "" {
				summary.DistributionByBroker[inv.Broker] += inv.CurrentValue
			}

			if !inv.Active {
				continue
			}
			if summary.BestInvestment == nil || inv.AnnualizedReturnRate > summary.BestInvestment.AnnualizedReturnRate {
				best := *inv
				summary.BestInvestment = &best
			}
			if summary.WorstInvestment == nil || inv.AnnualizedReturnRate < summary.WorstInvestment.AnnualizedReturnRate {
				worst := *inv
				summary.WorstInvestment = &worst
			}
		}
	}

	summary.AbsoluteReturn = summary.TotalCurrentValue - summary.TotalInvested
	if summary.TotalInvested != 0 {
		summary.PercentageReturn = summary.AbsoluteReturn / summary.TotalInvested * 100
	}
	return summary
}
