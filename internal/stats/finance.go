package stats

import (
	"github.com/nzoschke/productivity/internal/model"
)

// MonthLayout is the YYYY-MM key used to bucket finance entries.
const MonthLayout = "2006-01"

type FinanceSummary struct {
	Month       string               `json:"month"`
	Salary      float64              `json:"salary"`
	Expenses    float64              `json:"expenses"`
	Savings     float64              `json:"savings"`
	Investments float64              `json:"investments"`
	Net         float64              `json:"net"`
	Entries     []model.FinanceEntry `json:"entries"`
}

// MonthlyFinance totals the entries whose UTC date falls in month (YYYY-MM).
// Net is salary minus everything that left the account; no rounding happens here.
func MonthlyFinance(entries []model.FinanceEntry, month string) FinanceSummary {
	summary := FinanceSummary{
		Month:   month,
		Entries: []model.FinanceEntry{},
	}

	for _, e := range entries {
		if e.Date.UTC().Format(MonthLayout) != month {
			continue
		}
		summary.Entries = append(summary.Entries, e)

		switch e.Type {
		case model.FinanceSalary:
			summary.Salary += e.Amount
		case model.FinanceExpense:
			summary.Expenses += e.Amount
		case model.FinanceSavings:
			summary.Savings += e.Amount
		case model.FinanceInvestment:
			summary.Investments += e.Amount
		}
	}

	summary.Net = summary.Salary - summary.Expenses - summary.Savings - summary.Investments
	return summary
}
