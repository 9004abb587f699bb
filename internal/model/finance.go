package model

import (
	"time"
)

type FinanceType string

const (
	FinanceSalary     FinanceType = "salary"
	FinanceExpense    FinanceType = "expense"
	FinanceSavings    FinanceType = "savings"
	FinanceInvestment FinanceType = "investment"
)

func (t FinanceType) Valid() bool {
	switch t {
	case FinanceSalary, FinanceExpense, FinanceSavings, FinanceInvestment:
		return true
	}
	return false
}

// FinanceEntry amounts are always non-negative; direction comes from Type.
type FinanceEntry struct {
	ID          string      `json:"id"`
	Type        FinanceType `json:"type"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Category    string      `json:"category,omitempty"`
}

func (e FinanceEntry) Key() string { return e.ID }

type FinancePatch struct {
	Type        *FinanceType   `json:"type"`
	Amount      *float64       `json:"amount"`
	Description *string        `json:"description"`
	Date        Opt[time.Time] `json:"date"`
	Category    *string        `json:"category"`
}

func (p FinancePatch) IsEmpty() bool {
	return p.Type == nil && p.Amount == nil && p.Description == nil &&
		!p.Date.IsSet() && p.Category == nil
}

func (p FinancePatch) Apply(e *FinanceEntry) {
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if v, ok := p.Date.Get(); ok {
		e.Date = v
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
}
