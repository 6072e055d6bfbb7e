package sgsolar

import (
	"time"

	"github.com/sgsolar/sgsolar/date"
)

// This file is the financial aggregation engine. Everything is recomputed
// from scratch on every read: the collections are small and the original
// bookkeeping made the same trade.

// Totals is the unified financial summary over both collections.
type Totals struct {
	Revenue  Money // contract values + income transactions
	Expenses Money // project costs + expense transactions
	Profit   Money // revenue - expenses
}

// ComputeTotals aggregates client contract values/costs and standalone
// transactions. Blank or malformed currency strings count as zero.
func ComputeTotals(clients []Client, transactions []Transaction) Totals {
	var revenue, expenses Money
	for _, c := range clients {
		revenue = revenue.Add(ParseBRLOrZero(c.ContractValue))
		expenses = expenses.Add(ParseBRLOrZero(c.ProjectCost))
	}
	for _, t := range transactions {
		v := ParseBRLOrZero(t.Amount)
		if t.Type == Income {
			revenue = revenue.Add(v)
		} else {
			expenses = expenses.Add(v)
		}
	}
	return Totals{Revenue: revenue, Expenses: expenses, Profit: revenue.Sub(expenses)}
}

// MonthBucket is one month of the cash-flow series.
type MonthBucket struct {
	Month   date.Month
	Income  Money
	Expense Money
}

// monthlyWindow is the number of trailing calendar months on the chart.
const monthlyWindow = 6

// MonthlySeries buckets every client (keyed by install date, falling back
// to creation date) and every transaction into calendar months, retaining
// the trailing window ending at now. Months with no activity still appear
// with zero values, so the series has no gaps.
func MonthlySeries(clients []Client, transactions []Transaction, now time.Time) []MonthBucket {
	last := date.MonthOf(date.Of(now))
	first := last.Add(1 - monthlyWindow)

	buckets := make([]MonthBucket, monthlyWindow)
	index := make(map[date.Month]int, monthlyWindow)
	for i := range buckets {
		m := first.Add(i)
		buckets[i].Month = m
		index[m] = i
	}

	add := func(when string, amount Money, kind TransactionType) {
		d, err := date.Parse(when)
		if err != nil {
			return
		}
		i, ok := index[date.MonthOf(d)]
		if !ok {
			return // outside the window
		}
		if kind == Income {
			buckets[i].Income = buckets[i].Income.Add(amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(amount)
		}
	}

	for _, c := range clients {
		when := c.InstallDate
		if when == "" {
			when = c.CreatedAt
		}
		add(when, ParseBRLOrZero(c.ContractValue), Income)
		add(when, ParseBRLOrZero(c.ProjectCost), Expense)
	}
	for _, t := range transactions {
		add(t.Date, ParseBRLOrZero(t.Amount), t.Type)
	}
	return buckets
}
