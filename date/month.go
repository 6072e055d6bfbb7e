package date

import (
	"fmt"
	"time"
)

// Month identifies one calendar month, the bucket of the cash-flow series.
type Month struct {
	y int
	m time.Month
}

// MonthOf returns the month a date falls in.
func MonthOf(d Date) Month { return Month{y: d.y, m: d.m} }

// ThisMonth returns the current calendar month.
func ThisMonth() Month { return MonthOf(Today()) }

// Add returns the month i months later (or earlier for negative i).
func (m Month) Add(i int) Month {
	t := time.Date(m.y, m.m+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// Before reports whether m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// String formats the month as "2026-08".
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.y, int(m.m)) }

// ptBRMonths are the short month names used on the cash-flow chart.
var ptBRMonths = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Label returns the operator-facing short name of the month.
func (m Month) Label() string { return ptBRMonths[int(m.m)-1] }
