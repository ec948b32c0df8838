package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryAggregate is a category with an accumulated amount. Produced fresh
// per call and never mutated after return.
type CategoryAggregate struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// WeekdayAverage is the mean transaction amount for one weekday.
// Weekday is 0=Monday .. 6=Sunday. Weekdays with no transactions in the
// window are omitted rather than zero-filled.
type WeekdayAverage struct {
	Weekday int             `json:"weekday"`
	Average decimal.Decimal `json:"average"`
}

// WorkdayAverage is the mean transaction amount for workdays or weekends.
type WorkdayAverage struct {
	IsWeekend bool            `json:"isWeekend"`
	Average   decimal.Decimal `json:"average"`
}
