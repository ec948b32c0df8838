package dto

// SpendingByCategoryRequest carries the category report query parameters.
type SpendingByCategoryRequest struct {
	Category string `form:"category" binding:"required"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	File     string `form:"file"`
}

// SpendingWindowRequest carries the weekday/workday report query parameters.
type SpendingWindowRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	File string `form:"file"`
}

// CashbackAnalysisRequest carries the cashback analysis query parameters.
type CashbackAnalysisRequest struct {
	Year  int    `form:"year" binding:"required"`
	Month int    `form:"month" binding:"required,min=1,max=12"`
	File  string `form:"file"`
}

// InvestmentRoundUpRequest carries the round-up savings query parameters.
type InvestmentRoundUpRequest struct {
	Month string `form:"month" binding:"required"`
	Limit int64  `form:"limit" binding:"required"`
	File  string `form:"file"`
}

// SearchRequest carries the transaction search query.
type SearchRequest struct {
	Query string `form:"query" binding:"required"`
}

// MainPageRequest carries the main page timestamp ("YYYY-MM-DD HH:MM:SS");
// empty means now.
type MainPageRequest struct {
	Datetime string `form:"datetime" binding:"omitempty,datetime=2006-01-02 15:04:05"`
}

// EventsPageRequest carries the events page date and range option.
type EventsPageRequest struct {
	Date  string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Range string `form:"range" binding:"omitempty"`
}
