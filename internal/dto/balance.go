package dto

import "time"

// BalanceWindow optionally bounds a balance query by posting date.
type BalanceWindow struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// BalanceResponse carries a point-in-time ledger account balance as a
// fixed-scale decimal string.
type BalanceResponse struct {
	Code    string `json:"code"`
	Balance string `json:"balance"`
}
