package domain

import (
	"math"
	"time"
)

// Account is the single savings account owned by one customer.
//
// Balance and Interest use IEEE NaN as their absent state. Interest is
// computed directly from Balance, so a masked balance propagates into a
// missing interest without any special casing.
type Account struct {
	ID           int       `json:"account_id" csv:"AccountID" validate:"required,min=10000000,max=99999999"`
	CustomerID   int       `json:"customer_id" csv:"CustomerID" validate:"required"`
	OpenedAt     time.Time `json:"opened_at" csv:"OpenedAt"`
	TenureMonths int       `json:"tenure_months" csv:"TenureMonths" validate:"min=0"`
	Balance      float64   `json:"balance" csv:"Balance"`
	Interest     float64   `json:"interest" csv:"Interest"`
}

// BalanceMissing reports whether the average monthly balance was masked.
func (a Account) BalanceMissing() bool {
	return math.IsNaN(a.Balance)
}

// InterestMissing reports whether the interest value is absent. By
// construction this is true exactly when the balance is missing.
func (a Account) InterestMissing() bool {
	return math.IsNaN(a.Interest)
}
