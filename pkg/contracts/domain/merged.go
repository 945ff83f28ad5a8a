package domain

// MergedRecord is the left-equijoin of a customer and their account on
// the customer identifier. The relationship is 1:1 by construction, so
// the merged table always has one row per customer.
//
// CleanedBalance and CleanedInterest start as copies of the raw account
// values and are only populated with the column median by the explicit
// imputation step; the raw fields keep their NaN markers.
type MergedRecord struct {
	Customer Customer `json:"customer"`
	Account  Account  `json:"account"`

	CleanedBalance  float64 `json:"cleaned_balance" csv:"CleanedBalance"`
	CleanedInterest float64 `json:"cleaned_interest" csv:"CleanedInterest"`
}
