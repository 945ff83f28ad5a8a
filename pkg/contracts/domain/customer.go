package domain

// Gender is the customer gender category. It is derived from which
// first-name pool the customer's name was drawn from.
type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

// EducationTier is an ordered category: Secondary < Vocational < Higher.
type EducationTier string

const (
	TierSecondary  EducationTier = "Secondary"
	TierVocational EducationTier = "Vocational"
	TierHigher     EducationTier = "Higher"
)

// TierOrder lists the tiers in ascending order. Grouped output and
// ordered comparisons both rely on this slice.
var TierOrder = []EducationTier{TierSecondary, TierVocational, TierHigher}

// Rank returns the position of the tier in the ascending order, or -1
// for an unknown tier.
func (t EducationTier) Rank() int {
	for i, tier := range TierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// Less reports whether t is strictly below other in the education order.
func (t EducationTier) Less(other EducationTier) bool {
	return t.Rank() < other.Rank()
}

// Customer is one synthetic bank customer.
//
// Address is optional: the generator masks it with a fixed per-row
// probability and an absent address stays absent through the whole
// pipeline (it is never imputed).
type Customer struct {
	ID            int           `json:"customer_id" csv:"CustomerID" validate:"required,min=10000000,max=99999999"`
	FirstName     string        `json:"first_name" csv:"FirstName" validate:"required"`
	Surname       string        `json:"surname" csv:"Surname" validate:"required"`
	Gender        Gender        `json:"gender" csv:"Gender"`
	AgeBracket    string        `json:"age_bracket" csv:"AgeBracket"`
	Age           int           `json:"age" csv:"Age" validate:"min=15,max=90"`
	Education     EducationTier `json:"education" csv:"Education"`
	Profession    string        `json:"profession" csv:"Profession"`
	MonthlySalary float64       `json:"monthly_salary" csv:"MonthlySalary"`
	Address       string        `json:"address,omitempty" csv:"Address"`
}

// FullName joins first name and surname with a single space, matching
// the form used when the candidate-name universe was built.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.Surname
}

// HasAddress reports whether the address survived masking. Generated
// addresses are never empty strings, so emptiness marks absence.
func (c Customer) HasAddress() bool {
	return c.Address != ""
}
