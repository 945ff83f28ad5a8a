// Package reference loads the four external reference tables the
// generation pipeline samples from: gender-tagged first names, ranked
// surnames, profession salaries by qualification, and street addresses.
// Loading is pure I/O; any failure is fatal to the run.
package reference

// Gender tags used by the first-name reference.
const (
	TagGirl = "girl"
	TagBoy  = "boy"
)

// NameRow is one gender-tagged first name.
type NameRow struct {
	Gender string
	Name   string
}

// SurnameRow is one ranked surname scraped from the surname table.
type SurnameRow struct {
	Rank    int
	Surname string
}

// SalaryRow is one profession with its qualification label and average
// weekly earnings.
type SalaryRow struct {
	Profession        string
	Qualification     string
	AvgWeeklyEarnings float64
}

// StreetRow is one street from the remote street-address table.
type StreetRow struct {
	RegionID   string
	StreetName string
}

// Tables bundles all four loaded reference tables.
type Tables struct {
	Names    []NameRow
	Surnames []SurnameRow
	Salaries []SalaryRow
	Streets  []StreetRow
}
