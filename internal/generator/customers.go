package generator

import (
	"fmt"

	"banksynth/internal/errors"
	"banksynth/pkg/contracts/domain"
)

// AssembleCustomers joins the independently sampled attribute vectors
// into the Customer table. Every vector carries the synthetic row index
// it was generated for, and the join is on that index; a misaligned
// vector is a bug surfaced here, not silently reordered data.
func AssembleCustomers(ids []int, names []NamePick, ages []AgeDraw, jobs []EmploymentDraw, addresses []AddressDraw) ([]domain.Customer, error) {
	n := len(ids)
	if len(names) != n || len(ages) != n || len(jobs) != n || len(addresses) != n {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"attribute vectors disagree on row count: ids=%d names=%d ages=%d jobs=%d addresses=%d",
			n, len(names), len(ages), len(jobs), len(addresses)))
	}

	customers := make([]domain.Customer, n)
	for i := 0; i < n; i++ {
		if names[i].Index != i || ages[i].Index != i || jobs[i].Index != i || addresses[i].Index != i {
			return nil, errors.NewValidationError(fmt.Sprintf(
				"attribute vector misaligned at row %d: names=%d ages=%d jobs=%d addresses=%d",
				i, names[i].Index, ages[i].Index, jobs[i].Index, addresses[i].Index))
		}

		gender, err := genderFromTag(names[i].GenderTag)
		if err != nil {
			return nil, err
		}

		customers[i] = domain.Customer{
			ID:            ids[i],
			FirstName:     names[i].FirstName,
			Surname:       names[i].Surname,
			Gender:        gender,
			AgeBracket:    ages[i].Bracket,
			Age:           ages[i].Age,
			Education:     jobs[i].Tier,
			Profession:    jobs[i].Profession,
			MonthlySalary: jobs[i].MonthlySalary,
			Address:       addresses[i].Address,
		}
	}
	return customers, nil
}
