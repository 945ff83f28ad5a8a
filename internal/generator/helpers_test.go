package generator

import (
	"fmt"

	"banksynth/internal/config"
	"banksynth/internal/reference"
)

// fixtureTables builds a reference set large enough for a 200-row run.
func fixtureTables() *reference.Tables {
	names := []reference.NameRow{
		{Gender: "girl", Name: "Olivia"},
		{Gender: "girl", Name: "Amelia"},
		{Gender: "girl", Name: "Charlotte"},
		{Gender: "girl", Name: "Mia"},
		{Gender: "boy", Name: "Jack"},
		{Gender: "boy", Name: "Noah"},
		{Gender: "boy", Name: "William"},
		{Gender: "boy", Name: "Leo"},
	}

	surnames := make([]reference.SurnameRow, 0, 60)
	for i := 0; i < 60; i++ {
		surnames = append(surnames, reference.SurnameRow{
			Rank:    i + 1,
			Surname: fmt.Sprintf("Surname%02d", i+1),
		})
	}

	salaries := []reference.SalaryRow{
		{Profession: "Sales Assistant", Qualification: "No tertiary qualification", AvgWeeklyEarnings: 1124.4},
		{Profession: "Labourer", Qualification: "No tertiary qualification", AvgWeeklyEarnings: 1396.8},
		{Profession: "Receptionist", Qualification: "Certificate I-II", AvgWeeklyEarnings: 1254.2},
		{Profession: "Electrician", Qualification: "Certificate III-IV", AvgWeeklyEarnings: 1876.0},
		{Profession: "Enrolled Nurse", Qualification: "Diploma", AvgWeeklyEarnings: 1562.7},
		{Profession: "Accountant", Qualification: "Bachelor degree", AvgWeeklyEarnings: 2135.5},
		{Profession: "Teacher", Qualification: "Graduate diploma", AvgWeeklyEarnings: 2043.1},
		{Profession: "Data Scientist", Qualification: "Postgraduate degree", AvgWeeklyEarnings: 2711.9},
	}

	streets := make([]reference.StreetRow, 0, 250)
	for i := 0; i < 250; i++ {
		streets = append(streets, reference.StreetRow{
			RegionID:   fmt.Sprintf("4%03d", i%40),
			StreetName: fmt.Sprintf("Street%03d", i),
		})
	}

	return &reference.Tables{
		Names:    names,
		Surnames: surnames,
		Salaries: salaries,
		Streets:  streets,
	}
}

// fixtureGeneration returns the default generation config used in
// tests.
func fixtureGeneration() config.GenerationConfig {
	return config.GenerationConfig{
		Rows: 200,
		Seeds: config.SeedConfig{
			Names:        11,
			CustomerIDs:  17,
			Demographics: 23,
			Employment:   29,
			Addresses:    31,
			AddressMask:  37,
			AccountIDs:   41,
			OpeningDates: 43,
			BalanceMask:  47,
		},
		AddressMissingRate: 0.05,
		BalanceMissingRate: 0.05,
		SalaryNoiseSD:      200,
		BalanceFactor:      0.2,
		AnnualInterestRate: 0.03,
		ReferenceDate:      "2024-04-01",
	}
}
