package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksynth/internal/errors"
)

func TestSurnamesFromRows(t *testing.T) {
	rows := [][]string{
		{"Rank", "Surname", "Count"},
		{"1", "Smith", "50,000"},
		{"2", "Jones", "40,000"},
		{"3", "", "0"}, // blank surname, skipped
		{"4", "Williams", "30,000"},
	}

	surnames, err := SurnamesFromRows(rows)
	require.NoError(t, err)
	require.Len(t, surnames, 3)
	assert.Equal(t, SurnameRow{Rank: 1, Surname: "Smith"}, surnames[0])
	assert.Equal(t, SurnameRow{Rank: 4, Surname: "Williams"}, surnames[2])
}

func TestSurnamesFromRowsNoHeader(t *testing.T) {
	rows := [][]string{
		{"1", "Smith"},
		{"2", "Jones"},
	}

	surnames, err := SurnamesFromRows(rows)
	require.NoError(t, err)
	assert.Len(t, surnames, 2)
}

func TestSurnamesFromRowsErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		wantType errors.ErrorType
	}{
		{
			name:     "narrow row",
			rows:     [][]string{{"Rank"}},
			wantType: errors.ErrTypeSchemaMismatch,
		},
		{
			name:     "bad rank in data row",
			rows:     [][]string{{"1", "Smith"}, {"two", "Jones"}},
			wantType: errors.ErrTypeParsing,
		},
		{
			name:     "header only",
			rows:     [][]string{{"Rank", "Surname"}},
			wantType: errors.ErrTypeSourceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SurnamesFromRows(tt.rows)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.wantType))
		})
	}
}
