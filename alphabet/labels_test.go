package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chaosgame/alphabet"
)

// TestLabelFns checks each scheme on valid inputs and its panics on invalid ones.
func TestLabelFns(t *testing.T) {
	tests := []struct {
		name        string
		fn          alphabet.LabelFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Letter_min", alphabet.LetterLabel, 0, "A", false},
		{"Letter_max", alphabet.LetterLabel, 25, "Z", false},
		{"Letter_neg", alphabet.LetterLabel, -1, "", true},
		{"Letter_tooHigh", alphabet.LetterLabel, 26, "", true},

		{"Column_zero", alphabet.ColumnLabel, 0, "A", false},
		{"Column_endSingle", alphabet.ColumnLabel, 25, "Z", false},
		{"Column_startDouble", alphabet.ColumnLabel, 26, "AA", false},
		{"Column_ZZ", alphabet.ColumnLabel, 701, "ZZ", false},
		{"Column_AAA", alphabet.ColumnLabel, 702, "AAA", false},
		{"Column_neg", alphabet.ColumnLabel, -1, "", true},

		{"Decimal_zero", alphabet.DecimalLabel, 0, "0", false},
		{"Decimal_multi", alphabet.DecimalLabel, 123, "123", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, alphabet.Labels(5, alphabet.LetterLabel))
	assert.Equal(t, []string{"0", "1", "2"}, alphabet.Labels(3, alphabet.DecimalLabel))

	// nil falls back to column names, which keep going past Z
	got := alphabet.Labels(28, nil)
	assert.Len(t, got, 28)
	assert.Equal(t, "Z", got[25])
	assert.Equal(t, "AB", got[27])

	assert.Nil(t, alphabet.Labels(0, nil))
}
