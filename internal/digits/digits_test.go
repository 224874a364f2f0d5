package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("235901")
	require.NoError(t, err)
	assert.Equal(t, []Digit{2, 3, 5, 9, 0, 1}, got)

	got, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseRejectsNonDigits(t *testing.T) {
	for _, s := range []string{"12:00", "-1", "１２", "12a"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidDigit, "Parse(%q)", s)
	}
}

func TestDigitString(t *testing.T) {
	for d := Digit(0); d <= 9; d++ {
		assert.Equal(t, string(rune('0'+d)), d.String())
		assert.Equal(t, int(d), d.Int())
	}
}
