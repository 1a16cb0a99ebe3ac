package idnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCheckChar(t *testing.T) {
	tests := []struct {
		prefix string
		want   rune
	}{
		{"51010819720505213", '7'},
		// Remainder 2 maps to 'X', the only non-digit in the alphabet.
		{"11010819900101001", 'X'},
		{"11010519491001002", '3'},
		{"34052419800101001", 'X'},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := ComputeCheckChar(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestComputeCheckChar_Rejects(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		_, err := ComputeCheckChar("510108")
		require.Error(t, err)
	})
	t.Run("non-digit", func(t *testing.T) {
		_, err := ComputeCheckChar("5101081972050521x")
		require.Error(t, err)
	})
}

// The weighted sum is folded mod 11 at every step; the result must match the
// unfolded sum mod 11 for any digit pattern.
func TestCheckChar_FoldEquivalence(t *testing.T) {
	digits := []rune("98765432109876543")
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * checksumWeights[i]
	}
	assert.Equal(t, string(checkAlphabet[sum%11]), string(checkChar(digits)))
}

func TestCheckAlphabet(t *testing.T) {
	// Every alphabet member is accepted, and case matters.
	for _, c := range checkAlphabet {
		assert.True(t, isCheckChar(c), "alphabet member %q", c)
	}
	assert.False(t, isCheckChar('x'))
	assert.False(t, isCheckChar('A'))
	assert.False(t, isCheckChar(' '))
}
