package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	testCases := []struct {
		input    int32
		expected int32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
		// first value past int32 range
		{13, 1932053504},
		{17, -288522240},
		{20, -2102132736},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, Factorial(tc.input), "Factorial(%d)", tc.input)
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, n := range []int32{-1, -2, -20, -2147483648} {
		require.NotPanics(t, func() { Factorial(n) })
		require.Equal(t, int32(1), Factorial(n), "Factorial(%d)", n)
	}
}

func TestFactorial64(t *testing.T) {
	require.Equal(t, int64(1), Factorial64(0))
	require.Equal(t, int64(1), Factorial64(1))
	require.Equal(t, int64(120), Factorial64(5))
	require.Equal(t, int64(2432902008176640000), Factorial64(20))
}

func TestFactorialRecurrence(t *testing.T) {
	for n := int32(0); n <= 25; n++ {
		if n < 2 {
			require.Equal(t, int32(1), Factorial(n))
			require.Equal(t, int64(1), Factorial64(int64(n)))
			continue
		}
		require.Equal(t, n*Factorial(n-1), Factorial(n), "n=%d", n)
		require.Equal(t, int64(n)*Factorial64(int64(n-1)), Factorial64(int64(n)), "n=%d", n)
	}
}

func TestFactorialWrapsToLow32Bits(t *testing.T) {
	// 64-bit results are exact up to 20!
	for n := int32(0); n <= 20; n++ {
		require.Equal(t, int32(Factorial64(int64(n))), Factorial(n), "n=%d", n)
	}
}
