package math

// Factorial returns n! in 32-bit signed arithmetic.
// Values past 12! wrap around silently; n < 2 (negatives included) yields 1.
func Factorial(n int32) int32 {
	if n < 2 {
		return 1
	}

	return n * Factorial(n-1)
}

// Factorial64 is Factorial computed in 64 bits.
func Factorial64(n int64) int64 {
	if n < 2 {
		return 1
	}

	return n * Factorial64(n-1)
}
