package primitives

import "math/bits"

// CheckedMul returns a*b. The second value is true, and the product is 0, if the
// multiplication overflows.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, true
	}
	return lo, false
}

// CheckedAdd returns a+b. The second value is true, and the sum is 0, if the
// addition overflows.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, true
	}
	return sum, false
}
