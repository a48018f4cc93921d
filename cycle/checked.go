package cycle

import "math/big"

// CheckedAdd returns a+b, or ErrOverflow when the sum does not fit in an int.
func CheckedAdd(a, b int) (int, error) {
	return ToInt(new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b))))
}

// CheckedMul returns a×b, or ErrOverflow when the product does not fit in
// an int.
func CheckedMul(a, b int) (int, error) {
	return ToInt(new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b))))
}
