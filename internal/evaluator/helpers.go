package evaluator

// intPow computes n**m for m >= 0 by squaring. The result matches repeated
// multiplication, including wrap-around.
func intPow(n, m int64) int64 {
	var result int64 = 1
	for m > 0 {
		if m&1 == 1 {
			result *= n
		}
		n *= n
		m >>= 1
	}
	return result
}
