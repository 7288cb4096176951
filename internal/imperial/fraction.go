package imperial

// ReduceFraction reduces numerator/denominator to lowest terms.
//
// A zero numerator or denominator yields 0/1. The sign is always carried by
// the numerator: ReduceFraction(2, -4) is (-1, 2).
func ReduceFraction(numerator, denominator int) (int, int) {
	if denominator == 0 || numerator == 0 {
		return 0, 1
	}
	g := gcd(numerator, denominator)
	numerator, denominator = numerator/g, denominator/g
	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}
	return numerator, denominator
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
