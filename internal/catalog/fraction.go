package catalog

import "math"

// maxDenominator bounds the rational search used to classify exponents.
const maxDenominator = 100

// limitDenominator returns the closest fraction num/den to v with
// den <= maxDen, reduced to lowest terms. It is only asked one question
// here: does v reduce to a whole number?
func limitDenominator(v float64, maxDen int) (num, den int) {
	best := int(math.Round(v))
	bestDen := 1
	bestErr := math.Abs(v - math.Round(v))
	for d := 2; d <= maxDen; d++ {
		n := math.Round(v * float64(d))
		if err := math.Abs(v - n/float64(d)); err < bestErr {
			best, bestDen, bestErr = int(n), d, err
		}
		if bestErr == 0 {
			break
		}
	}
	g := gcd(best, bestDen)
	return best / g, bestDen / g
}

// isWholeNumber reports whether v is an integer up to the bounded rational
// approximation above.
func isWholeNumber(v float64) bool {
	_, den := limitDenominator(v, maxDenominator)
	return den == 1
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
