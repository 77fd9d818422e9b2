package rng

import "math"

// coefficients of the 6 term Lanczos series, gamma = 5
var cof = [6]float64{76.18009173, -86.50532033, 24.01409822, -1.231739516, 0.120858003e-2, -0.536382e-5}

// LnGamma returns the natural log of the gamma function for xx > 0.  Accuracy is about 1e-10 relative,
// which is plenty for the rejection envelopes that use it.
func LnGamma(xx float64) float64 {
	x := xx - 1.0
	tmp := x + 5.5
	tmp -= (x + 0.5) * math.Log(tmp)
	ser := 1.0
	for j := 0; j < len(cof); j++ {
		x += 1.0
		ser += cof[j] / x
	}
	return -tmp + math.Log(2.50662827465*ser)
}
