// Package dist implements the chi-square distribution and
// contingency table tests.
package dist

import (
	"math"

	"github.com/gonum/mathext"
)

// IncompleteGamma returns the regularized lower incomplete gamma
// function P(alpha, x).
func IncompleteGamma(x, alpha float64) float64 {
	return mathext.GammaInc(alpha, x)
}

// CDFChi2 returns Prob{X<x} where X is chi-square distributed with df
// degrees of freedom.
func CDFChi2(x, df float64) float64 {
	if x <= 0 {
		return 0
	}
	return IncompleteGamma(x/2, df/2)
}

// SurvivalChi2 returns Prob{X>=x} (the p-value) where X is
// chi-square distributed with df degrees of freedom.
func SurvivalChi2(x, df float64) float64 {
	if x <= 0 {
		return 1
	}
	return mathext.GammaIncComp(df/2, x/2)
}

// Chi2x2 performs a chi-square test on a 2x2 contingency table
//
//	a b
//	c d
//
// and returns the statistic and the p-value. NaN is returned if any
// margin is zero.
func Chi2x2(a, b, c, d float64) (stat, p float64) {
	n := a + b + c + d
	r1, r2 := a+b, c+d
	c1, c2 := a+c, b+d
	den := r1 * r2 * c1 * c2
	if den == 0 {
		return math.NaN(), math.NaN()
	}
	stat = n * (a*d - b*c) * (a*d - b*c) / den
	return stat, SurvivalChi2(stat, 1)
}
