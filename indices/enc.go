package indices

import (
	"fmt"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
)

// minF is the smallest homozygosity which is considered informative.
const minF = 1e-7

// ENCConfig controls the effective number of codons computation.
type ENCConfig struct {
	// MinCount is the smallest amino acid count for which the
	// homozygosity is computed, should be at least 2.
	MinCount int
	// InterpolateThreeFold replaces the missing average of a single
	// three-fold amino acid (isoleucine in the standard code) by the
	// mean of two-fold and four-fold averages.
	InterpolateThreeFold bool
	// Fallback is the homozygosity used for a degeneracy class
	// without informative amino acids. If a class has no fallback
	// value, the result is undefined.
	Fallback map[int]float64
}

// DefaultENCConfig returns the configuration reproducing Wright
// (1990) as implemented in codonW.
func DefaultENCConfig() ENCConfig {
	return ENCConfig{
		MinCount:             2,
		InterpolateThreeFold: true,
	}
}

// UniformFallback returns homozygosity of uniform codon usage (1/k)
// for degeneracy classes up to maxDeg.
func UniformFallback(maxDeg int) map[int]float64 {
	fb := make(map[int]float64, maxDeg)
	for k := 2; k <= maxDeg; k++ {
		fb[k] = 1 / float64(k)
	}
	return fb
}

// Validate checks the configuration.
func (cfg ENCConfig) Validate() error {
	if cfg.MinCount < 2 {
		return fmt.Errorf("ENC minimal amino acid count should be at least 2, got %d", cfg.MinCount)
	}
	for k, f := range cfg.Fallback {
		if k < 2 {
			return fmt.Errorf("ENC fallback is defined for degeneracy class %d, should be at least 2", k)
		}
		if f <= 0 || f > 1 {
			return fmt.Errorf("ENC fallback for degeneracy class %d is %v, should be in (0, 1]", k, f)
		}
	}
	return nil
}

// homozygosity returns F = (n*sum(p^2) - 1)/(n - 1) for an amino acid.
func homozygosity(u *codon.Usage, aa int) float64 {
	n := float64(u.Family(aa))
	s2 := 0.0
	for _, c := range u.GCode.Codons(aa) {
		p := float64(u.Codon[c]) / n
		s2 += p * p
	}
	return (n*s2 - 1) / (n - 1)
}

// ENC returns the effective number of codons (Wright 1990). Amino
// acids are grouped by degeneracy; the number of amino acids in every
// class is divided by the average homozygosity of the class. The
// result does not exceed the number of sense codons.
func ENC(u *codon.Usage, cfg ENCConfig) Result {
	gcode := u.GCode
	if u.Sense() == 0 {
		return Undefined
	}
	minCount := cfg.MinCount
	if minCount < 2 {
		minCount = 2
	}

	fold := make([]int, bio.NCodon+1)
	sumF := make([]float64, bio.NCodon+1)
	nF := make([]int, bio.NCodon+1)
	for aa := 0; aa < bio.StopIndex; aa++ {
		k := gcode.AADegeneracy(aa)
		if k == 0 {
			continue
		}
		fold[k]++
		if k == 1 || u.Family(aa) < minCount {
			continue
		}
		if f := homozygosity(u, aa); f > minF {
			sumF[k] += f
			nF[k]++
		}
	}

	mean := func(k int) float64 {
		return sumF[k] / float64(nF[k])
	}

	nc := float64(fold[1])
	for k := 2; k < len(fold); k++ {
		if fold[k] == 0 {
			continue
		}
		var avg float64
		switch {
		case nF[k] > 0:
			avg = mean(k)
		case k == 3 && cfg.InterpolateThreeFold && fold[3] == 1 && nF[2] > 0 && nF[4] > 0:
			avg = (mean(2) + mean(4)) / 2
		case cfg.Fallback[k] > 0:
			avg = cfg.Fallback[k]
		default:
			return Undefined
		}
		nc += float64(fold[k]) / avg
	}
	if ns := float64(gcode.NSense); nc > ns {
		nc = ns
	}
	return Value(nc)
}

// ExpectedENC returns the effective number of codons expected under
// mutational bias only for a given GC3s (Wright 1990).
func ExpectedENC(gc3s float64) float64 {
	return 2 + gc3s + 29/(gc3s*gc3s+(1-gc3s)*(1-gc3s))
}
