package indices

import (
	"math"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/dist"
	"bitbucket.org/Davydov/codonw/ref"
)

// CAI returns the codon adaptation index, the geometric mean of
// adaptiveness of synonymous codons. Stop codons and codons of
// single codon families are excluded.
func CAI(u *codon.Usage, a *ref.Adaptiveness) Result {
	sigma := 0.0
	total := 0
	for c, n := range u.Codon {
		if n == 0 || !u.GCode.Synonymous(byte(c)) {
			continue
		}
		sigma += float64(n) * math.Log(a.W[c])
		total += n
	}
	if total == 0 {
		return Undefined
	}
	return Value(math.Exp(sigma / float64(total)))
}

// hasInfo marks amino acids with a class designation among their
// synonymous codons.
func hasInfo(gcode *bio.GeneticCode, oc *ref.OptimalCodons, classes ...ref.Class) (info [bio.NAA]bool) {
	for c, cl := range oc.Class {
		if !gcode.Synonymous(byte(c)) {
			continue
		}
		for _, want := range classes {
			if cl == want {
				info[gcode.AAIndex(byte(c))] = true
			}
		}
	}
	return
}

// Fop returns the frequency of optimal codons. Only amino acids with
// at least one optimal codon are used. If factorRare is true, amino
// acids with rare codons are also used and rare codons are subtracted
// from optimal ones.
func Fop(u *codon.Usage, oc *ref.OptimalCodons, factorRare bool) Result {
	classes := []ref.Class{ref.Optimal}
	if factorRare {
		classes = append(classes, ref.Rare)
	}
	info := hasInfo(u.GCode, oc, classes...)

	var opt, common, rare int
	for c, n := range u.Codon {
		aa := u.GCode.AAIndex(byte(c))
		if !info[aa] {
			continue
		}
		switch oc.Class[c] {
		case ref.Optimal:
			opt += n
		case ref.Common:
			common += n
		case ref.Rare:
			rare += n
		}
	}
	total := float64(opt + common + rare)
	if factorRare {
		return ratio(float64(opt-rare), total)
	}
	return ratio(float64(opt), total)
}

// CBI returns the codon bias index of Bennetzen and Hall. For every
// optimal codon the expected count is the amino acid count divided
// by the degeneracy.
func CBI(u *codon.Usage, oc *ref.OptimalCodons) Result {
	gcode := u.GCode
	info := hasInfo(gcode, oc, ref.Optimal)

	var opt, total int
	exp := 0.0
	for c, n := range u.Codon {
		aa := gcode.AAIndex(byte(c))
		if !info[aa] {
			continue
		}
		total += n
		if oc.Class[c] == ref.Optimal {
			opt += n
			exp += float64(u.AA[aa]) / float64(gcode.AADegeneracy(aa))
		}
	}
	return ratio(float64(opt)-exp, float64(total)-exp)
}

// ScaledChi2 returns the chi-square statistic of deviation from the
// uniform synonymous codon usage divided by the number of synonymous
// codons, and the p-value of the unscaled statistic. Degrees of
// freedom are the sum of degeneracy minus one over amino acids
// present in the sequence.
func ScaledChi2(u *codon.Usage) (chi2, p Result) {
	gcode := u.GCode
	stat := 0.0
	df := 0
	n := 0
	for aa := 0; aa < bio.StopIndex; aa++ {
		k := gcode.AADegeneracy(aa)
		na := u.Family(aa)
		if k < 2 || na == 0 {
			continue
		}
		exp := float64(na) / float64(k)
		for _, c := range gcode.Codons(aa) {
			d := float64(u.Codon[c]) - exp
			stat += d * d / exp
		}
		df += k - 1
		n += na
	}
	if n == 0 {
		return Undefined, Undefined
	}
	return Value(stat / float64(n)), Value(dist.SurvivalChi2(stat, float64(df)))
}
