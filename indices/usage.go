package indices

import (
	"github.com/gonum/floats"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
)

// frequencies normalizes counts to sum to one. All values are
// undefined if there are no counts.
func frequencies(counts []int) []Result {
	x := make([]float64, len(counts))
	for i, c := range counts {
		x[i] = float64(c)
	}
	total := floats.Sum(x)
	res := make([]Result, len(counts))
	for i := range x {
		res[i] = ratio(x[i], total)
	}
	return res
}

// CodonFrequencies returns codon usage normalized by the number of
// counted codons.
func CodonFrequencies(u *codon.Usage) (res [bio.NCodon]Result) {
	copy(res[:], frequencies(u.Codon[:]))
	return
}

// AAFrequencies returns amino acid usage normalized by the number of
// counted codons (stop codons included).
func AAFrequencies(u *codon.Usage) (res [bio.NAA]Result) {
	copy(res[:], frequencies(u.AA[:]))
	return
}

// RSCU returns relative synonymous codon usage: codon count times
// degeneracy divided by the family count. Codons of families which
// are absent get Undefined.
func RSCU(u *codon.Usage) (res [bio.NCodon]Result) {
	gcode := u.GCode
	for c := range res {
		n := u.FamilyOf(byte(c))
		res[c] = ratio(float64(u.Codon[c]*gcode.Degeneracy(byte(c))), float64(n))
	}
	return
}

// RAAU returns relative amino acid usage, amino acid counts normalized
// by the number of non-stop residues. The stop entry is zero.
func RAAU(u *codon.Usage) (res [bio.NAA]Result) {
	copy(res[:bio.StopIndex], frequencies(u.AA[:bio.StopIndex]))
	res[bio.StopIndex] = Undefined
	if res[0].Defined {
		res[bio.StopIndex] = Value(0)
	}
	return
}

// AllFrames is the index of pooled dinucleotide frequencies returned
// by Dinucleotides.
const AllFrames = codon.NFrames

// Dinucleotides returns dinucleotide frequencies for frames 1:2, 2:3,
// 3:1 and all frames pooled. Each frame is normalized by its own
// number of observations.
func Dinucleotides(u *codon.Usage) (res [codon.NFrames + 1][codon.NDinuc]Result) {
	var all [codon.NDinuc]int
	for f := 0; f < codon.NFrames; f++ {
		copy(res[f][:], frequencies(u.Dinuc[f][:]))
		for d, n := range u.Dinuc[f] {
			all[d] += n
		}
	}
	copy(res[AllFrames][:], frequencies(all[:]))
	return
}
