package indices

import (
	"github.com/gonum/floats"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

// residueFractions returns fractions of non-stop residues, ok is
// false if there are none.
func residueFractions(u *codon.Usage) (fr []float64, ok bool) {
	fr = make([]float64, bio.StopIndex)
	for aa := range fr {
		fr[aa] = float64(u.AA[aa])
	}
	total := floats.Sum(fr)
	if total == 0 {
		return nil, false
	}
	floats.Scale(1/total, fr)
	return fr, true
}

// Gravy returns the mean hydropathy of the translated residues.
func Gravy(u *codon.Usage, s *ref.Scale) Result {
	fr, ok := residueFractions(u)
	if !ok {
		return Undefined
	}
	return Value(floats.Dot(fr, s.V[:bio.StopIndex]))
}

// Aromaticity returns the fraction of aromatic residues.
func Aromaticity(u *codon.Usage, f *ref.Flags) Result {
	fr, ok := residueFractions(u)
	if !ok {
		return Undefined
	}
	a := 0.0
	for aa, x := range fr {
		if f.V[aa] {
			a += x
		}
	}
	return Value(a)
}
