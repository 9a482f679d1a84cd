package ref

import "bitbucket.org/Davydov/codonw/bio"

var (
	// FopSets are the built-in optimal codon sets.
	FopSets = map[string]*OptimalCodons{}
	// CAISets are the built-in relative adaptiveness sets.
	CAISets = map[string]*Adaptiveness{}

	// KyteDoolittle is the Kyte and Doolittle (1982) hydropathy scale.
	KyteDoolittle = newScale("Kyte-Doolittle", map[byte]float64{
		'A': 1.8, 'C': 2.5, 'D': -3.5, 'E': -3.5, 'F': 2.8,
		'G': -0.4, 'H': -3.2, 'I': 4.5, 'K': -3.9, 'L': 3.8,
		'M': 1.9, 'N': -3.5, 'P': -1.6, 'Q': -3.5, 'R': -4.5,
		'S': -0.8, 'T': -0.7, 'V': 4.2, 'W': -0.9, 'Y': -1.3,
	})

	// AromaticFYW flags phenylalanine, tyrosine and tryptophan.
	AromaticFYW = newFlags("aromatic", "FYW")
)

func init() {
	for _, d := range fopData0 {
		var class [bio.NCodon]Class
		for i, cl := range d.class {
			class[fromColumns(i)] = cl
		}
		oc, err := NewOptimalCodons(d.name, d.ref, class)
		if err != nil {
			panic(err)
		}
		FopSets[d.key] = oc
	}
	for _, d := range caiData0 {
		var w [bio.NCodon]float64
		for i, v := range d.w {
			w[fromColumns(i)] = v
		}
		a, err := NewAdaptiveness(d.name, d.ref, w)
		if err != nil {
			panic(err)
		}
		CAISets[d.key] = a
	}
}

func newScale(name string, v map[byte]float64) *Scale {
	s := &Scale{Name: name}
	for aa, x := range v {
		s.V[bio.AAIndex(aa)] = x
	}
	return s
}

func newFlags(name string, aas string) *Flags {
	f := &Flags{Name: name}
	for i := range aas {
		f.V[bio.AAIndex(aas[i])] = true
	}
	return f
}
