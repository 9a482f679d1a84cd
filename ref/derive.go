package ref

import (
	"errors"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
)

// AdaptivenessFromUsage computes relative adaptiveness from codon
// usage of a reference gene set (usually highly expressed genes). The
// value of a codon is its count divided by the count of the most used
// codon of the same synonymous family. Stop codons and single codon
// families get 1. Codons of families absent from the reference set
// get the minimal value.
func AdaptivenessFromUsage(name string, u *codon.Usage) (*Adaptiveness, error) {
	gcode := u.GCode
	var w [bio.NCodon]float64
	found := false
	for aa := 0; aa < bio.NAA; aa++ {
		codons := gcode.Codons(aa)
		if aa == bio.StopIndex || len(codons) == 1 {
			for _, c := range codons {
				w[c] = 1
			}
			continue
		}
		max := 0
		for _, c := range codons {
			if u.Codon[c] > max {
				max = u.Codon[c]
			}
		}
		if max == 0 {
			log.Warningf("%s: no %s codons in the reference set", name, bio.AA3[aa])
			continue
		}
		found = true
		for _, c := range codons {
			w[c] = float64(u.Codon[c]) / float64(max)
		}
	}
	if !found {
		return nil, errors.New(name + ": reference set has no synonymous codons")
	}
	return NewAdaptiveness(name, "computed from reference genes", w)
}
