package indices

import (
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
)

// Base numbers.
const (
	T = iota
	C
	A
	G
)

// BaseComposition is the detailed base composition of a sequence.
// Stop codons are not counted.
type BaseComposition struct {
	// LenAA is the number of sense codons.
	LenAA int
	// LenSym is the number of synonymous codons (degeneracy > 1).
	LenSym int
	// GC is the G+C content of all positions.
	GC Result
	// GC3s is the G+C content of the third position of synonymous
	// codons.
	GC3s Result
	// GCn3s is the G+C content excluding the third position of
	// synonymous codons.
	GCn3s Result
	// GCPos is the G+C content at codon positions 1, 2 and 3.
	GCPos [3]Result
	// Base is the frequency of T, C, A and G at codon positions 1, 2
	// and 3.
	Base [3][4]Result
}

// silentCounts returns synonymous codon count and counts of
// synonymous codons ending with every base.
func silentCounts(u *codon.Usage) (total int, third [4]int) {
	for c, n := range u.Codon {
		if !u.GCode.Synonymous(byte(c)) {
			continue
		}
		third[bio.CodonBase(byte(c), 2)] += n
		total += n
	}
	return
}

// BaseComp computes the base composition.
func BaseComp(u *codon.Usage) (bc BaseComposition) {
	bc.LenAA = LAA(u)
	bc.LenSym = LSym(u)
	_, sil := silentCounts(u)

	gc := 0
	for pos := 0; pos < 3; pos++ {
		gcPos := u.Pos[pos][C] + u.Pos[pos][G]
		gc += gcPos
		bc.GCPos[pos] = ratio(float64(gcPos), float64(bc.LenAA))
		for b := range u.Pos[pos] {
			bc.Base[pos][b] = ratio(float64(u.Pos[pos][b]), float64(bc.LenAA))
		}
	}
	gcSil := sil[C] + sil[G]
	bc.GC = ratio(float64(gc), float64(3*bc.LenAA))
	bc.GC3s = GC3s(u)
	bc.GCn3s = ratio(float64(gc-gcSil), float64(3*bc.LenAA-bc.LenSym))
	return
}

// GC returns the G+C content of sense codons.
func GC(u *codon.Usage) Result {
	return BaseComp(u).GC
}

// GC3s returns the G+C content at synonymous third positions.
func GC3s(u *codon.Usage) Result {
	n, sil := silentCounts(u)
	return ratio(float64(sil[C]+sil[G]), float64(n))
}

// LSym returns the number of synonymous codons.
func LSym(u *codon.Usage) int {
	return u.Synonymous()
}

// LAA returns the number of sense codons.
func LAA(u *codon.Usage) int {
	return u.Sense()
}

// SilentBase returns T3s, C3s, A3s and G3s: the number of synonymous
// codons ending with a base divided by the number of codons of
// synonymous amino acids which could end with this base. Six-fold
// families are counted once per base.
func SilentBase(u *codon.Usage) (res [4]Result) {
	gcode := u.GCode
	_, sil := silentCounts(u)
	var could [4]int
	for aa := 0; aa < bio.StopIndex; aa++ {
		if gcode.AADegeneracy(aa) < 2 {
			continue
		}
		var done [4]bool
		for _, c := range gcode.Codons(aa) {
			b := bio.CodonBase(c, 2)
			if !done[b] {
				could[b] += u.AA[aa]
				done[b] = true
			}
		}
	}
	for b := range res {
		res[b] = ratio(float64(sil[b]), float64(could[b]))
	}
	return
}
