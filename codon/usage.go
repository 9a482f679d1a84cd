package codon

import (
	"errors"

	"bitbucket.org/Davydov/codonw/bio"
)

// NDinuc is the number of dinucleotides.
const NDinuc = 16

// Dinucleotide frames.
const (
	// Frame12 is the dinucleotide at codon positions 1 and 2.
	Frame12 = iota
	// Frame23 is the dinucleotide at codon positions 2 and 3.
	Frame23
	// Frame31 is the bridge between position 3 of a codon and
	// position 1 of the next codon.
	Frame31
	// NFrames is the number of dinucleotide frames.
	NFrames
)

// Usage holds raw tallies of a codon sequence. Ambiguous codons are
// not counted anywhere except Excluded.
type Usage struct {
	// GCode is the genetic code used for counting.
	GCode *bio.GeneticCode
	// Codon is the codon usage (stop codons included).
	Codon [bio.NCodon]int
	// AA is the amino acid usage, STOP at bio.StopIndex.
	AA [bio.NAA]int
	// Pos is the base (T, C, A, G) usage at codon positions 1, 2 and
	// 3 of valid non-stop codons.
	Pos [3][4]int
	// Dinuc is the dinucleotide usage for every frame, dinucleotide
	// number is 4*first + second.
	Dinuc [NFrames][NDinuc]int
	// Excluded is the number of ambiguous codons.
	Excluded int
}

// DinucString returns a dinucleotide by its number.
func DinucString(d int) string {
	return string([]byte{bio.Alphabet[d/4], bio.Alphabet[d%4]})
}

// Tally counts usage of a codon sequence.
func Tally(seq *Sequence) *Usage {
	u := &Usage{GCode: seq.GCode}
	prev := bio.NOCODON
	for _, c := range seq.Codons {
		if c == bio.NOCODON {
			u.Excluded++
			prev = c
			continue
		}
		u.add(c, 1)
		b1, b2, b3 := bio.CodonBase(c, 0), bio.CodonBase(c, 1), bio.CodonBase(c, 2)
		u.Dinuc[Frame12][b1*4+b2]++
		u.Dinuc[Frame23][b2*4+b3]++
		if prev != bio.NOCODON {
			u.Dinuc[Frame31][bio.CodonBase(prev, 2)*4+b1]++
		}
		prev = c
	}
	return u
}

// add adds n codons c to codon, amino acid and positional counts.
func (u *Usage) add(c byte, n int) {
	u.Codon[c] += n
	aa := u.GCode.AAIndex(c)
	u.AA[aa] += n
	if aa == bio.StopIndex {
		return
	}
	for pos := 0; pos < 3; pos++ {
		u.Pos[pos][bio.CodonBase(c, pos)] += n
	}
}

// Add adds usage of another sequence, both must use the same
// genetic code.
func (u *Usage) Add(o *Usage) error {
	if u.GCode != o.GCode {
		return errors.New("cannot add usage counted with a different genetic code")
	}
	for c := range u.Codon {
		u.Codon[c] += o.Codon[c]
	}
	for aa := range u.AA {
		u.AA[aa] += o.AA[aa]
	}
	for pos := range u.Pos {
		for b := range u.Pos[pos] {
			u.Pos[pos][b] += o.Pos[pos][b]
		}
	}
	for f := range u.Dinuc {
		for d := range u.Dinuc[f] {
			u.Dinuc[f][d] += o.Dinuc[f][d]
		}
	}
	u.Excluded += o.Excluded
	return nil
}

// Total returns the number of counted codons including stop codons.
func (u *Usage) Total() (n int) {
	for _, c := range u.Codon {
		n += c
	}
	return
}

// Sense returns the number of counted non-stop codons.
func (u *Usage) Sense() int {
	return u.Total() - u.AA[bio.StopIndex]
}

// Family returns the number of codons of an amino acid family (by
// amino acid vector index).
func (u *Usage) Family(aa int) (n int) {
	for _, c := range u.GCode.Codons(aa) {
		n += u.Codon[c]
	}
	return
}

// FamilyOf returns the number of codons in the synonymous family of
// codon c.
func (u *Usage) FamilyOf(c byte) int {
	return u.Family(u.GCode.AAIndex(c))
}

// Synonymous returns the number of counted codons belonging to
// non-stop families with degeneracy above one.
func (u *Usage) Synonymous() (n int) {
	for c, cnt := range u.Codon {
		if u.GCode.Synonymous(byte(c)) {
			n += cnt
		}
	}
	return
}

// DinucTotal returns the number of dinucleotides counted in a frame.
func (u *Usage) DinucTotal(frame int) (n int) {
	for _, c := range u.Dinuc[frame] {
		n += c
	}
	return
}
