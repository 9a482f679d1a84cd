package codon

import (
	"testing"

	"bitbucket.org/Davydov/codonw/bio"
)

var standard = bio.GeneticCodes[1]

func TestNewSequence(tst *testing.T) {
	seq := NewSequence("s", "ATGGCTGCTGCTTAA", standard, false)
	if seq.Length() != 4 {
		tst.Fatal("Expected 4 codons, got", seq.Length())
	}
	if !seq.StopTrimmed || !seq.TerminalStop {
		tst.Error("Terminal stop codon should be trimmed")
	}
	if len(seq.Warnings()) != 0 {
		tst.Error("Expected no warnings, got", seq.Warnings())
	}

	seq = NewSequence("s", "ATGGCTGCTGCTTAA", standard, true)
	if seq.Length() != 5 || seq.Kind(4) != Stop || seq.NInternalStops() != 0 {
		tst.Error("Terminal stop codon should be kept")
	}

	seq = NewSequence("s", "ATGNNAGCTTGAGCTGC", standard, false)
	if seq.Length() != 5 {
		tst.Fatal("Expected 5 codons, got", seq.Length())
	}
	if seq.NTruncated != 2 || seq.NAmbiguous != 1 || seq.NAmbiguousBases != 2 {
		tst.Error("Wrong diagnostics:", seq.NTruncated, seq.NAmbiguous, seq.NAmbiguousBases)
	}
	if seq.Kind(1) != Ambiguous || seq.Kind(3) != Stop || seq.Kind(0) != Valid {
		tst.Error("Wrong codon kinds")
	}
	if seq.NInternalStops() != 1 {
		tst.Error("Expected 1 internal stop, got", seq.NInternalStops())
	}
	if len(seq.Warnings()) != 3 {
		tst.Error("Expected 3 warnings, got", seq.Warnings())
	}
	if p := seq.Translate(); p != "MXA*A" {
		tst.Error("Expected MXA*A, got", p)
	}
}

func TestEmptySequence(tst *testing.T) {
	for _, s := range []string{"", "A", "AT"} {
		seq := NewSequence("e", s, standard, false)
		if seq.Length() != 0 {
			tst.Error("Expected empty sequence for", s)
		}
		u := Tally(seq)
		if u.Total() != 0 || u.DinucTotal(Frame12) != 0 || u.DinucTotal(Frame31) != 0 {
			tst.Error("Expected empty usage for", s)
		}
	}
}

func TestTally(tst *testing.T) {
	seq := NewSequence("s", "ATGGCTGCTGCTTAA", standard, false)
	u := Tally(seq)
	if u.Codon[bio.CodonIndex("ATG")] != 1 || u.Codon[bio.CodonIndex("GCT")] != 3 {
		tst.Error("Wrong codon usage")
	}
	if u.Total() != 4 || u.Codon[bio.CodonIndex("TAA")] != 0 {
		tst.Error("Expected 4 codons, got", u.Total())
	}
	if u.AA[bio.AAIndex('M')] != 1 || u.AA[bio.AAIndex('A')] != 3 || u.AA[bio.StopIndex] != 0 {
		tst.Error("Wrong amino acid usage", u.AA)
	}
	sense := 0
	for aa := 0; aa < bio.StopIndex; aa++ {
		sense += u.AA[aa]
	}
	if sense != u.Sense() {
		tst.Error("Expected ", u.Sense(), ", got", sense)
	}
	if n := u.DinucTotal(Frame12); n != 4 {
		tst.Error("Expected 4 dinucleotides in frame 1:2, got", n)
	}
	if n := u.DinucTotal(Frame31); n != 3 {
		tst.Error("Expected 3 bridge dinucleotides, got", n)
	}
	// GC at 1:2 in all three GCT codons
	if n := u.Dinuc[Frame12][3*4+1]; n != 3 {
		tst.Error("Expected 3 GC dinucleotides, got", n)
	}
	// G of ATG and T of every GCT bridge to G
	if u.Dinuc[Frame31][3*4+3] != 1 || u.Dinuc[Frame31][0*4+3] != 2 {
		tst.Error("Wrong bridge dinucleotides", u.Dinuc[Frame31])
	}
	if u.Pos[2][0] != 3 || u.Pos[2][3] != 1 {
		tst.Error("Wrong third position counts", u.Pos[2])
	}
	if DinucString(3*4+1) != "GC" {
		tst.Error("Expected GC, got", DinucString(3*4+1))
	}
}

func TestTallyAmbiguous(tst *testing.T) {
	seq := NewSequence("s", "GCTNNNGCTGCT", standard, false)
	u := Tally(seq)
	if u.Excluded != 1 || u.Total() != 3 {
		tst.Error("Expected 1 excluded and 3 counted codons, got", u.Excluded, u.Total())
	}
	// no bridge across the ambiguous codon
	if n := u.DinucTotal(Frame31); n != 1 {
		tst.Error("Expected 1 bridge dinucleotide, got", n)
	}
}

func TestStopsSkipBaseCounts(tst *testing.T) {
	seq := NewSequence("s", "GCTTAGGCT", standard, true)
	u := Tally(seq)
	if u.AA[bio.StopIndex] != 1 || u.Sense() != 2 {
		tst.Error("Wrong stop counts")
	}
	n := 0
	for _, c := range u.Pos[0] {
		n += c
	}
	if n != 2 {
		tst.Error("Expected 2 bases at the first position, got", n)
	}
}

func TestUsageAdd(tst *testing.T) {
	a := NewSequence("a", "ATGGCTTAA", standard, false)
	b := NewSequence("b", "ATGGCCTGA", standard, false)
	total := Tally(a)
	if err := total.Add(Tally(b)); err != nil {
		tst.Fatal("Error: ", err)
	}
	if total.Total() != 4 || total.Family(bio.AAIndex('A')) != 2 {
		tst.Error("Wrong summed usage")
	}
	if n := total.DinucTotal(Frame31); n != 2 {
		tst.Error("Expected 2 bridge dinucleotides, got", n)
	}
	if n := total.DinucTotal(Frame12); n != 4 {
		tst.Error("Expected 4 dinucleotides at positions 1:2, got", n)
	}
	if total.Synonymous() != 2 {
		tst.Error("Expected 2 synonymous codons, got", total.Synonymous())
	}
	if err := total.Add(&Usage{GCode: bio.GeneticCodes[2]}); err == nil {
		tst.Error("Expected error for a different genetic code")
	}
}
