package bio

import (
	"strings"
	"testing"
)

const fastaData = `>seq1 first sequence
ATGGCT
gctgct
TAA
>seq2
ATGNNNTGG
`

func TestReadFasta(tst *testing.T) {
	var seqs []Sequence
	err := ReadFasta(strings.NewReader(fastaData), func(seq Sequence) error {
		seqs = append(seqs, seq)
		return nil
	})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if len(seqs) != 2 {
		tst.Fatal("Expected 2 sequences, got", len(seqs))
	}
	if seqs[0].Name != "seq1 first sequence" {
		tst.Error("Expected seq1 first sequence, got", seqs[0].Name)
	}
	if seqs[1].Name != "seq2" {
		tst.Error("Expected seq2, got", seqs[1].Name)
	}
	if seqs[0].Sequence != "ATGGCTGCTGCTTAA" {
		tst.Error("Expected ATGGCTGCTGCTTAA, got", seqs[0].Sequence)
	}
	if seqs[1].Sequence != "ATGNNNTGG" {
		tst.Error("Expected ATGNNNTGG, got", seqs[1].Sequence)
	}
}

func TestCodonNumbering(tst *testing.T) {
	i := 0
	for codon := range GetCodons() {
		if c := CodonIndex(codon); int(c) != i {
			tst.Error("Codon", codon, "expected number", i, ", got", c)
		}
		if CodonString(byte(i)) != codon {
			tst.Error("Expected ", codon, ", got", CodonString(byte(i)))
		}
		i++
	}
	if i != NCodon {
		tst.Error("Expected 64 codons, got", i)
	}
	if CodonIndex("ugg") != CodonIndex("TGG") {
		tst.Error("Lower case and U should be accepted")
	}
	for _, bad := range []string{"ANG", "AT", "A-G", "RTG"} {
		if CodonIndex(bad) != NOCODON {
			tst.Error("Expected NOCODON for", bad)
		}
	}
	c := CodonIndex("GCA")
	if CodonBase(c, 0) != 3 || CodonBase(c, 1) != 1 || CodonBase(c, 2) != 2 {
		tst.Error("Wrong bases for GCA:", CodonBase(c, 0), CodonBase(c, 1), CodonBase(c, 2))
	}
}
