// Package codon converts nucleotide sequences into validated codon
// sequences and counts codon, amino acid, base and dinucleotide usage.
package codon

import (
	"bytes"
	"fmt"

	"bitbucket.org/Davydov/codonw/bio"
)

// Kind is a codon tag.
type Kind int

const (
	// Valid is an unambiguous sense codon.
	Valid Kind = iota
	// Ambiguous codon contains a base other than A, C, G, T or U.
	Ambiguous
	// Stop is a stop codon under the sequence genetic code.
	Stop
)

// Sequence is a coding sequence split into codons. It is not
// modified after creation.
type Sequence struct {
	// Name is the sequence title.
	Name string
	// Codons are codon numbers, bio.NOCODON marks ambiguous codons.
	Codons []byte
	// GCode is the genetic code used for validation.
	GCode *bio.GeneticCode
	// NAmbiguous is the number of ambiguous codons.
	NAmbiguous int
	// NAmbiguousBases is the number of ambiguous bases in complete
	// codons.
	NAmbiguousBases int
	// NTruncated is the number of trailing bases (1 or 2) which do
	// not form a complete codon.
	NTruncated int
	// TerminalStop is true if the last complete codon is a stop
	// codon.
	TerminalStop bool
	// StopTrimmed is true if the terminal stop codon was removed.
	StopTrimmed bool
}

// NewSequence creates a codon sequence. Trailing partial codon is
// dropped. If keepStop is false, terminal stop codon is removed.
func NewSequence(name, nseq string, gcode *bio.GeneticCode, keepStop bool) *Sequence {
	n := len(nseq) / 3
	seq := &Sequence{
		Name:       name,
		Codons:     make([]byte, 0, n),
		GCode:      gcode,
		NTruncated: len(nseq) % 3,
	}
	for i := 0; i < n*3; i += 3 {
		c := bio.CodonNum(nseq[i], nseq[i+1], nseq[i+2])
		if c == bio.NOCODON {
			seq.NAmbiguous++
			for _, b := range []byte(nseq[i : i+3]) {
				if bio.BaseIndex(b) < 0 {
					seq.NAmbiguousBases++
				}
			}
		}
		seq.Codons = append(seq.Codons, c)
	}
	if n > 0 && gcode.IsStop(seq.Codons[n-1]) {
		seq.TerminalStop = true
		if !keepStop {
			seq.Codons = seq.Codons[:n-1]
			seq.StopTrimmed = true
		}
	}
	return seq
}

// Length returns the number of codons.
func (seq *Sequence) Length() int {
	return len(seq.Codons)
}

// Kind returns the tag of the i-th codon.
func (seq *Sequence) Kind(i int) Kind {
	c := seq.Codons[i]
	switch {
	case c == bio.NOCODON:
		return Ambiguous
	case seq.GCode.IsStop(c):
		return Stop
	}
	return Valid
}

// NInternalStops returns the number of stop codons which are not
// the terminal codon of the original sequence.
func (seq *Sequence) NInternalStops() (n int) {
	for i := range seq.Codons {
		if seq.Kind(i) == Stop {
			n++
		}
	}
	if seq.TerminalStop && !seq.StopTrimmed {
		n--
	}
	return
}

// StartOK tests if the first codon is an initiation codon.
func (seq *Sequence) StartOK() bool {
	return len(seq.Codons) > 0 && seq.GCode.IsStart(seq.Codons[0])
}

// Warnings returns human readable problems found in the sequence.
// None of them prevents the analysis.
func (seq *Sequence) Warnings() (w []string) {
	if len(seq.Codons) == 0 {
		return []string{"no complete codons"}
	}
	if !seq.StartOK() {
		w = append(w, fmt.Sprintf("first codon %s is not a start codon", bio.CodonString(seq.Codons[0])))
	}
	if n := seq.NInternalStops(); n > 0 {
		w = append(w, fmt.Sprintf("%d internal stop codon(s)", n))
	}
	if !seq.TerminalStop && seq.NTruncated == 0 {
		w = append(w, "not terminated with a stop codon")
	}
	if seq.NTruncated > 0 {
		w = append(w, fmt.Sprintf("last codon is partial, %d base(s) dropped", seq.NTruncated))
	}
	if seq.NAmbiguous > 0 {
		w = append(w, fmt.Sprintf("%d non-translatable codon(s)", seq.NAmbiguous))
	}
	return
}

// Translate returns the conceptual translation, ambiguous codons are
// translated as bio.UnknownAA.
func (seq *Sequence) Translate() string {
	var b bytes.Buffer
	b.Grow(len(seq.Codons))
	for _, c := range seq.Codons {
		b.WriteByte(seq.GCode.Translate(c))
	}
	return b.String()
}

func (seq *Sequence) String() (s string) {
	var b bytes.Buffer
	for _, c := range seq.Codons {
		b.WriteString(bio.CodonString(c) + " ")
	}
	s = ">" + seq.Name + "\n" + bio.Wrap(b.String(), 80)
	return
}

