// Package bio provides sequences, FASTA input and the genetic codes.
package bio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// ReadFasta reads FASTA records one by one and passes them to fn.
// The sequence name is the whole title line. Sequences are converted
// to upper case. Reading stops on the first
// error returned by fn.
func ReadFasta(rd io.Reader, fn func(Sequence) error) error {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(rd, template))
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return errors.New("unexpected sequence type")
		}
		var b bytes.Buffer
		b.Grow(len(s.Seq))
		for _, l := range s.Seq {
			if l == ' ' {
				continue
			}
			b.WriteByte(byte(l))
		}
		name := s.Name()
		if s.Desc != "" {
			name += " " + s.Desc
		}
		err := fn(Sequence{
			Name:     name,
			Sequence: strings.ToUpper(b.String()),
		})
		if err != nil {
			return err
		}
	}
	return sc.Error()
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

