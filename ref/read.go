package ref

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"bitbucket.org/Davydov/codonw/bio"
)

// readCodonValues reads 64 codon values. Two formats are accepted:
// whitespace separated pairs of codon and value in any order, or just
// 64 values listing codons in the built-in table order (TTT, TCT,
// TAT, TGT, TTC, ...). In the pair format missing codons are reported
// as not set.
func readCodonValues(rd io.Reader) (v [bio.NCodon]float64, set [bio.NCodon]bool, err error) {
	scanner := bufio.NewScanner(rd)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(words) == 0 {
		err = errors.New("empty codon table")
		return
	}

	if bio.CodonIndex(words[0]) == bio.NOCODON {
		if len(words) != bio.NCodon {
			err = fmt.Errorf("expected %d values, got %d", bio.NCodon, len(words))
			return
		}
		for i, w := range words {
			c := fromColumns(i)
			if v[c], err = strconv.ParseFloat(w, 64); err != nil {
				return
			}
			set[c] = true
		}
		return
	}

	if len(words)%2 != 0 {
		err = errors.New("codon table should contain codon and value pairs")
		return
	}
	for i := 0; i < len(words); i += 2 {
		c := bio.CodonIndex(words[i])
		if c == bio.NOCODON {
			err = fmt.Errorf("unknown codon %q", words[i])
			return
		}
		if set[c] {
			err = fmt.Errorf("codon %s is listed twice", bio.CodonString(c))
			return
		}
		if v[c], err = strconv.ParseFloat(words[i+1], 64); err != nil {
			return
		}
		set[c] = true
	}
	return
}

// ReadOptimalCodons reads an optimal codon table; classes are 1
// (rare), 2 (common) or 3 (optimal). Codons missing from a pair
// formatted table are common.
func ReadOptimalCodons(rd io.Reader, name string) (*OptimalCodons, error) {
	v, set, err := readCodonValues(rd)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	var class [bio.NCodon]Class
	for c := range v {
		class[c] = Common
		if !set[c] {
			continue
		}
		if v[c] != math.Trunc(v[c]) || v[c] < float64(Rare) || v[c] > float64(Optimal) {
			return nil, fmt.Errorf("%s: illegal class %v for codon %s, permissible values are 1 (rare), 2 (common) and 3 (optimal)",
				name, v[c], bio.CodonString(byte(c)))
		}
		class[c] = Class(v[c])
	}
	return NewOptimalCodons(name, "user file", class)
}

// ReadAdaptiveness reads a relative adaptiveness table. Every codon
// should be present.
func ReadAdaptiveness(rd io.Reader, name string) (*Adaptiveness, error) {
	v, set, err := readCodonValues(rd)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	for c, ok := range set {
		if !ok {
			return nil, fmt.Errorf("%s: no value for codon %s", name, bio.CodonString(byte(c)))
		}
	}
	return NewAdaptiveness(name, "user file", v)
}

// ReadScale reads an amino acid scale from pairs of one letter amino
// acid code and value. Every amino acid should be present.
func ReadScale(rd io.Reader, name string) (*Scale, error) {
	scanner := bufio.NewScanner(rd)
	scanner.Split(bufio.ScanWords)

	s := &Scale{Name: name}
	var set [bio.NAA]bool
	for scanner.Scan() {
		tok := scanner.Text()
		aa := -1
		if len(tok) == 1 {
			aa = bio.AAIndex(tok[0])
		}
		if aa < 0 || aa == bio.StopIndex {
			return nil, fmt.Errorf("%s: unknown amino acid %q", name, tok)
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("%s: no value for amino acid %s", name, tok)
		}
		x, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%s: value of amino acid %s is %v", name, tok, x)
		}
		s.V[aa] = x
		set[aa] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for aa := 0; aa < bio.StopIndex; aa++ {
		if !set[aa] {
			return nil, fmt.Errorf("%s: no value for amino acid %c", name, bio.AminoAcids[aa])
		}
	}
	return s, nil
}

// ReadOptimalCodonsFile reads an optimal codon table from a file.
func ReadOptimalCodonsFile(path string) (*OptimalCodons, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadOptimalCodons(f, filepath.Base(path))
}

// ReadAdaptivenessFile reads a relative adaptiveness table from a file.
func ReadAdaptivenessFile(path string) (*Adaptiveness, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAdaptiveness(f, filepath.Base(path))
}

// ReadScaleFile reads an amino acid scale from a file.
func ReadScaleFile(path string) (*Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadScale(f, filepath.Base(path))
}

// WriteAdaptiveness writes a table in the codon-value pair format.
func WriteAdaptiveness(w io.Writer, a *Adaptiveness) error {
	for c := 0; c < bio.NCodon; c++ {
		if _, err := fmt.Fprintf(w, "%s\t%.4f\n", bio.CodonString(byte(c)), a.W[c]); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptimalCodons writes a table in the codon-class pair format.
func WriteOptimalCodons(w io.Writer, oc *OptimalCodons) error {
	for c := 0; c < bio.NCodon; c++ {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", bio.CodonString(byte(c)), oc.Class[c]); err != nil {
			return err
		}
	}
	return nil
}
