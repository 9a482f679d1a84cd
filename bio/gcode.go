package bio

import (
	"fmt"
)

// GeneticCode is a codon translation table. Alternative codes are
// different instances of this type. A GeneticCode is never modified
// after creation and can be shared between goroutines.
type GeneticCode struct {
	// ID is the NCBI genetic code id.
	ID int
	// Name is the genetic code name.
	Name string
	// ShortName is a short name of the genetic code, can be empty.
	ShortName string
	// Ncbieaa is the 64 letter translation in T, C, A, G order.
	Ncbieaa string
	// Sncbieaa marks start codons with 'M'.
	Sncbieaa string
	// NSense is the number of non-stop codons.
	NSense int

	aa         [NCodon]byte
	aaIndex    [NCodon]int
	degeneracy [NCodon]int
	family     [NAA][]byte
}

// newGeneticCode creates a built-in genetic code and panics if the
// tables are malformed.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	gc, err := NewGeneticCode(id, name, shortName, ncbieaa, sncbieaa)
	if err != nil {
		panic(err)
	}
	return gc
}

// NewGeneticCode creates a genetic code from NCBI style translation
// strings. An error is returned if the tables are malformed.
func NewGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) (*GeneticCode, error) {
	if len(ncbieaa) != NCodon {
		return nil, fmt.Errorf("genetic code %d: translation has %d symbols, expected %d", id, len(ncbieaa), NCodon)
	}
	if sncbieaa != "" && len(sncbieaa) != NCodon {
		return nil, fmt.Errorf("genetic code %d: start table has %d symbols, expected %d", id, len(sncbieaa), NCodon)
	}
	gc := &GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Ncbieaa:   ncbieaa,
		Sncbieaa:  sncbieaa,
	}
	for c := 0; c < NCodon; c++ {
		aa := ncbieaa[c]
		i := AAIndex(aa)
		if i < 0 {
			return nil, fmt.Errorf("genetic code %d: unknown amino acid '%c' for codon %s", id, aa, CodonString(byte(c)))
		}
		gc.aa[c] = aa
		gc.aaIndex[c] = i
		gc.family[i] = append(gc.family[i], byte(c))
		if aa != STOP {
			gc.NSense++
		}
	}
	if gc.NSense == 0 {
		return nil, fmt.Errorf("genetic code %d: no sense codons", id)
	}
	for c := 0; c < NCodon; c++ {
		gc.degeneracy[c] = len(gc.family[gc.aaIndex[c]])
	}
	return gc, nil
}

// String returns the genetic code id and name.
func (gc *GeneticCode) String() string {
	return fmt.Sprintf("%d (%s)", gc.ID, gc.Name)
}

// Translate returns the amino acid encoded by a codon number, STOP
// for stop codons and UnknownAA for NOCODON.
func (gc *GeneticCode) Translate(c byte) byte {
	if int(c) >= NCodon {
		return UnknownAA
	}
	return gc.aa[c]
}

// AAIndex returns the amino acid vector index of a codon, -1 for
// NOCODON.
func (gc *GeneticCode) AAIndex(c byte) int {
	if int(c) >= NCodon {
		return -1
	}
	return gc.aaIndex[c]
}

// IsStop tests if the codon is a stop codon.
func (gc *GeneticCode) IsStop(c byte) bool {
	return int(c) < NCodon && gc.aa[c] == STOP
}

// IsStart tests if the codon is an initiation codon. If the start
// table is missing only ATG is considered a start codon.
func (gc *GeneticCode) IsStart(c byte) bool {
	if int(c) >= NCodon {
		return false
	}
	if gc.Sncbieaa == "" {
		return CodonString(c) == "ATG"
	}
	return gc.Sncbieaa[c] == 'M'
}

// Degeneracy returns the size of the synonymous family of a codon.
func (gc *GeneticCode) Degeneracy(c byte) int {
	if int(c) >= NCodon {
		return 0
	}
	return gc.degeneracy[c]
}

// AADegeneracy returns the number of codons encoding an amino acid
// (by amino acid vector index).
func (gc *GeneticCode) AADegeneracy(aa int) int {
	if aa < 0 || aa >= NAA {
		return 0
	}
	return len(gc.family[aa])
}

// Codons returns codons of the synonymous family of an amino acid
// (by amino acid vector index). The slice must not be modified.
func (gc *GeneticCode) Codons(aa int) []byte {
	if aa < 0 || aa >= NAA {
		return nil
	}
	return gc.family[aa]
}

// Synonymous tests if the codon belongs to a non-stop family with
// a choice of codons.
func (gc *GeneticCode) Synonymous(c byte) bool {
	return int(c) < NCodon && gc.aa[c] != STOP && gc.degeneracy[c] > 1
}

