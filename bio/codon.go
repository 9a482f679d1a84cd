package bio

// NCodon is the number of nucleotide triplets.
const NCodon = 64

// NOCODON marks a codon containing at least one ambiguous base.
const NOCODON = byte(255)

var (
	// Alphabet is the nucleotide alphabet in the order used for codon
	// numbering.
	Alphabet = [...]byte{'T', 'C', 'A', 'G'}
	// rAlphabet is reverse nucleotide alphabet (letter to a number),
	// lower case and U are accepted as well.
	rAlphabet [256]int8
	// numCodon maps codon numbers to codon strings.
	numCodon [NCodon]string
)

func init() {
	for i := range rAlphabet {
		rAlphabet[i] = -1
	}
	for i, l := range Alphabet {
		rAlphabet[l] = int8(i)
		rAlphabet[l+'a'-'A'] = int8(i)
	}
	rAlphabet['U'] = 0
	rAlphabet['u'] = 0

	i := 0
	for codon := range GetCodons() {
		numCodon[i] = codon
		i++
	}
}

// GetCodons returns a channel with every codon (64) in the T, C, A, G
// order.
func GetCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range Alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

// BaseIndex returns the number of a nucleotide (T=0, C=1, A=2, G=3) or
// -1 if the symbol is ambiguous.
func BaseIndex(b byte) int {
	return int(rAlphabet[b])
}

// CodonNum converts three nucleotides into a codon number. NOCODON
// is returned if any of the bases is ambiguous.
func CodonNum(b1, b2, b3 byte) byte {
	i1, i2, i3 := rAlphabet[b1], rAlphabet[b2], rAlphabet[b3]
	if i1 < 0 || i2 < 0 || i3 < 0 {
		return NOCODON
	}
	return byte(i1)*16 + byte(i2)*4 + byte(i3)
}

// CodonIndex converts a codon string into a codon number, NOCODON is
// returned for ambiguous or incomplete codons.
func CodonIndex(codon string) byte {
	if len(codon) != 3 {
		return NOCODON
	}
	return CodonNum(codon[0], codon[1], codon[2])
}

// CodonString returns the codon string for a codon number.
func CodonString(c byte) string {
	if int(c) >= NCodon {
		return "???"
	}
	return numCodon[c]
}

// CodonBase returns the base number at position pos (0, 1 or 2) of a
// codon.
func CodonBase(c byte, pos int) int {
	switch pos {
	case 0:
		return int(c) / 16
	case 1:
		return (int(c) / 4) % 4
	}
	return int(c) % 4
}
