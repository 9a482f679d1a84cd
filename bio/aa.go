package bio

const (
	// AminoAcids lists amino acids in the order used for amino acid
	// vectors. The last symbol is the stop codon.
	AminoAcids = "ACDEFGHIKLMNPQRSTVWY*"
	// NAA is the number of amino acid vector elements (20 + stop).
	NAA = len(AminoAcids)
	// STOP is the stop codon symbol.
	STOP = byte('*')
	// StopIndex is the index of the stop codon in amino acid vectors.
	StopIndex = NAA - 1
	// UnknownAA is used when translating ambiguous codons.
	UnknownAA = byte('X')
)

var (
	// AA3 are three letter amino acid names in AminoAcids order.
	AA3 = [NAA]string{
		"Ala", "Cys", "Asp", "Glu", "Phe", "Gly", "His", "Ile", "Lys", "Leu",
		"Met", "Asn", "Pro", "Gln", "Arg", "Ser", "Thr", "Val", "Trp", "Tyr",
		"TER",
	}
	rAminoAcids [256]int8
)

func init() {
	for i := range rAminoAcids {
		rAminoAcids[i] = -1
	}
	for i := 0; i < NAA; i++ {
		rAminoAcids[AminoAcids[i]] = int8(i)
	}
}

// AAIndex returns index of the amino acid in the AminoAcids, or -1.
func AAIndex(aa byte) int {
	return int(rAminoAcids[aa])
}
