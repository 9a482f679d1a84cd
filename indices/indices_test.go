package indices

import (
	"encoding/json"
	"math"
	"testing"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

const smallDiff = 1e-6

var standard = bio.GeneticCodes[1]

func tally(nseq string) *codon.Usage {
	return codon.Tally(codon.NewSequence("test", nseq, standard, false))
}

func checkResult(tst *testing.T, name string, r Result, v float64) {
	if !r.Defined {
		tst.Error(name, ": expected", v, ", got undefined")
		return
	}
	if math.Abs(r.Value-v) > smallDiff {
		tst.Error(name, ": expected", v, ", got", r.Value)
	}
}

func checkUndefined(tst *testing.T, name string, r Result) {
	if r.Defined {
		tst.Error(name, ": expected undefined, got", r.Value)
	}
}

func TestRSCU(tst *testing.T) {
	u := tally("ATGGCTGCTGCTTAA")
	rscu := RSCU(u)
	checkResult(tst, "GCT", rscu[bio.CodonIndex("GCT")], 4)
	for _, c := range []string{"GCC", "GCA", "GCG"} {
		checkResult(tst, c, rscu[bio.CodonIndex(c)], 0)
	}
	checkResult(tst, "ATG", rscu[bio.CodonIndex("ATG")], 1)
	checkUndefined(tst, "TTT", rscu[bio.CodonIndex("TTT")])

	u = tally("GCTGCCGCCAAAAAGCTGCTTTTATCT")
	rscu = RSCU(u)
	for aa := 0; aa < bio.StopIndex; aa++ {
		if u.Family(aa) == 0 {
			continue
		}
		sum := 0.0
		for _, c := range standard.Codons(aa) {
			sum += rscu[c].Value
		}
		if math.Abs(sum-float64(standard.AADegeneracy(aa))) > smallDiff {
			tst.Error("Amino acid", bio.AA3[aa], ": RSCU sum is", sum)
		}
	}
}

func TestAminoAcidUsage(tst *testing.T) {
	u := tally("ATGGCTGCTGCTTGGTGAAAA")
	raau := RAAU(u)
	sum := 0.0
	for aa := 0; aa < bio.StopIndex; aa++ {
		sum += raau[aa].Value
	}
	checkResult(tst, "RAAU sum", Value(sum), 1)
	checkResult(tst, "RAAU Ala", raau[bio.AAIndex('A')], 0.5)
	checkResult(tst, "RAAU stop", raau[bio.StopIndex], 0)

	aau := AAFrequencies(u)
	checkResult(tst, "AAU stop", aau[bio.StopIndex], 1.0/7)
	cu := CodonFrequencies(u)
	checkResult(tst, "GCT", cu[bio.CodonIndex("GCT")], 3.0/7)
}

func TestBaseComp(tst *testing.T) {
	u := tally("GCCGCTGCAGCG")
	checkResult(tst, "GC3s", GC3s(u), 0.5)
	bc := BaseComp(u)
	if bc.LenAA != 4 || bc.LenSym != 4 {
		tst.Error("Expected 4 and 4, got", bc.LenAA, bc.LenSym)
	}
	checkResult(tst, "GC", bc.GC, 10.0/12)
	checkResult(tst, "GCn3s", bc.GCn3s, 1)
	checkResult(tst, "GC1", bc.GCPos[0], 1)
	checkResult(tst, "GC3", bc.GCPos[2], 0.5)
	checkResult(tst, "T3", bc.Base[2][T], 0.25)
	checkResult(tst, "G1", bc.Base[0][G], 1)

	// non-degenerate codons count in GC3 but not in GC3s
	u = tally("GCTATGTGG")
	checkResult(tst, "GC3s", GC3s(u), 0)
	checkResult(tst, "GC3", BaseComp(u).GCPos[2], 2.0/3)
	if LSym(u) != 1 || LAA(u) != 3 {
		tst.Error("Expected L_sym=1 and L_aa=3, got", LSym(u), LAA(u))
	}
}

func TestSilentBase(tst *testing.T) {
	sb := SilentBase(tally("GCTGCCTTT"))
	checkResult(tst, "T3s", sb[T], 2.0/3)
	checkResult(tst, "C3s", sb[C], 1.0/3)
	checkResult(tst, "A3s", sb[A], 0)
	checkResult(tst, "G3s", sb[G], 0)
}

func TestDinucleotides(tst *testing.T) {
	d := Dinucleotides(tally("ATGGCTGCTGCTTAA"))
	// 4 pairs in frames 1:2 and 2:3, 3 bridges
	checkResult(tst, "GC 1:2", d[codon.Frame12][3*4+1], 0.75)
	checkResult(tst, "TG 3:1", d[codon.Frame31][0*4+3], 2.0/3)
	checkResult(tst, "GC all", d[AllFrames][3*4+1], 3.0/11)
	checkUndefined(tst, "empty", Dinucleotides(tally(""))[codon.Frame12][0])
}

func testTables() (*ref.Adaptiveness, *ref.OptimalCodons) {
	var w [bio.NCodon]float64
	var class [bio.NCodon]ref.Class
	for c := range w {
		w[c] = 1
		class[c] = ref.Common
	}
	w[bio.CodonIndex("GCC")] = 0.25
	w[bio.CodonIndex("ATG")] = 0.5
	class[bio.CodonIndex("GCT")] = ref.Optimal
	class[bio.CodonIndex("GCC")] = ref.Rare
	class[bio.CodonIndex("TTT")] = ref.Rare
	a, _ := ref.NewAdaptiveness("test", "", w)
	oc, _ := ref.NewOptimalCodons("test", "", class)
	return a, oc
}

func TestCAI(tst *testing.T) {
	a, _ := testTables()
	// ATG is not synonymous and is not used
	checkResult(tst, "CAI", CAI(tally("GCTGCCATG"), a), 0.5)
	checkUndefined(tst, "CAI", CAI(tally("ATG"), a))
	checkUndefined(tst, "CAI", CAI(tally(""), a))
}

func TestFopCBI(tst *testing.T) {
	_, oc := testTables()
	u := tally("GCTGCTGCCGCAATGTTT")
	checkResult(tst, "Fop", Fop(u, oc, false), 0.5)
	checkResult(tst, "modified Fop", Fop(u, oc, true), 0)
	checkResult(tst, "CBI", CBI(u, oc), 1.0/3)

	u = tally("ATG")
	checkUndefined(tst, "Fop", Fop(u, oc, false))
	checkUndefined(tst, "CBI", CBI(u, oc))

	// no optimal codons of the present families
	u = tally("TTTTTC")
	checkUndefined(tst, "Fop", Fop(u, oc, false))
	checkResult(tst, "modified Fop", Fop(u, oc, true), -0.5)
}

// oneCodonPerAA uses a single codon twice for every amino acid.
const oneCodonPerAA = "GCTGCTTGTTGTGATGATGAAGAATTTTTTGGTGGTCATCATATTATTAAAAAA" +
	"CTTCTTATGATGAATAATCCTCCTCAACAACGTCGTTCTTCTACTACTGTTGTTTGGTGGTATTAT"

func TestENC(tst *testing.T) {
	cfg := DefaultENCConfig()
	checkResult(tst, "ENC", ENC(tally(oneCodonPerAA), cfg), 20)

	// Ala: GCT GCT GCT GCC has F=0.5
	checkResult(tst, "ENC", ENC(tally(oneCodonPerAA+"GCTGCC"), cfg), 15+5/0.9)

	// no isoleucine
	noIle := "GCTGCTTGTTGTGATGATGAAGAATTTTTTGGTGGTCATCATAAAAAA" +
		"CTTCTTATGATGAATAATCCTCCTCAACAACGTCGTTCTTCTACTACTGTTGTTTGGTGGTATTAT"
	checkResult(tst, "ENC", ENC(tally(noIle), cfg), 20)
	cfg.InterpolateThreeFold = false
	checkUndefined(tst, "ENC", ENC(tally(noIle), cfg))

	var every []byte
	for c := 0; c < bio.NCodon; c++ {
		if !standard.IsStop(byte(c)) {
			every = append(every, bio.CodonString(byte(c))...)
		}
	}
	cfg = DefaultENCConfig()
	checkUndefined(tst, "ENC", ENC(tally(string(every)), cfg))
	cfg.Fallback = UniformFallback(8)
	checkResult(tst, "ENC", ENC(tally(string(every)), cfg), 61)

	checkUndefined(tst, "ENC", ENC(tally(""), cfg))
}

func TestENCConfig(tst *testing.T) {
	if err := DefaultENCConfig().Validate(); err != nil {
		tst.Error("Error: ", err)
	}
	for _, cfg := range []ENCConfig{
		{MinCount: 1},
		{MinCount: 2, Fallback: map[int]float64{1: 0.5}},
		{MinCount: 2, Fallback: map[int]float64{4: 0}},
		{MinCount: 2, Fallback: map[int]float64{4: 1.5}},
	} {
		if err := cfg.Validate(); err == nil {
			tst.Error("Expected error for", cfg)
		}
	}
	if x := ExpectedENC(0.5); math.Abs(x-60.5) > smallDiff {
		tst.Error("Expected 60.5, got", x)
	}
}

func TestProtein(tst *testing.T) {
	checkResult(tst, "GRAVY", Gravy(tally("GCTATG"), ref.KyteDoolittle), 1.85)
	checkResult(tst, "Aromo", Aromaticity(tally("TTTTGGGCTGCT"), ref.AromaticFYW), 0.5)
	checkUndefined(tst, "GRAVY", Gravy(tally("TAA"), ref.KyteDoolittle))
	checkUndefined(tst, "Aromo", Aromaticity(tally(""), ref.AromaticFYW))
}

func TestScaledChi2(tst *testing.T) {
	chi2, p := ScaledChi2(tally("GCTGCTGCTGCT"))
	checkResult(tst, "chi2", chi2, 3)
	if !p.Defined || p.Value <= 0 || p.Value >= 0.01 {
		tst.Error("Expected small p-value, got", p)
	}
	chi2, _ = ScaledChi2(tally("GCTGCCGCAGCG"))
	checkResult(tst, "chi2", chi2, 0)
	chi2, p = ScaledChi2(tally("ATGTGG"))
	checkUndefined(tst, "chi2", chi2)
	checkUndefined(tst, "p", p)
}

func TestEmpty(tst *testing.T) {
	a, oc := testTables()
	u := tally("")
	bc := BaseComp(u)
	for name, r := range map[string]Result{
		"CAI":   CAI(u, a),
		"Fop":   Fop(u, oc, false),
		"CBI":   CBI(u, oc),
		"ENC":   ENC(u, DefaultENCConfig()),
		"GC":    bc.GC,
		"GC3s":  bc.GC3s,
		"GCn3s": bc.GCn3s,
		"GRAVY": Gravy(u, ref.KyteDoolittle),
		"RSCU":  RSCU(u)[0],
		"RAAU":  RAAU(u)[0],
		"Stop":  RAAU(u)[bio.StopIndex],
		"T3s":   SilentBase(u)[T],
	} {
		checkUndefined(tst, name, r)
	}
}

func TestOrderInvariance(tst *testing.T) {
	a, oc := testTables()
	u1 := tally("ATGGCTGCCTTTCTGAAAGCTTTCCTTGGG")
	u2 := tally("GGGCTTTTCGCTAAACTGTTTGCCGCTATG")
	for name, f := range map[string]func(*codon.Usage) Result{
		"CAI":  func(u *codon.Usage) Result { return CAI(u, a) },
		"Fop":  func(u *codon.Usage) Result { return Fop(u, oc, false) },
		"CBI":  func(u *codon.Usage) Result { return CBI(u, oc) },
		"ENC":  func(u *codon.Usage) Result { return ENC(u, DefaultENCConfig()) },
		"GC":   GC,
		"GC3s": GC3s,
	} {
		r1, r2 := f(u1), f(u2)
		if r1 != r2 {
			tst.Error(name, ": expected", r1, ", got", r2)
		}
	}
	if RSCU(u1) != RSCU(u2) {
		tst.Error("RSCU depends on the codon order")
	}
	if Dinucleotides(u1) == Dinucleotides(u2) {
		tst.Error("Dinucleotides should depend on the codon order")
	}
}

func TestResultJSON(tst *testing.T) {
	b, err := json.Marshal([]Result{Value(0.5), Undefined})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if string(b) != "[0.5,null]" {
		tst.Error("Expected [0.5,null], got", string(b))
	}
	var rs []Result
	if err := json.Unmarshal(b, &rs); err != nil {
		tst.Fatal("Error: ", err)
	}
	if rs[0] != Value(0.5) || rs[1] != Undefined {
		tst.Error("Wrong decoded results", rs)
	}
	if Undefined.String() != UndefinedString || Value(1.23456).Format(2) != "1.23" {
		tst.Error("Wrong formatting")
	}

	b, err = json.Marshal([]Result{Value(math.NaN()), Value(math.Inf(1))})
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if string(b) != "[null,null]" {
		tst.Error("Expected [null,null], got", string(b))
	}
}
