// Package analyzer computes all statistics of a single coding
// sequence. Results are computed on the first request and cached.
package analyzer

import (
	"fmt"
	"sync"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/indices"
	"bitbucket.org/Davydov/codonw/ref"
)

// Index names.
const (
	T3s   = "T3s"
	C3s   = "C3s"
	A3s   = "A3s"
	G3s   = "G3s"
	CAI   = "CAI"
	CBI   = "CBI"
	Fop   = "Fop"
	Nc    = "Nc"
	GC3s  = "GC3s"
	GC    = "GC"
	LSym  = "L_sym"
	LAA   = "L_aa"
	Gravy = "Gravy"
	Aromo = "Aromo"
	Xsq   = "Xsq"
	XsqP  = "Xsq_p"
)

// IndexNames lists all indices in the output order.
var IndexNames = []string{T3s, C3s, A3s, G3s, CAI, CBI, Fop, Nc, GC3s, GC, LSym, LAA, Gravy, Aromo, Xsq, XsqP}

// CheckIndex returns an error if the index name is unknown.
func CheckIndex(name string) error {
	for _, n := range IndexNames {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("unknown index %q", name)
}

// Options are analysis settings not related to reference tables.
type Options struct {
	ENC indices.ENCConfig
	// FactorInRare switches to the modified Fop.
	FactorInRare bool
}

// DefaultOptions returns default analysis settings.
func DefaultOptions() Options {
	return Options{ENC: indices.DefaultENCConfig()}
}

// Analyzer computes statistics of a codon sequence. It is safe for
// concurrent use.
type Analyzer struct {
	Name   string
	Tables *ref.Tables
	Opts   Options

	seq   *codon.Sequence
	usage *codon.Usage

	bcOnce sync.Once
	bc     indices.BaseComposition

	mu    sync.Mutex
	cache map[string]indices.Result
}

// New creates an analyzer for a sequence.
func New(seq *codon.Sequence, t *ref.Tables, opts Options) *Analyzer {
	return &Analyzer{
		Name:   seq.Name,
		Tables: t,
		Opts:   opts,
		seq:    seq,
		usage:  codon.Tally(seq),
		cache:  make(map[string]indices.Result),
	}
}

// NewFromUsage creates an analyzer for already counted usage, e.g. a
// sum of several sequences.
func NewFromUsage(name string, u *codon.Usage, t *ref.Tables, opts Options) *Analyzer {
	return &Analyzer{
		Name:   name,
		Tables: t,
		Opts:   opts,
		usage:  u,
		cache:  make(map[string]indices.Result),
	}
}

// memo returns a cached result or computes it.
func (a *Analyzer) memo(name string, f func() indices.Result) indices.Result {
	a.mu.Lock()
	r, ok := a.cache[name]
	a.mu.Unlock()
	if ok {
		return r
	}
	r = f()
	a.mu.Lock()
	a.cache[name] = r
	a.mu.Unlock()
	return r
}

// Usage returns raw counts. The value must not be modified.
func (a *Analyzer) Usage() *codon.Usage {
	return a.usage
}

// Warnings returns sequence problems.
func (a *Analyzer) Warnings() []string {
	if a.seq == nil {
		return nil
	}
	return a.seq.Warnings()
}

// Translate returns the protein sequence.
func (a *Analyzer) Translate() string {
	if a.seq == nil {
		return ""
	}
	return a.seq.Translate()
}

// CodonUsage returns codon counts.
func (a *Analyzer) CodonUsage() [bio.NCodon]int {
	return a.usage.Codon
}

// CodonFrequencies returns codon usage normalized by the number of
// counted codons.
func (a *Analyzer) CodonFrequencies() [bio.NCodon]indices.Result {
	return indices.CodonFrequencies(a.usage)
}

// AAUsage returns amino acid counts.
func (a *Analyzer) AAUsage() [bio.NAA]int {
	return a.usage.AA
}

// RSCU returns relative synonymous codon usage.
func (a *Analyzer) RSCU() [bio.NCodon]indices.Result {
	return indices.RSCU(a.usage)
}

// RAAU returns relative amino acid usage.
func (a *Analyzer) RAAU() [bio.NAA]indices.Result {
	return indices.RAAU(a.usage)
}

// Dinucleotides returns dinucleotide frequencies by frame.
func (a *Analyzer) Dinucleotides() [codon.NFrames + 1][codon.NDinuc]indices.Result {
	return indices.Dinucleotides(a.usage)
}

// BaseComp returns the detailed base composition.
func (a *Analyzer) BaseComp() indices.BaseComposition {
	a.bcOnce.Do(func() {
		a.bc = indices.BaseComp(a.usage)
	})
	return a.bc
}

// GC returns G+C content.
func (a *Analyzer) GC() indices.Result {
	return a.BaseComp().GC
}

// GC3s returns G+C content at synonymous third positions.
func (a *Analyzer) GC3s() indices.Result {
	return a.BaseComp().GC3s
}

// SilentBase returns T3s, C3s, A3s and G3s.
func (a *Analyzer) SilentBase() [4]indices.Result {
	return [4]indices.Result{a.Index(T3s), a.Index(C3s), a.Index(A3s), a.Index(G3s)}
}

// CAI returns the codon adaptation index.
func (a *Analyzer) CAI() indices.Result {
	return a.Index(CAI)
}

// Fop returns the frequency of optimal codons.
func (a *Analyzer) Fop() indices.Result {
	return a.Index(Fop)
}

// CBI returns the codon bias index.
func (a *Analyzer) CBI() indices.Result {
	return a.Index(CBI)
}

// ENC returns the effective number of codons.
func (a *Analyzer) ENC() indices.Result {
	return a.Index(Nc)
}

// Gravy returns the mean hydropathy.
func (a *Analyzer) Gravy() indices.Result {
	return a.Index(Gravy)
}

// Aromaticity returns the fraction of aromatic residues.
func (a *Analyzer) Aromaticity() indices.Result {
	return a.Index(Aromo)
}

// Index returns a scalar index by name. Unknown names give Undefined,
// use CheckIndex to validate names.
func (a *Analyzer) Index(name string) indices.Result {
	return a.memo(name, func() indices.Result {
		u := a.usage
		t := a.Tables
		switch name {
		case T3s, C3s, A3s, G3s:
			sb := indices.SilentBase(u)
			return sb[map[string]int{T3s: indices.T, C3s: indices.C, A3s: indices.A, G3s: indices.G}[name]]
		case CAI:
			return indices.CAI(u, t.CAI)
		case CBI:
			return indices.CBI(u, t.CBI)
		case Fop:
			return indices.Fop(u, t.Fop, a.Opts.FactorInRare)
		case Nc:
			return indices.ENC(u, a.Opts.ENC)
		case GC3s:
			return a.BaseComp().GC3s
		case GC:
			return a.BaseComp().GC
		case LSym:
			return indices.Value(float64(indices.LSym(u)))
		case LAA:
			return indices.Value(float64(indices.LAA(u)))
		case Gravy:
			return indices.Gravy(u, t.Hydropathy)
		case Aromo:
			return indices.Aromaticity(u, t.Aromatic)
		case Xsq:
			x, _ := indices.ScaledChi2(u)
			return x
		case XsqP:
			_, p := indices.ScaledChi2(u)
			return p
		}
		return indices.Undefined
	})
}

// Indices returns a map of the requested indices.
func (a *Analyzer) Indices(names []string) map[string]indices.Result {
	res := make(map[string]indices.Result, len(names))
	for _, name := range names {
		res[name] = a.Index(name)
	}
	return res
}

// Record returns the statistics of the sequence: selected indices,
// warnings and raw counts, which are enough to produce every table.
func (a *Analyzer) Record(names []string) *Record {
	u := a.usage
	return &Record{
		Name:     a.Name,
		Indices:  a.Indices(names),
		Warnings: a.Warnings(),
		Codon:    u.Codon,
		AA:       u.AA,
		Pos:      u.Pos,
		Dinuc:    u.Dinuc,
		Excluded: u.Excluded,
	}
}
