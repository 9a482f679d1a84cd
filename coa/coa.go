// Package coa implements correspondence analysis of codon and amino
// acid usage and the identification of optimal codons from its first
// axis.
package coa

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/indices"
)

// log is the global logging variable.
var log = logging.MustGetLogger("coa")

// Kind is the type of values analyzed.
type Kind string

const (
	// CodonUsage analyzes codon counts.
	CodonUsage Kind = "cu"
	// RSCU analyzes relative synonymous codon usage.
	RSCU Kind = "rscu"
	// AAUsage analyzes amino acid counts.
	AAUsage Kind = "aa"
)

// Kinds lists all kinds.
var Kinds = []string{string(CodonUsage), string(RSCU), string(AAUsage)}

// minInertia is the smallest eigenvalue which is treated as an axis.
const minInertia = 1e-10

// Result is a correspondence analysis result.
type Result struct {
	Kind Kind
	// Labels are the category names (columns).
	Labels []string
	// Names are the names of the analyzed genes (rows).
	Names []string
	// Rows are the indices of the analyzed genes in the input.
	Rows []int
	// Skipped are the names of the genes without data.
	Skipped []string
	// Inertia is the principal inertia of every axis in the
	// decreasing order.
	Inertia []float64
	// TotalInertia is the sum of all principal inertias.
	TotalInertia float64
	// Genes are the row principal coordinates (genes × axes).
	Genes *mat64.Dense
	// Categories are the column principal coordinates (categories ×
	// axes).
	Categories *mat64.Dense
}

// Categories returns the analyzed categories: codons of synonymous
// families for codon usage and RSCU, amino acids otherwise.
func Categories(kind Kind, gcode *bio.GeneticCode) (labels []string, idx []int, err error) {
	switch kind {
	case CodonUsage, RSCU:
		for c := 0; c < bio.NCodon; c++ {
			if gcode.Synonymous(byte(c)) {
				labels = append(labels, bio.CodonString(byte(c)))
				idx = append(idx, c)
			}
		}
	case AAUsage:
		for aa := 0; aa < bio.StopIndex; aa++ {
			if gcode.AADegeneracy(aa) > 0 {
				labels = append(labels, bio.AA3[aa])
				idx = append(idx, aa)
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown analysis kind %q", kind)
	}
	return
}

// values returns the row of the data matrix for a gene.
func values(kind Kind, u *codon.Usage, idx []int) []float64 {
	res := make([]float64, len(idx))
	switch kind {
	case CodonUsage:
		for i, c := range idx {
			res[i] = float64(u.Codon[c])
		}
	case RSCU:
		rscu := indices.RSCU(u)
		for i, c := range idx {
			if rscu[c].Defined {
				res[i] = rscu[c].Value
			}
		}
	case AAUsage:
		for i, aa := range idx {
			res[i] = float64(u.AA[aa])
		}
	}
	return res
}

// Analyze performs correspondence analysis of the genes. At most
// naxes axes are reported. Genes without data are skipped.
func Analyze(names []string, usages []*codon.Usage, kind Kind, naxes int) (*Result, error) {
	if len(names) != len(usages) {
		return nil, errors.New("number of names and usages differ")
	}
	if len(usages) == 0 {
		return nil, errors.New("no genes to analyze")
	}
	labels, idx, err := Categories(kind, usages[0].GCode)
	if err != nil {
		return nil, err
	}

	res := &Result{Kind: kind}
	var data [][]float64
	for i, u := range usages {
		row := values(kind, u, idx)
		if floats.Sum(row) == 0 {
			res.Skipped = append(res.Skipped, names[i])
			continue
		}
		res.Rows = append(res.Rows, i)
		res.Names = append(res.Names, names[i])
		data = append(data, row)
	}
	if len(res.Skipped) > 0 {
		log.Warningf("%d gene(s) without data are excluded", len(res.Skipped))
	}

	// column masses, empty categories are removed
	colSum := make([]float64, len(idx))
	for _, row := range data {
		floats.Add(colSum, row)
	}
	var cols []int
	for j, s := range colSum {
		if s > 0 {
			cols = append(cols, j)
			res.Labels = append(res.Labels, labels[j])
		}
	}
	nr, nc := len(data), len(cols)
	if nr < 2 || nc < 2 {
		return nil, fmt.Errorf("not enough data: %d genes and %d categories", nr, nc)
	}

	total := floats.Sum(colSum)
	r := make([]float64, nr)
	c := make([]float64, nc)
	for i, row := range data {
		r[i] = floats.Sum(row) / total
	}
	for j, cj := range cols {
		c[j] = colSum[cj] / total
	}

	// standardized residuals
	s := mat64.NewDense(nr, nc, nil)
	for i, row := range data {
		for j, cj := range cols {
			e := r[i] * c[j]
			s.Set(i, j, (row[cj]/total-e)/math.Sqrt(e))
		}
	}

	var cross mat64.Dense
	cross.Mul(s.T(), s)
	sym := mat64.NewSymDense(nc, nil)
	for i := 0; i < nc; i++ {
		for j := i; j < nc; j++ {
			sym.SetSym(i, j, cross.At(i, j))
		}
	}

	var es mat64.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, errors.New("eigen decomposition failed")
	}
	vals := es.Values(nil)
	var vecs mat64.Dense
	vecs.EigenvectorsSym(&es)

	// eigenvalues are in the ascending order
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	var axes []int
	for _, k := range order {
		if vals[k] > minInertia {
			res.TotalInertia += vals[k]
			axes = append(axes, k)
		}
	}
	if len(axes) == 0 {
		return nil, errors.New("no variation in the data")
	}
	if naxes > 0 && naxes < len(axes) {
		axes = axes[:naxes]
	}
	for _, k := range axes {
		res.Inertia = append(res.Inertia, vals[k])
	}
	log.Debugf("Total inertia %v, %d axes", res.TotalInertia, len(axes))

	res.Categories = mat64.NewDense(nc, len(axes), nil)
	for j := 0; j < nc; j++ {
		for a, k := range axes {
			res.Categories.Set(j, a, vecs.At(j, k)*math.Sqrt(vals[k]/c[j]))
		}
	}
	var sv mat64.Dense
	sv.Mul(s, &vecs)
	res.Genes = mat64.NewDense(nr, len(axes), nil)
	for i := 0; i < nr; i++ {
		for a, k := range axes {
			res.Genes.Set(i, a, sv.At(i, k)/math.Sqrt(r[i]))
		}
	}
	return res, nil
}

// Explained returns the fraction of the total inertia explained by an
// axis.
func (res *Result) Explained(axis int) float64 {
	return res.Inertia[axis] / res.TotalInertia
}
