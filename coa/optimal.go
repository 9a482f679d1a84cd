package coa

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/dist"
	"bitbucket.org/Davydov/codonw/indices"
	"bitbucket.org/Davydov/codonw/ref"
)

// OptimalSettings control the identification of optimal codons.
type OptimalSettings struct {
	// Fraction of genes taken from each end of the first axis.
	Fraction float64
	// PValue is the significance level of the chi-square test.
	PValue float64
	// ENC is used to decide which end is biased.
	ENC indices.ENCConfig
}

// DefaultOptimalSettings returns 10% of genes and p < 0.01.
func DefaultOptimalSettings() OptimalSettings {
	return OptimalSettings{
		Fraction: 0.1,
		PValue:   0.01,
		ENC:      indices.DefaultENCConfig(),
	}
}

// meanENC returns the mean defined ENC of the genes.
func meanENC(usages []*codon.Usage, cfg indices.ENCConfig) (float64, bool) {
	sum, n := 0.0, 0
	for _, u := range usages {
		if r := indices.ENC(u, cfg); r.Defined {
			sum += r.Value
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// total sums the usage of the genes.
func total(gcode *bio.GeneticCode, usages []*codon.Usage) (*codon.Usage, error) {
	t := &codon.Usage{GCode: gcode}
	for _, u := range usages {
		if err := t.Add(u); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// OptimalCodons identifies optimal codons. Genes are ordered along the
// first axis and the same number of genes is taken from both ends.
// The end with the lower mean effective number of codons is the
// biased set. A codon is optimal if its frequency within the
// synonymous family is significantly higher in the biased set.
func OptimalCodons(res *Result, usages []*codon.Usage, s OptimalSettings) (*ref.OptimalCodons, error) {
	if len(res.Inertia) == 0 {
		return nil, errors.New("no axes")
	}
	if s.Fraction <= 0 || s.Fraction > 0.5 {
		return nil, fmt.Errorf("fraction of genes should be in (0, 0.5], got %v", s.Fraction)
	}
	nr := len(res.Rows)
	k := int(math.Floor(s.Fraction*float64(nr) + 0.5))
	if k < 1 {
		k = 1
	}

	order := make([]int, nr)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return res.Genes.At(order[a], 0) < res.Genes.At(order[b], 0)
	})
	group := func(rows []int) []*codon.Usage {
		g := make([]*codon.Usage, len(rows))
		for i, r := range rows {
			g[i] = usages[res.Rows[r]]
		}
		return g
	}
	low, high := group(order[:k]), group(order[nr-k:])

	ncLow, ok1 := meanENC(low, s.ENC)
	ncHigh, ok2 := meanENC(high, s.ENC)
	if !ok1 || !ok2 {
		return nil, errors.New("effective number of codons is undefined for a set of genes")
	}
	biased, other := high, low
	if ncLow < ncHigh {
		biased, other = low, high
	}
	log.Infof("Mean Nc is %.2f and %.2f for %d genes at the ends of axis 1", ncLow, ncHigh, k)

	gcode := usages[0].GCode
	b, err := total(gcode, biased)
	if err != nil {
		return nil, err
	}
	o, err := total(gcode, other)
	if err != nil {
		return nil, err
	}

	var class [bio.NCodon]ref.Class
	nopt := 0
	for c := range class {
		class[c] = ref.Common
		if !gcode.Synonymous(byte(c)) {
			continue
		}
		a := float64(b.Codon[c])
		bb := float64(b.FamilyOf(byte(c))) - a
		cc := float64(o.Codon[c])
		d := float64(o.FamilyOf(byte(c))) - cc
		_, p := dist.Chi2x2(a, bb, cc, d)
		if math.IsNaN(p) || p >= s.PValue {
			continue
		}
		if a/(a+bb) > cc/(cc+d) {
			class[c] = ref.Optimal
			nopt++
		}
	}
	log.Infof("Found %d optimal codons", nopt)
	return ref.NewOptimalCodons("coa", fmt.Sprintf("correspondence analysis of %d genes", nr), class)
}
