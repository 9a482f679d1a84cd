package main

import (
	"fmt"
	"strconv"

	"github.com/gonum/matrix/mat64"

	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/coa"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
	"bitbucket.org/Davydov/codonw/report"
)

var (
	coaCmd      = app.Command("coa", "correspondence analysis of codon or amino acid usage")
	coaInput    = coaCmd.Arg("input", "FASTA file with coding sequences, - for standard input").Required().String()
	coaKind     = coaCmd.Flag("kind", "values to analyze (cu: codon usage, rscu: RSCU, aa: amino acid usage)").Default("cu").Enum(coa.Kinds...)
	coaAxes     = coaCmd.Flag("axes", "number of axes to report").Default("4").Int()
	coaOut      = coaCmd.Flag("out", "write inertia to a file").String()
	coaGenesOut = coaCmd.Flag("genesout", "write gene coordinates to a file").String()
	coaCatsOut  = coaCmd.Flag("catsout", "write category coordinates to a file").String()
	coaFopOut   = coaCmd.Flag("fopout", "identify optimal codons and write them to a file").String()
	coaFraction = coaCmd.Flag("fraction", "fraction of genes at each end of the first axis used to identify optimal codons").Default("0.1").Float64()
	coaPValue   = coaCmd.Flag("pvalue", "significance level for optimal codons").Default("0.01").Float64()
)

// COASummary is the result of the coa command.
type COASummary struct {
	Kind         string    `json:"kind"`
	Genes        int       `json:"genes"`
	Skipped      []string  `json:"skipped,omitempty"`
	Inertia      []float64 `json:"inertia"`
	TotalInertia float64   `json:"totalInertia"`
	Optimal      []string  `json:"optimal,omitempty"`
}

// writeCoordinates writes a coordinate matrix with row names.
func writeCoordinates(fn string, names []string, m *mat64.Dense) {
	_, c := m.Dims()
	labels := make([]string, c)
	for j := range labels {
		labels[j] = fmt.Sprintf("axis%d", j+1)
	}
	out := createOutput(fn)
	defer out.Close()
	t := report.NewTable(out, labels, "\t", false)
	values := make([]string, c)
	for i, name := range names {
		for j := range values {
			values[j] = strconv.FormatFloat(m.At(i, j), 'f', 5, 64)
		}
		if err := t.Add(name, values); err != nil {
			log.Fatal(err)
		}
	}
	if err := t.Flush(); err != nil {
		log.Fatal(err)
	}
}

func runCOA() *COASummary {
	gcode, err := refConfig().LoadGeneticCode()
	if err != nil {
		log.Fatal(err)
	}
	input := openInput(*coaInput)
	defer input.Close()

	var names []string
	var usages []*codon.Usage
	err = bio.ReadFasta(input, func(nseq bio.Sequence) error {
		seq := codon.NewSequence(nseq.Name, nseq.Sequence, gcode, *keepStop)
		names = append(names, seq.Name)
		usages = append(usages, codon.Tally(seq))
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := coa.Analyze(names, usages, coa.Kind(*coaKind), *coaAxes)
	if err != nil {
		log.Fatal(err)
	}
	summary := &COASummary{
		Kind:         *coaKind,
		Genes:        len(res.Rows),
		Skipped:      res.Skipped,
		Inertia:      res.Inertia,
		TotalInertia: res.TotalInertia,
	}

	out := createOutput(*coaOut)
	defer out.Close()
	fmt.Fprintf(out, "axis\tinertia\texplained\tcumulative\n")
	cum := 0.0
	for k := range res.Inertia {
		cum += res.Explained(k)
		fmt.Fprintf(out, "%d\t%.5f\t%.4f\t%.4f\n", k+1, res.Inertia[k], res.Explained(k), cum)
	}
	fmt.Fprintf(out, "total\t%.5f\n", res.TotalInertia)

	if *coaGenesOut != "" {
		writeCoordinates(*coaGenesOut, res.Names, res.Genes)
	}
	if *coaCatsOut != "" {
		writeCoordinates(*coaCatsOut, res.Labels, res.Categories)
	}

	if *coaFopOut != "" {
		if res.Kind == coa.AAUsage {
			log.Fatal("Optimal codons require codon usage or RSCU analysis")
		}
		s := coa.DefaultOptimalSettings()
		s.Fraction = *coaFraction
		s.PValue = *coaPValue
		s.ENC = analysisOptions(gcode).ENC
		oc, err := coa.OptimalCodons(res, usages, s)
		if err != nil {
			log.Fatal(err)
		}
		for c, cl := range oc.Class {
			if cl == ref.Optimal {
				summary.Optimal = append(summary.Optimal, bio.CodonString(byte(c)))
			}
		}
		log.Noticef("Optimal codons: %v", summary.Optimal)
		f := createOutput(*coaFopOut)
		defer f.Close()
		if err := ref.WriteOptimalCodons(f, oc); err != nil {
			log.Fatal(err)
		}
	}
	return summary
}
