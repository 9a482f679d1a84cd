package main

import (
	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/batch"
	"bitbucket.org/Davydov/codonw/encplot"
)

var (
	encplotCmd   = app.Command("encplot", "plot the effective number of codons against GC3s")
	encplotInput = encplotCmd.Arg("input", "FASTA file with coding sequences, - for standard input").Required().String()
	encplotOut   = encplotCmd.Flag("out", "plot file (png, svg, pdf or eps)").Required().String()
	encplotTitle = encplotCmd.Flag("title", "plot title").Default("Nc plot").String()
)

// ENCPlotSummary is the result of the encplot command.
type ENCPlotSummary struct {
	Points  int `json:"points"`
	Skipped int `json:"skipped"`
}

func runENCPlot() *ENCPlotSummary {
	t := tables()
	input := openInput(*encplotInput)
	defer input.Close()

	opts := batch.Options{
		KeepStop: *keepStop,
		Indices:  []string{analyzer.GC3s, analyzer.Nc},
		Analysis: analysisOptions(t.GCode),
	}
	var recs []*analyzer.Record
	_, err := batch.Run(input, t, opts, func(rec *analyzer.Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	pts, skipped := encplot.Points(recs)
	if skipped > 0 {
		log.Warningf("%d sequence(s) with undefined Nc or GC3s are not plotted", skipped)
	}
	p, err := encplot.New(*encplotTitle, pts)
	if err != nil {
		log.Fatal(err)
	}
	if err := encplot.Save(*encplotOut, p); err != nil {
		log.Fatal(err)
	}
	return &ENCPlotSummary{Points: len(pts), Skipped: skipped}
}
