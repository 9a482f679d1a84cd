package main

import (
	"strings"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/batch"
	"bitbucket.org/Davydov/codonw/checkpoint"
	"bitbucket.org/Davydov/codonw/ref"
	"bitbucket.org/Davydov/codonw/report"
)

// checkpointSeconds is the minimal interval between result store
// writes.
const checkpointSeconds = 10

var (
	analyzeCmd   = app.Command("analyze", "compute indices for every sequence")
	analyzeInput = analyzeCmd.Arg("input", "FASTA file with coding sequences, - for standard input").Required().String()
	indicesF     = analyzeCmd.Flag("indices", "comma separated list of indices, all or none").Default("all").String()
	bulkF        = analyzeCmd.Flag("bulk", "bulk output "+
		"(cu: codon usage, fcu: codon usage frequencies, rscu: relative synonymous codon usage, "+
		"aau: amino acid usage, raau: relative amino acid usage, "+
		"dinuc: dinucleotide frequencies, base: detailed base composition, "+
		"cutab: codon usage tables, none)").Default("none").Enum(report.BulkNames...)
	wide     = analyzeCmd.Flag("wide", "one row per category and one column per sequence in the bulk output").Bool()
	sep      = analyzeCmd.Flag("sep", "column separator (tab, space, comma or any string)").Default("tab").String()
	outF     = analyzeCmd.Flag("out", "write indices to a file").String()
	bulkOutF = analyzeCmd.Flag("bulkout", "write bulk output to a file").String()
	totals   = analyzeCmd.Flag("totals", "analyze all sequences together").Bool()
	dbF      = analyzeCmd.Flag("db", "store results in a database, finished sequences are not recomputed").String()
)

// AnalyzeSummary is the result of the analyze command.
type AnalyzeSummary struct {
	batch.Summary
	Records []*analyzer.Record `json:"records,omitempty"`
}

// settings are the values which make stored results invalid if
// changed.
type settings struct {
	Ref      ref.Config       `json:"ref"`
	Analysis analyzer.Options `json:"analysis"`
	KeepStop bool             `json:"keepStop"`
	Indices  []string         `json:"indices"`
}

// indexNames parses the index list.
func indexNames() []string {
	switch *indicesF {
	case "all":
		return analyzer.IndexNames
	case "none", "":
		return nil
	}
	names := strings.Split(*indicesF, ",")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
		if err := analyzer.CheckIndex(names[i]); err != nil {
			log.Fatal(err)
		}
	}
	return names
}

func analyze(summary *Summary) *AnalyzeSummary {
	t := tables()
	names := indexNames()
	opts := batch.Options{
		NThreads: summary.NThreads,
		KeepStop: *keepStop,
		Totals:   *totals,
		Indices:  names,
		Analysis: analysisOptions(t.GCode),
	}

	if *dbF != "" && !*totals {
		store, err := checkpoint.Open(*dbF, checkpointSeconds)
		if err != nil {
			log.Fatal("Error opening database:", err)
		}
		defer store.Close()
		ok, err := store.CheckSettings(settings{refConfig(), opts.Analysis, opts.KeepStop, names})
		if err != nil {
			log.Fatal(err)
		}
		if ok {
			n, _ := store.Count()
			log.Noticef("Resuming, %d sequences in the database", n)
		}
		opts.Store = store
	}

	if len(names) > 0 && *bulkF != report.None && isStdout(*outF) && isStdout(*bulkOutF) {
		log.Fatal("Both indices and bulk output are written to the standard output, use -out or -bulkout")
	}

	input := openInput(*analyzeInput)
	defer input.Close()

	s := separator(*sep)
	var idxTable *report.Table
	if len(names) > 0 {
		out := createOutput(*outF)
		defer out.Close()
		idxTable = report.NewTable(out, names, s, false)
	}

	var bulkTable *report.Table
	bulkOut := createOutput(*bulkOutF)
	defer bulkOut.Close()
	if *bulkF != report.None && *bulkF != report.CUTab {
		labels, err := report.Labels(*bulkF)
		if err != nil {
			log.Fatal(err)
		}
		bulkTable = report.NewTable(bulkOut, labels, s, *wide)
	}

	res := &AnalyzeSummary{}
	bs, err := batch.Run(input, t, opts, func(rec *analyzer.Record) error {
		if idxTable != nil {
			if err := idxTable.Add(rec.Name, report.IndexValues(rec, names)); err != nil {
				return err
			}
		}
		switch {
		case bulkTable != nil:
			values, err := report.Values(*bulkF, rec, t.GCode)
			if err != nil {
				return err
			}
			if err := bulkTable.Add(rec.Name, values); err != nil {
				return err
			}
		case *bulkF == report.CUTab:
			if err := report.WriteCodonTable(bulkOut, rec, t.GCode); err != nil {
				return err
			}
		}
		if *jsonF != "" {
			res.Records = append(res.Records, rec)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, tab := range []*report.Table{idxTable, bulkTable} {
		if tab == nil {
			continue
		}
		if err := tab.Flush(); err != nil {
			log.Fatal(err)
		}
	}

	log.Noticef("Analyzed %d sequences (%d codons), %d from the database, %d warnings",
		bs.NSequences, bs.NCodons, bs.NCached, bs.NWarnings)
	res.Summary = bs
	return res
}
