package main

import (
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

var (
	refgenCmd   = app.Command("refgen", "compute a CAI relative adaptiveness table from a reference gene set")
	refgenInput = refgenCmd.Arg("input", "FASTA file with highly expressed genes, - for standard input").Required().String()
	refgenOut   = refgenCmd.Flag("out", "write the table to a file").String()
	refgenName  = refgenCmd.Flag("name", "table name").Default("user").String()
)

// RefgenSummary is the result of the refgen command.
type RefgenSummary struct {
	Genes  int                 `json:"genes"`
	Codons int                 `json:"codons"`
	W      [bio.NCodon]float64 `json:"w"`
	Usage  [bio.NCodon]int     `json:"usage"`
}

func refgen() *RefgenSummary {
	gcode, err := refConfig().LoadGeneticCode()
	if err != nil {
		log.Fatal(err)
	}
	input := openInput(*refgenInput)
	defer input.Close()

	res := &RefgenSummary{}
	total := &codon.Usage{GCode: gcode}
	err = bio.ReadFasta(input, func(nseq bio.Sequence) error {
		seq := codon.NewSequence(nseq.Name, nseq.Sequence, gcode, *keepStop)
		if !*noWarn {
			for _, w := range seq.Warnings() {
				log.Warningf("%s: %s", seq.Name, w)
			}
		}
		res.Genes++
		return total.Add(codon.Tally(seq))
	})
	if err != nil {
		log.Fatal(err)
	}
	res.Codons = total.Total()
	log.Noticef("Read %d reference genes, %d codons", res.Genes, res.Codons)

	a, err := ref.AdaptivenessFromUsage(*refgenName, total)
	if err != nil {
		log.Fatal(err)
	}
	out := createOutput(*refgenOut)
	defer out.Close()
	if err := ref.WriteAdaptiveness(out, a); err != nil {
		log.Fatal(err)
	}
	res.W = a.W
	res.Usage = total.Codon
	return res
}
