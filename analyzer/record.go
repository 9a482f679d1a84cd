package analyzer

import (
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/indices"
)

// Record is the statistic map of a single sequence. It is serialized
// to JSON for output and for the result store.
type Record struct {
	Name     string                    `json:"name"`
	Indices  map[string]indices.Result `json:"indices"`
	Warnings []string                  `json:"warnings,omitempty"`

	Codon    [bio.NCodon]int                  `json:"codon"`
	AA       [bio.NAA]int                     `json:"aa"`
	Pos      [3][4]int                        `json:"pos"`
	Dinuc    [codon.NFrames][codon.NDinuc]int `json:"dinuc"`
	Excluded int                              `json:"excluded"`
}

// Usage restores raw counts of the record.
func (r *Record) Usage(gcode *bio.GeneticCode) *codon.Usage {
	return &codon.Usage{
		GCode:    gcode,
		Codon:    r.Codon,
		AA:       r.AA,
		Pos:      r.Pos,
		Dinuc:    r.Dinuc,
		Excluded: r.Excluded,
	}
}
