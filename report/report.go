// Package report formats analysis records as text tables.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/indices"
)

// Title is the header of the sequence name column.
const Title = "title"

// Table writes a table with one row per record. In the wide layout
// rows and columns are swapped; rows are buffered until Flush.
type Table struct {
	w      *bufio.Writer
	sep    string
	labels []string
	wide   bool

	header bool
	names  []string
	rows   [][]string
}

// NewTable creates a table with given column labels.
func NewTable(w io.Writer, labels []string, sep string, wide bool) *Table {
	return &Table{
		w:      bufio.NewWriter(w),
		sep:    sep,
		labels: labels,
		wide:   wide,
	}
}

// Add adds a row.
func (t *Table) Add(name string, values []string) error {
	if len(values) != len(t.labels) {
		return fmt.Errorf("%s: expected %d values, got %d", name, len(t.labels), len(values))
	}
	if t.wide {
		t.names = append(t.names, name)
		t.rows = append(t.rows, values)
		return nil
	}
	if !t.header {
		t.header = true
		if err := t.line(Title, t.labels); err != nil {
			return err
		}
	}
	return t.line(name, values)
}

func (t *Table) line(first string, rest []string) error {
	if _, err := t.w.WriteString(first); err != nil {
		return err
	}
	for _, s := range rest {
		t.w.WriteString(t.sep)
		t.w.WriteString(s)
	}
	_, err := t.w.WriteString("\n")
	return err
}

// Flush writes buffered data.
func (t *Table) Flush() error {
	if t.wide {
		if err := t.line(Title, t.names); err != nil {
			return err
		}
		col := make([]string, len(t.rows))
		for i, label := range t.labels {
			for j, row := range t.rows {
				col[j] = row[i]
			}
			if err := t.line(label, col); err != nil {
				return err
			}
		}
		t.names = nil
		t.rows = nil
	}
	return t.w.Flush()
}

// precision returns the number of digits printed for an index.
func precision(name string) int {
	switch name {
	case analyzer.LSym, analyzer.LAA:
		return 0
	case analyzer.Gravy, analyzer.XsqP:
		return 5
	}
	return 3
}

// IndexValues formats selected indices of a record.
func IndexValues(rec *analyzer.Record, names []string) []string {
	res := make([]string, len(names))
	for i, name := range names {
		res[i] = rec.Indices[name].Format(precision(name))
	}
	return res
}

func formatResults(rs []indices.Result, prec int) []string {
	res := make([]string, len(rs))
	for i, r := range rs {
		res[i] = r.Format(prec)
	}
	return res
}

func formatInts(ns []int) []string {
	res := make([]string, len(ns))
	for i, n := range ns {
		res[i] = strconv.Itoa(n)
	}
	return res
}

// codonLabels returns codon names in the codon number order.
func codonLabels() []string {
	res := make([]string, bio.NCodon)
	for c := range res {
		res[c] = bio.CodonString(byte(c))
	}
	return res
}

// aaLabels returns three letter amino acid names.
func aaLabels() []string {
	return append([]string(nil), bio.AA3[:]...)
}

var frameNames = [codon.NFrames + 1]string{"1:2", "2:3", "3:1", "all"}

// dinucLabels returns dinucleotide names for every frame.
func dinucLabels() []string {
	res := make([]string, 0, len(frameNames)*codon.NDinuc)
	for _, f := range frameNames {
		for d := 0; d < codon.NDinuc; d++ {
			res = append(res, f+"_"+codon.DinucString(d))
		}
	}
	return res
}

// baseLabels returns names of the base composition values.
func baseLabels() []string {
	res := []string{"Len_aa", "Len_sym", "GC", "GC3s", "GCn3s", "GC1", "GC2", "GC3"}
	for pos := 1; pos <= 3; pos++ {
		for _, b := range "TCAG" {
			res = append(res, fmt.Sprintf("%c%d", b, pos))
		}
	}
	return res
}

func baseValues(bc indices.BaseComposition) []string {
	res := []string{strconv.Itoa(bc.LenAA), strconv.Itoa(bc.LenSym)}
	res = append(res, formatResults([]indices.Result{bc.GC, bc.GC3s, bc.GCn3s}, 3)...)
	res = append(res, formatResults(bc.GCPos[:], 3)...)
	for pos := 0; pos < 3; pos++ {
		res = append(res, formatResults(bc.Base[pos][:], 3)...)
	}
	return res
}

// Bulk output names.
const (
	CU    = "cu"
	FCU   = "fcu"
	RSCU  = "rscu"
	AAU   = "aau"
	RAAU  = "raau"
	Dinuc = "dinuc"
	Base  = "base"
	CUTab = "cutab"
	None  = "none"
)

// BulkNames lists all bulk outputs.
var BulkNames = []string{CU, FCU, RSCU, AAU, RAAU, Dinuc, Base, CUTab, None}

// Labels returns column labels of a tabular bulk output.
func Labels(bulk string) ([]string, error) {
	switch bulk {
	case CU, FCU, RSCU:
		return codonLabels(), nil
	case AAU, RAAU:
		return aaLabels(), nil
	case Dinuc:
		return dinucLabels(), nil
	case Base:
		return baseLabels(), nil
	}
	return nil, fmt.Errorf("%s is not a tabular output", bulk)
}

// Values returns formatted values of a tabular bulk output in the
// order of Labels.
func Values(bulk string, rec *analyzer.Record, gcode *bio.GeneticCode) ([]string, error) {
	u := rec.Usage(gcode)
	switch bulk {
	case CU:
		return formatInts(u.Codon[:]), nil
	case FCU:
		fcu := indices.CodonFrequencies(u)
		return formatResults(fcu[:], 4), nil
	case RSCU:
		rscu := indices.RSCU(u)
		return formatResults(rscu[:], 3), nil
	case AAU:
		aau := indices.AAFrequencies(u)
		return formatResults(aau[:], 4), nil
	case RAAU:
		raau := indices.RAAU(u)
		return formatResults(raau[:], 4), nil
	case Dinuc:
		dn := indices.Dinucleotides(u)
		res := make([]string, 0, len(frameNames)*codon.NDinuc)
		for f := range dn {
			res = append(res, formatResults(dn[f][:], 3)...)
		}
		return res, nil
	case Base:
		return baseValues(indices.BaseComp(u)), nil
	}
	return nil, fmt.Errorf("%s is not a tabular output", bulk)
}

// WriteCodonTable writes codon counts and RSCU of a record as the
// conventional 4x16 codon table.
func WriteCodonTable(w io.Writer, rec *analyzer.Record, gcode *bio.GeneticCode) error {
	u := rec.Usage(gcode)
	rscu := indices.RSCU(u)
	var b strings.Builder
	b.WriteString(rec.Name)
	b.WriteString("\n")
	for b1 := 0; b1 < 4; b1++ {
		for b3 := 0; b3 < 4; b3++ {
			for b2 := 0; b2 < 4; b2++ {
				c := byte(16*b1 + 4*b2 + b3)
				if b2 > 0 {
					b.WriteString(" ")
				}
				fmt.Fprintf(&b, "%s %s %5d %s",
					bio.AA3[gcode.AAIndex(c)], bio.CodonString(c), u.Codon[c], rscu[c].Format(2))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
