package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

func init() {
	logging.SetLevel(logging.WARNING, "ref")
}

func testRecords(tst *testing.T, seqs ...string) ([]*analyzer.Record, *ref.Tables) {
	t, err := ref.New(ref.DefaultConfig())
	if err != nil {
		tst.Fatal(err)
	}
	var recs []*analyzer.Record
	for i, nseq := range seqs {
		seq := codon.NewSequence(string(rune('a'+i)), nseq, t.GCode, false)
		recs = append(recs, analyzer.New(seq, t, analyzer.DefaultOptions()).Record(analyzer.IndexNames))
	}
	return recs, t
}

func TestIndexTable(tst *testing.T) {
	recs, _ := testRecords(tst, "ATGGCTGCTGCTTAA", "")
	names := []string{analyzer.GC3s, analyzer.LAA, analyzer.CAI}
	var b bytes.Buffer
	t := NewTable(&b, names, "\t", false)
	for _, rec := range recs {
		if err := t.Add(rec.Name, IndexValues(rec, names)); err != nil {
			tst.Fatal(err)
		}
	}
	if err := t.Flush(); err != nil {
		tst.Fatal(err)
	}
	exp := "title\tGC3s\tL_aa\tCAI\n" +
		"a\t0.000\t4\t" + recs[0].Indices[analyzer.CAI].Format(3) + "\n" +
		"b\t*****\t0\t*****\n"
	if b.String() != exp {
		tst.Errorf("Expected\n%s, got\n%s", exp, b.String())
	}
}

func TestWide(tst *testing.T) {
	recs, tables := testRecords(tst, "ATGGCTGCTGCTTAA", "ATGTGGTAA")
	labels, err := Labels(CU)
	if err != nil {
		tst.Fatal(err)
	}
	var b bytes.Buffer
	t := NewTable(&b, labels, ",", true)
	for _, rec := range recs {
		values, err := Values(CU, rec, tables.GCode)
		if err != nil {
			tst.Fatal(err)
		}
		t.Add(rec.Name, values)
	}
	if err := t.Flush(); err != nil {
		tst.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != bio.NCodon+1 {
		tst.Fatal("Expected ", bio.NCodon+1, " lines, got", len(lines))
	}
	if lines[0] != "title,a,b" {
		tst.Error("Expected title,a,b, got", lines[0])
	}
	gct := bio.CodonIndex("GCT")
	if l := lines[gct+1]; l != "GCT,3,0" {
		tst.Error("Expected GCT,3,0, got", l)
	}
	atg := bio.CodonIndex("ATG")
	if l := lines[atg+1]; l != "ATG,1,1" {
		tst.Error("Expected ATG,1,1, got", l)
	}
}

func TestBulkShapes(tst *testing.T) {
	recs, t := testRecords(tst, "ATGGCTGCTGCTTGGAAATAA")
	for _, bulk := range BulkNames {
		if bulk == CUTab || bulk == None {
			if _, err := Labels(bulk); err == nil {
				tst.Error("Expected an error for", bulk)
			}
			continue
		}
		labels, err := Labels(bulk)
		if err != nil {
			tst.Fatal(err)
		}
		values, err := Values(bulk, recs[0], t.GCode)
		if err != nil {
			tst.Fatal(err)
		}
		if len(labels) != len(values) {
			tst.Error(bulk, ": expected", len(labels), "values, got", len(values))
		}
	}
	values, _ := Values(Base, recs[0], t.GCode)
	if values[0] != "6" || values[1] != "4" {
		tst.Error("Expected Len_aa=6 and Len_sym=4, got", values[0], values[1])
	}
	values, _ = Values(FCU, recs[0], t.GCode)
	if v := values[bio.CodonIndex("GCT")]; v != "0.5000" {
		tst.Error("Expected GCT frequency 0.5000, got", v)
	}
}

func TestCodonTable(tst *testing.T) {
	recs, t := testRecords(tst, "ATGGCTGCTGCTTAA")
	var b bytes.Buffer
	if err := WriteCodonTable(&b, recs[0], t.GCode); err != nil {
		tst.Fatal(err)
	}
	s := b.String()
	if !strings.HasPrefix(s, "a\n") {
		tst.Error("Expected the table to start with the name")
	}
	if !strings.Contains(s, "Ala GCT     3 4.00") {
		tst.Error("Expected GCT row, got\n", s)
	}
	if !strings.Contains(s, "Phe TTT     0 *****") {
		tst.Error("Expected undefined RSCU for TTT, got\n", s)
	}
	// 16 lines and an empty line per first base plus the name
	if n := strings.Count(s, "\n"); n != 1+4*5 {
		tst.Error("Expected ", 1+4*5, " lines, got", n)
	}
}

func TestAddMismatch(tst *testing.T) {
	var b bytes.Buffer
	t := NewTable(&b, []string{"x", "y"}, "\t", false)
	if err := t.Add("a", []string{"1"}); err == nil {
		tst.Error("Expected an error for a short row")
	}
}
