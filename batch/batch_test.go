package batch

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/checkpoint"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

func init() {
	logging.SetLevel(logging.CRITICAL, "batch")
	logging.SetLevel(logging.CRITICAL, "checkpoint")
	logging.SetLevel(logging.CRITICAL, "ref")
}

var genes = []string{
	"ATGGCTGCTGCTTAA",
	"ATGAAAAAGCTGCTTTTATCTTGA",
	"ATGGGTGGCGGAGGGTAG",
	"GCTNNNAAA",
	"",
	"ATGTGGTGGTAA",
}

func fastaInput(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">gene%d\n%s\n", i, genes[i%len(genes)])
	}
	return b.String()
}

func testTables(tst *testing.T) *ref.Tables {
	t, err := ref.New(ref.DefaultConfig())
	if err != nil {
		tst.Fatal(err)
	}
	return t
}

func testOptions() Options {
	return Options{
		NThreads: 4,
		Indices:  analyzer.IndexNames,
		Analysis: analyzer.DefaultOptions(),
	}
}

func TestOrder(tst *testing.T) {
	t := testTables(tst)
	var names []string
	s, err := Run(strings.NewReader(fastaInput(50)), t, testOptions(), func(rec *analyzer.Record) error {
		names = append(names, rec.Name)
		return nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	if s.NSequences != 50 || len(names) != 50 {
		tst.Fatal("Expected 50 sequences, got", s.NSequences, len(names))
	}
	for i, name := range names {
		if exp := fmt.Sprintf("gene%d", i); name != exp {
			tst.Error("Expected ", exp, ", got", name)
		}
	}
	if s.NWarnings == 0 {
		tst.Error("Expected warnings")
	}
}

func TestSameAsSequential(tst *testing.T) {
	t := testTables(tst)
	input := fastaInput(12)
	var par, seq []*analyzer.Record
	if _, err := Run(strings.NewReader(input), t, testOptions(), func(rec *analyzer.Record) error {
		par = append(par, rec)
		return nil
	}); err != nil {
		tst.Fatal(err)
	}
	opts := testOptions()
	opts.NThreads = 1
	if _, err := Run(strings.NewReader(input), t, opts, func(rec *analyzer.Record) error {
		seq = append(seq, rec)
		return nil
	}); err != nil {
		tst.Fatal(err)
	}
	if len(par) != len(seq) {
		tst.Fatal("Expected ", len(seq), ", got", len(par))
	}
	for i := range par {
		if par[i].Codon != seq[i].Codon {
			tst.Error("Codon usage differs for", par[i].Name)
		}
		for _, name := range analyzer.IndexNames {
			if par[i].Indices[name] != seq[i].Indices[name] {
				tst.Error(par[i].Name, name, ": expected", seq[i].Indices[name], ", got", par[i].Indices[name])
			}
		}
	}
}

func TestTotals(tst *testing.T) {
	t := testTables(tst)
	input := fastaInput(len(genes))
	opts := testOptions()
	opts.Totals = true
	var recs []*analyzer.Record
	s, err := Run(strings.NewReader(input), t, opts, func(rec *analyzer.Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Name != TotalsName {
		tst.Fatal("Expected a single totals record, got", len(recs))
	}
	if s.NSequences != len(genes) {
		tst.Error("Expected ", len(genes), ", got", s.NSequences)
	}

	var sum [bio.NCodon]int
	if _, err := Run(strings.NewReader(input), t, testOptions(), func(rec *analyzer.Record) error {
		for c, n := range rec.Codon {
			sum[c] += n
		}
		return nil
	}); err != nil {
		tst.Fatal(err)
	}
	if sum != recs[0].Codon {
		tst.Error("Totals codon usage differs from the sum of sequences")
	}
}

func TestTotalsBridges(tst *testing.T) {
	t := testTables(tst)
	opts := testOptions()
	opts.Totals = true
	var rec *analyzer.Record
	_, err := Run(strings.NewReader(">a\nATGGCTTAA\n>b\nATGGCTTAA\n"), t, opts, func(r *analyzer.Record) error {
		rec = r
		return nil
	})
	if err != nil {
		tst.Fatal(err)
	}
	n := 0
	for _, c := range rec.Dinuc[codon.Frame31] {
		n += c
	}
	if n != 2 {
		tst.Error("Expected 2 bridge dinucleotides, got", n)
	}
	n = 0
	for _, c := range rec.Dinuc[codon.Frame12] {
		n += c
	}
	if n != 4 {
		tst.Error("Expected 4 dinucleotides at positions 1:2, got", n)
	}
}

func TestStop(tst *testing.T) {
	t := testTables(tst)
	errTest := errors.New("test")
	n := 0
	_, err := Run(strings.NewReader(fastaInput(100)), t, testOptions(), func(rec *analyzer.Record) error {
		n++
		if n == 3 {
			return errTest
		}
		return nil
	})
	if err != errTest {
		tst.Error("Expected ", errTest, ", got", err)
	}
	if n != 3 {
		tst.Error("Expected 3 calls, got", n)
	}
}

func TestBadInput(tst *testing.T) {
	t := testTables(tst)
	_, err := Run(strings.NewReader("no fasta here"), t, testOptions(), func(rec *analyzer.Record) error {
		return nil
	})
	if err == nil {
		tst.Error("Expected an error for malformed input")
	}
}

func TestResume(tst *testing.T) {
	dir, err := ioutil.TempDir("", "batch")
	if err != nil {
		tst.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "results.db")

	t := testTables(tst)
	input := fastaInput(10)
	run := func(input string) (Summary, []*analyzer.Record) {
		store, err := checkpoint.Open(path, 1000)
		if err != nil {
			tst.Fatal(err)
		}
		defer store.Close()
		if _, err := store.CheckSettings("test"); err != nil {
			tst.Fatal(err)
		}
		opts := testOptions()
		opts.Store = store
		var recs []*analyzer.Record
		s, err := Run(strings.NewReader(input), t, opts, func(rec *analyzer.Record) error {
			recs = append(recs, rec)
			return nil
		})
		if err != nil {
			tst.Fatal(err)
		}
		return s, recs
	}

	s1, recs1 := run(input)
	if s1.NCached != 0 {
		tst.Error("Expected no cached records, got", s1.NCached)
	}
	s2, recs2 := run(input)
	if s2.NCached != 10 {
		tst.Error("Expected 10 cached records, got", s2.NCached)
	}
	for i := range recs1 {
		if recs1[i].Name != recs2[i].Name || recs1[i].Codon != recs2[i].Codon {
			tst.Error("Cached record differs:", recs1[i].Name, recs2[i].Name)
		}
		for _, name := range analyzer.IndexNames {
			r1, r2 := recs1[i].Indices[name], recs2[i].Indices[name]
			if r1.Defined != r2.Defined {
				tst.Error(recs1[i].Name, name, ": expected", r1, ", got", r2)
			}
		}
	}

	// an edited sequence is recomputed
	edited := strings.Replace(input, genes[0], "ATGGCCGCCGCCTAA", 1)
	s3, recs3 := run(edited)
	if s3.NCached != 9 {
		tst.Error("Expected 9 cached records, got", s3.NCached)
	}
	if recs3[0].Codon[bio.CodonIndex("GCC")] != 3 {
		tst.Error("Expected 3 GCC codons, got", recs3[0].Codon[bio.CodonIndex("GCC")])
	}
}
