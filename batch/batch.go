// Package batch analyzes FASTA files with a pool of workers. Records
// are passed to the caller in the input order.
package batch

import (
	"errors"
	"io"
	"runtime"
	"sync"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/checkpoint"
	"bitbucket.org/Davydov/codonw/codon"
	"bitbucket.org/Davydov/codonw/ref"
)

// log is the global logging variable.
var log = logging.MustGetLogger("batch")

// TotalsName is the name of the record computed from all sequences.
const TotalsName = "Average_of_genes"

// errStopped is returned by the reader when the consumer failed.
var errStopped = errors.New("stopped")

// Options are the batch run settings.
type Options struct {
	// NThreads is the number of workers, all CPUs are used if it is
	// not positive.
	NThreads int
	// KeepStop keeps the terminal stop codon.
	KeepStop bool
	// Totals produces a single record for the concatenation of all
	// sequences instead of the per-sequence records.
	Totals bool
	// Indices are the index names to compute.
	Indices []string
	// Analysis contains the analysis settings.
	Analysis analyzer.Options
	// Store keeps finished records, can be nil.
	Store *checkpoint.Store
}

// Summary describes a finished run.
type Summary struct {
	NSequences int `json:"sequences"`
	NCached    int `json:"cached"`
	NWarnings  int `json:"warnings"`
	NCodons    int `json:"codons"`
}

type job struct {
	idx int
	seq bio.Sequence
}

// Run reads FASTA records from rd, analyzes them and calls fn for
// every record in the input order. The first error returned by fn
// stops the run.
func Run(rd io.Reader, t *ref.Tables, opts Options, fn func(*analyzer.Record) error) (Summary, error) {
	if opts.Totals {
		return runTotals(rd, t, opts, fn)
	}
	nt := opts.NThreads
	if nt <= 0 {
		nt = runtime.GOMAXPROCS(0)
	}
	log.Debugf("Using %d workers", nt)

	stop := make(chan struct{})
	in, done := newCollector(fn, stop)

	jobs := make(chan job, nt)
	var wg sync.WaitGroup
	for i := 0; i < nt; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				in <- analyze(j, t, opts)
			}
		}()
	}

	readErr := make(chan error, 1)
	go func() {
		idx := 0
		err := bio.ReadFasta(rd, func(seq bio.Sequence) error {
			select {
			case jobs <- job{idx: idx, seq: seq}:
			case <-stop:
				return errStopped
			}
			idx++
			return nil
		})
		close(jobs)
		readErr <- err
	}()

	wg.Wait()
	close(in)
	res := <-done

	if err := <-readErr; err != nil && err != errStopped {
		return res.summary, err
	}
	if res.err != nil {
		return res.summary, res.err
	}
	if opts.Store != nil {
		if err := opts.Store.Flush(); err != nil {
			return res.summary, err
		}
	}
	return res.summary, nil
}

// analyze computes the record of a single sequence or loads it from
// the store.
func analyze(j job, t *ref.Tables, opts Options) msg {
	var key []byte
	if opts.Store != nil {
		key = checkpoint.Key(j.idx, j.seq.Name, j.seq.Sequence)
		rec, err := opts.Store.Load(key)
		if err != nil {
			log.Errorf("Error loading %s from checkpoint: %v", j.seq.Name, err)
		}
		if rec != nil {
			return msg{idx: j.idx, rec: rec, cached: true}
		}
	}

	seq := codon.NewSequence(j.seq.Name, j.seq.Sequence, t.GCode, opts.KeepStop)
	rec := analyzer.New(seq, t, opts.Analysis).Record(opts.Indices)

	if opts.Store != nil {
		// a failed save only costs recomputation
		if err := opts.Store.Save(key, rec); err != nil {
			log.Errorf("Error saving %s: %v", j.seq.Name, err)
		}
	}
	return msg{idx: j.idx, rec: rec}
}

// runTotals analyzes all sequences together. Usage is tallied for
// every sequence and summed, so no dinucleotide spans two sequences.
func runTotals(rd io.Reader, t *ref.Tables, opts Options, fn func(*analyzer.Record) error) (s Summary, err error) {
	total := &codon.Usage{GCode: t.GCode}
	err = bio.ReadFasta(rd, func(nseq bio.Sequence) error {
		seq := codon.NewSequence(nseq.Name, nseq.Sequence, t.GCode, opts.KeepStop)
		for _, w := range seq.Warnings() {
			log.Warningf("%s: %s", seq.Name, w)
			s.NWarnings++
		}
		s.NSequences++
		return total.Add(codon.Tally(seq))
	})
	if err != nil {
		return
	}
	s.NCodons = total.Total()
	log.Infof("Analyzing %d codons of %d sequences together", s.NCodons, s.NSequences)
	err = fn(analyzer.NewFromUsage(TotalsName, total, t, opts.Analysis).Record(opts.Indices))
	return
}
