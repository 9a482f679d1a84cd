package batch

import (
	"bitbucket.org/Davydov/codonw/analyzer"
)

// msg delivers the record of the sequence number idx.
type msg struct {
	idx    int
	rec    *analyzer.Record
	cached bool
}

// result is emitted after the input channel closes.
type result struct {
	summary Summary
	err     error
}

// newCollector starts the collector goroutine.
//   - send msg values on the returned chan
//   - close the chan when workers are done
//   - read the final result from the second chan
//
// Records are passed to fn in the order of idx. After the first fn
// error stop is closed and remaining records are discarded.
func newCollector(fn func(*analyzer.Record) error, stop chan<- struct{}) (chan<- msg, <-chan result) {
	in := make(chan msg)
	out := make(chan result, 1)

	go func() {
		defer close(out)

		var res result
		pending := make(map[int]msg)
		next := 0

		emit := func(m msg) {
			if res.err != nil {
				return
			}
			res.summary.NSequences++
			if m.cached {
				res.summary.NCached++
			}
			for _, c := range m.rec.Codon {
				res.summary.NCodons += c
			}
			for _, w := range m.rec.Warnings {
				log.Warningf("%s: %s", m.rec.Name, w)
				res.summary.NWarnings++
			}
			if err := fn(m.rec); err != nil {
				res.err = err
				close(stop)
			}
		}

		for m := range in {
			pending[m.idx] = m
			for {
				m, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				emit(m)
				next++
			}
		}
		out <- res
	}()

	return in, out
}
