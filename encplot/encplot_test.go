package encplot

import (
	"bytes"
	"testing"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/indices"
)

func TestPoints(tst *testing.T) {
	recs := []*analyzer.Record{
		{Name: "a", Indices: map[string]indices.Result{
			analyzer.GC3s: indices.Value(0.5),
			analyzer.Nc:   indices.Value(40),
		}},
		{Name: "b", Indices: map[string]indices.Result{
			analyzer.GC3s: indices.Value(0.2),
			analyzer.Nc:   indices.Undefined,
		}},
		{Name: "c", Indices: map[string]indices.Result{
			analyzer.CAI: indices.Value(0.2),
		}},
	}
	pts, n := Points(recs)
	if len(pts) != 1 || n != 2 {
		tst.Fatal("Expected 1 point and 2 skipped, got", len(pts), n)
	}
	if pts[0].X != 0.5 || pts[0].Y != 40 {
		tst.Error("Expected (0.5, 40), got", pts[0])
	}

	p, err := New("test", pts)
	if err != nil {
		tst.Fatal(err)
	}
	var b bytes.Buffer
	if err := Write(&b, p, "svg"); err != nil {
		tst.Fatal(err)
	}
	if !bytes.Contains(b.Bytes(), []byte("<svg")) {
		tst.Error("Expected SVG output")
	}
	if err := Save("plot.txt", p); err == nil {
		tst.Error("Expected an error for unsupported format")
	}
}
