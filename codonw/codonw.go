/*

Codonw computes codon usage statistics of protein coding sequences:
codon and amino acid usage, RSCU, GC content, the effective number of
codons, CAI, Fop, CBI, hydropathy and aromaticity.

The basic usage of codonw looks like this:

	codonw analyze genes.fst

, this will print all the indices for every sequence using the
standard genetic code and E. coli reference tables. Other tools
compute a CAI reference table from highly expressed genes (refgen),
perform correspondence analysis (coa) and draw the Nc plot (encplot).

To see all the options run:

	codonw --help-long

*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/bio"
	"bitbucket.org/Davydov/codonw/indices"
	"bitbucket.org/Davydov/codonw/ref"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("codonw")
var formatter = logging.MustStringFormatter(`%{message}`)

// modules are the logging modules affected by --loglevel.
var modules = []string{"codonw", "batch", "ref", "coa", "checkpoint"}

// command-line options
var (
	// application
	app = kingpin.New("codonw", "codon usage indices").Version(version)

	// genetic code and reference tables
	gcodeID   = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	gcodeFile = app.Flag("gcodefn", "NCBI gc.prt file with genetic codes (the code is selected by -gcode)").ExistingFile()
	fopSet    = app.Flag("fop", "built-in optimal codon set for Fop").Default("ecoli").String()
	fopFile   = app.Flag("fopfn", "optimal codon file for Fop (overrides -fop)").ExistingFile()
	cbiSet    = app.Flag("cbi", "built-in optimal codon set for CBI, Fop table by default").String()
	cbiFile   = app.Flag("cbifn", "optimal codon file for CBI (overrides -cbi)").ExistingFile()
	caiSet    = app.Flag("cai", "built-in relative adaptiveness set for CAI").Default("ecoli").String()
	caiFile   = app.Flag("caifn", "relative adaptiveness file for CAI (overrides -cai)").ExistingFile()
	hydroFile = app.Flag("hydrofn", "amino acid hydropathy scale, Kyte-Doolittle by default").ExistingFile()

	// sequences and indices
	keepStop   = app.Flag("keepstop", "keep the terminal stop codon").Bool()
	factorRare = app.Flag("rare", "factor in rare codons in Fop").Bool()
	encMin     = app.Flag("encmin", "minimal amino acid count used in Nc").Default("2").Int()
	encNoInt   = app.Flag("encnoint", "don't interpolate the three-fold class average in Nc").Bool()
	encFb      = app.Flag("encfallback", "average homozygosity of a degeneracy class without data "+
		"(none: Nc is undefined, uniform: 1/k)").Default("none").Enum("none", "uniform")

	// technical
	nThreads   = app.Flag("nt", "number of threads to use").Int()
	cpuProfile = app.Flag("cpuprofile", "write cpu profile to file").String()
	noWarn     = app.Flag("nowarn", "don't report sequence warnings").Bool()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

// refConfig returns the reference table configuration.
func refConfig() ref.Config {
	return ref.Config{
		GeneticCode:     *gcodeID,
		GeneticCodeFile: *gcodeFile,
		FopSet:          *fopSet,
		FopFile:         *fopFile,
		CBISet:          *cbiSet,
		CBIFile:         *cbiFile,
		CAISet:          *caiSet,
		CAIFile:         *caiFile,
		HydropathyFile:  *hydroFile,
	}
}

// tables creates reference tables or exits.
func tables() *ref.Tables {
	t, err := ref.New(refConfig())
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Genetic code: %d, \"%s\"", t.GCode.ID, t.GCode.Name)
	log.Infof("Fop: %s, CBI: %s, CAI: %s", t.Fop.Name, t.CBI.Name, t.CAI.Name)
	return t
}

// analysisOptions returns analysis settings or exits.
func analysisOptions(gcode *bio.GeneticCode) analyzer.Options {
	opts := analyzer.DefaultOptions()
	opts.FactorInRare = *factorRare
	opts.ENC.MinCount = *encMin
	opts.ENC.InterpolateThreeFold = !*encNoInt
	if *encFb == "uniform" {
		opts.ENC.Fallback = indices.UniformFallback(maxDegeneracy(gcode))
	}
	if err := opts.ENC.Validate(); err != nil {
		log.Fatal(err)
	}
	return opts
}

// maxDegeneracy returns the largest synonymous family size.
func maxDegeneracy(gcode *bio.GeneticCode) (max int) {
	for aa := 0; aa < bio.StopIndex; aa++ {
		if d := gcode.AADegeneracy(aa); d > max {
			max = d
		}
	}
	return
}

// openInput opens a file for reading, "-" is the standard input.
func openInput(fn string) io.ReadCloser {
	if fn == "-" {
		return os.Stdin
	}
	f, err := os.Open(fn)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

// isStdout tests if the file name stands for the standard output.
func isStdout(fn string) bool {
	return fn == "" || fn == "-"
}

// createOutput creates a file, empty name or "-" is the standard
// output.
func createOutput(fn string) io.WriteCloser {
	if isStdout(fn) {
		return nopCloser{os.Stdout}
	}
	f, err := os.Create(fn)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// separator converts the separator flag value.
func separator(s string) string {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return "\t"
	case "space":
		return " "
	case "comma":
		return ","
	}
	return s
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range modules {
		logging.SetLevel(level, m)
	}
	if *noWarn && level > logging.ERROR {
		logging.SetLevel(logging.ERROR, "batch")
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *nThreads > 0 {
		runtime.GOMAXPROCS(*nThreads)
	}
	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.", effectiveNThreads)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	startTime := time.Now()
	summary := &Summary{
		Version:     version,
		CommandLine: os.Args,
		NThreads:    effectiveNThreads,
	}

	switch cmd {
	case analyzeCmd.FullCommand():
		summary.Result = analyze(summary)
	case refgenCmd.FullCommand():
		summary.Result = refgen()
	case coaCmd.FullCommand():
		summary.Result = runCOA()
	case encplotCmd.FullCommand():
		summary.Result = runENCPlot()
	case tablesCmd.FullCommand():
		listTables()
	}

	summary.Time = time.Since(startTime).Seconds()
	log.Noticef("Running time: %v", time.Since(startTime))

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
