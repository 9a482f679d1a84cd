// Package ref provides reference tables for codon usage indices:
// optimal codons (Fop, CBI), relative adaptiveness (CAI), amino acid
// hydropathy and aromaticity. Tables are immutable after creation and
// are shared between analyses.
package ref

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/bio"
)

var log = logging.MustGetLogger("ref")

// Class is the optimality class of a codon.
type Class byte

const (
	// Rare is a non-optimal (rare) codon.
	Rare Class = 1
	// Common is a codon without an optimality designation.
	Common Class = 2
	// Optimal is an optimal codon.
	Optimal Class = 3
)

func (c Class) String() string {
	switch c {
	case Rare:
		return "rare"
	case Common:
		return "common"
	case Optimal:
		return "optimal"
	}
	return fmt.Sprintf("Class(%d)", byte(c))
}

// OptimalCodons designates codon optimality.
type OptimalCodons struct {
	Name  string
	Ref   string
	Class [bio.NCodon]Class
}

// NewOptimalCodons checks classes and creates an optimal codon table.
func NewOptimalCodons(name, ref string, class [bio.NCodon]Class) (*OptimalCodons, error) {
	for c, cl := range class {
		if cl < Rare || cl > Optimal {
			return nil, fmt.Errorf("%s: illegal class %d for codon %s, permissible values are 1 (rare), 2 (common) and 3 (optimal)",
				name, cl, bio.CodonString(byte(c)))
		}
	}
	return &OptimalCodons{Name: name, Ref: ref, Class: class}, nil
}

// HasOptimal tests if any sense codon in any synonymous family is
// optimal.
func (oc *OptimalCodons) HasOptimal(gcode *bio.GeneticCode) bool {
	for c, cl := range oc.Class {
		if cl == Optimal && gcode.Synonymous(byte(c)) {
			return true
		}
	}
	return false
}

// Adaptiveness values below zeroW are replaced by minW.
const (
	zeroW = 1e-4
	minW  = 0.01
)

// Adaptiveness is a relative adaptiveness (w) table used for CAI.
type Adaptiveness struct {
	Name string
	Ref  string
	W    [bio.NCodon]float64
}

// NewAdaptiveness checks values and creates a relative adaptiveness
// table. Values below 1e-4 are replaced by 0.01.
func NewAdaptiveness(name, ref string, w [bio.NCodon]float64) (*Adaptiveness, error) {
	a := &Adaptiveness{Name: name, Ref: ref}
	for c, v := range w {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, fmt.Errorf("%s: adaptiveness of codon %s is %v, expected a value between 0 and 1",
				name, bio.CodonString(byte(c)), v)
		}
		if v < zeroW {
			v = minW
		}
		a.W[c] = v
	}
	return a, nil
}

// Scale is a numeric property of amino acids.
type Scale struct {
	Name string
	V    [bio.NAA]float64
}

// Flags is a boolean property of amino acids.
type Flags struct {
	Name string
	V    [bio.NAA]bool
}

// Tables is a complete set of reference tables for one analysis.
type Tables struct {
	GCode      *bio.GeneticCode
	Fop        *OptimalCodons
	CBI        *OptimalCodons
	CAI        *Adaptiveness
	Hydropathy *Scale
	Aromatic   *Flags
}

// Config selects reference tables. Files take priority over the
// built-in sets.
type Config struct {
	// GeneticCode is the NCBI genetic code id.
	GeneticCode int
	// GeneticCodeFile is an optional NCBI gc.prt file.
	GeneticCodeFile string
	// FopSet is the name of the built-in optimal codon set.
	FopSet string
	// FopFile is a user optimal codon file.
	FopFile string
	// CBISet and CBIFile select the optimal codons for CBI, by
	// default the Fop table is used.
	CBISet  string
	CBIFile string
	// CAISet is the name of the built-in adaptiveness set.
	CAISet string
	// CAIFile is a user adaptiveness file.
	CAIFile string
	// HydropathyFile is a user hydropathy scale.
	HydropathyFile string
}

// DefaultConfig returns the standard code with E. coli tables.
func DefaultConfig() Config {
	return Config{
		GeneticCode: 1,
		FopSet:      "ecoli",
		CAISet:      "ecoli",
	}
}

// LoadGeneticCode returns the genetic code selected by the configuration.
func (cfg Config) LoadGeneticCode() (*bio.GeneticCode, error) {
	if cfg.GeneticCodeFile != "" {
		f, err := os.Open(cfg.GeneticCodeFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return bio.ReadGeneticCode(f, cfg.GeneticCode)
	}
	gcode, ok := bio.GeneticCodes[cfg.GeneticCode]
	if !ok {
		return nil, fmt.Errorf("unknown genetic code id %d", cfg.GeneticCode)
	}
	return gcode, nil
}

// New creates reference tables. All configuration errors are
// reported here.
func New(cfg Config) (*Tables, error) {
	gcode, err := cfg.LoadGeneticCode()
	if err != nil {
		return nil, err
	}
	t := &Tables{
		GCode:      gcode,
		Hydropathy: KyteDoolittle,
		Aromatic:   AromaticFYW,
	}

	if t.Fop, err = optimalCodons(cfg.FopSet, cfg.FopFile); err != nil {
		return nil, err
	}
	t.CBI = t.Fop
	if cfg.CBISet != "" || cfg.CBIFile != "" {
		if t.CBI, err = optimalCodons(cfg.CBISet, cfg.CBIFile); err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.CAIFile != "":
		t.CAI, err = ReadAdaptivenessFile(cfg.CAIFile)
	case cfg.CAISet != "":
		var ok bool
		if t.CAI, ok = CAISets[cfg.CAISet]; !ok {
			err = fmt.Errorf("unknown CAI set %q, available: %s", cfg.CAISet, strings.Join(CAISetNames(), ", "))
		}
	default:
		err = errors.New("no CAI reference table")
	}
	if err != nil {
		return nil, err
	}

	if cfg.HydropathyFile != "" {
		if t.Hydropathy, err = ReadScaleFile(cfg.HydropathyFile); err != nil {
			return nil, err
		}
	}

	if !t.Fop.HasOptimal(gcode) {
		log.Warningf("optimal codon table %s has no optimal codons under genetic code %v", t.Fop.Name, gcode)
	}
	log.Debugf("Genetic code: %v, Fop: %s, CBI: %s, CAI: %s", gcode, t.Fop.Name, t.CBI.Name, t.CAI.Name)
	return t, nil
}

// optimalCodons selects a built-in set or reads a file.
func optimalCodons(set, file string) (*OptimalCodons, error) {
	if file != "" {
		return ReadOptimalCodonsFile(file)
	}
	if set == "" {
		return nil, errors.New("no optimal codon reference table")
	}
	oc, ok := FopSets[set]
	if !ok {
		return nil, fmt.Errorf("unknown optimal codon set %q, available: %s", set, strings.Join(FopSetNames(), ", "))
	}
	return oc, nil
}

// FopSetNames returns sorted names of the built-in optimal codon sets.
func FopSetNames() (names []string) {
	for name := range FopSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// CAISetNames returns sorted names of the built-in adaptiveness sets.
func CAISetNames() (names []string) {
	for name := range CAISets {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
