package ref

import "bitbucket.org/Davydov/codonw/bio"

// Built-in tables list codons in the order TTT, TCT, TAT, TGT, TTC,
// TCC, ..., GGG (the third base changes slower than the second one).
// fromColumns converts such an index into a codon number.
func fromColumns(i int) byte {
	b1, b3, b2 := i/16, (i%16)/4, i%4
	return byte(16*b1 + 4*b2 + b3)
}

type fopData struct {
	key, name, ref string
	class          [bio.NCodon]Class
}

type caiData struct {
	key, name, ref string
	w              [bio.NCodon]float64
}

var fopData0 = []fopData{
	{"ecoli", "Escherichia coli", "Ikemura (1985) Mol. Biol. Evol. 2:13-34 (updated by INCBI 1991)", [bio.NCodon]Class{
		2, 3, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 3, 2, 2, 3, 3, 2, 2, 2, 2, 3, 3, 3, 2,
		2, 3, 2, 2, 3, 3, 3, 3, 2, 2, 3, 2, 2, 2, 2, 2,
		3, 3, 2, 3, 2, 2, 3, 3, 2, 2, 3, 2, 2, 3, 2, 2,
	}},
	{"bsubtilis", "Bacillus subtilis", "Sharp et al (1990) Genetics & Biotech of Bacilli vol3 pp89-98", [bio.NCodon]Class{
		2, 3, 2, 2, 3, 1, 3, 2, 2, 2, 2, 2, 2, 1, 2, 2,
		3, 3, 2, 3, 2, 1, 2, 3, 2, 3, 3, 1, 2, 2, 2, 1,
		2, 3, 2, 2, 3, 1, 3, 2, 1, 2, 3, 2, 2, 2, 2, 1,
		3, 3, 2, 3, 2, 1, 3, 2, 3, 2, 3, 2, 2, 2, 2, 1,
	}},
	{"dicty", "Dictyostelium discoideum", "Sharp and Devine (1989) Nucl. Acids Res 17:5029-5039)", [bio.NCodon]Class{
		2, 2, 2, 2, 3, 2, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 3, 3, 2, 3, 2, 2, 3, 3, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 3, 2, 2, 2, 2, 2,
	}},
	{"anidulans", "Aspergillus nidulans", "Lloyd and Sharp (1991) Mol. Gen. Genet 230: 288-294", [bio.NCodon]Class{
		2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 3, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
	}},
	{"scerevisiae", "Saccharomyces cerevisiae", "Sharp and Cowe (1991) Yeast 7:657-678", [bio.NCodon]Class{
		2, 3, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 3, 2, 2, 2,
		2, 2, 2, 2, 2, 2, 3, 2, 2, 3, 3, 2, 2, 2, 2, 2,
		3, 3, 2, 2, 3, 3, 3, 2, 2, 2, 2, 3, 2, 2, 3, 2,
		3, 3, 2, 3, 3, 2, 3, 2, 2, 2, 3, 2, 2, 2, 2, 2,
	}},
	{"dmelanogaster", "Drosophila melanogaster", "Shields et al. (1988) Mol Biol Evol 5: 704-716", [bio.NCodon]Class{
		2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 3, 2, 3, 3, 3, 2, 2, 2, 2, 3, 2, 3, 2,
		2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 3, 2, 3, 2,
	}},
	{"celegans", "Caenorhabditis elegans", "Stenico, Lloyd and Sharp Nuc. Acids Res. 22: 2437-2446(1994)", [bio.NCodon]Class{
		2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
		3, 2, 2, 3, 3, 2, 3, 3, 2, 3, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 3, 2, 2, 3, 3, 3, 2, 2, 2, 2, 3, 2, 2, 3, 2,
	}},
	{"ncrassa", "Neurospora crassa", "Lloyd and Sharp (1993)", [bio.NCodon]Class{
		2, 3, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 2,
		2, 2, 2, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 3, 2, 2, 3, 3, 3, 2, 2, 2, 2, 2, 2, 2, 3, 2,
		2, 2, 2, 3, 3, 3, 3, 3, 2, 2, 2, 2, 2, 2, 3, 2,
	}},
}

var caiData0 = []caiData{
	{"ecoli", "Escherichia coli", "No reference", [bio.NCodon]float64{
		0.296, 1.000, 0.239, 0.500, 1.000, 0.744, 1.000, 1.000,
		0.020, 0.077, 0.000, 0.000, 0.020, 0.017, 0.000, 1.000,
		0.042, 0.070, 0.291, 1.000, 0.037, 0.012, 1.000, 0.356,
		0.007, 0.135, 0.124, 0.004, 1.000, 1.000, 1.000, 0.004,
		0.185, 0.965, 0.051, 0.085, 1.000, 1.000, 1.000, 0.410,
		0.003, 0.076, 1.000, 0.004, 1.000, 0.099, 0.253, 0.002,
		1.000, 1.000, 0.434, 1.000, 0.066, 0.122, 1.000, 0.724,
		0.495, 0.586, 1.000, 0.010, 0.221, 0.424, 0.259, 0.019,
	}},
	{"bsubtilis", "Bacillus subtilis", "No reference", [bio.NCodon]float64{
		0.571, 1.000, 0.500, 1.000, 1.000, 0.021, 1.000, 1.000,
		1.000, 0.458, 0.000, 0.000, 0.036, 0.021, 0.000, 1.000,
		0.857, 1.000, 1.000, 1.000, 0.143, 0.071, 0.083, 0.609,
		0.500, 0.714, 1.000, 0.022, 0.071, 0.143, 0.214, 0.043,
		0.500, 1.000, 0.417, 0.125, 1.000, 0.033, 1.000, 0.208,
		0.071, 0.867, 1.000, 0.435, 1.000, 0.200, 0.097, 0.022,
		1.000, 1.000, 0.417, 0.955, 0.188, 0.025, 1.000, 0.773,
		0.750, 0.275, 1.000, 1.000, 0.438, 0.125, 0.412, 0.045,
	}},
	{"scerevisiae", "Saccharomyces cerevisiae", "Sharp and Cowe (1991) Yeast 7:657-678", [bio.NCodon]float64{
		0.113, 1.000, 0.071, 1.000, 1.000, 0.693, 1.000, 0.077,
		0.117, 0.036, 0.000, 0.000, 1.000, 0.005, 0.000, 1.000,
		0.006, 0.047, 0.245, 0.137, 0.003, 0.009, 1.000, 0.002,
		0.039, 1.000, 1.000, 0.002, 0.003, 0.002, 0.007, 0.002,
		0.823, 0.921, 0.053, 0.021, 1.000, 1.000, 1.000, 0.031,
		0.003, 0.012, 0.135, 1.000, 1.000, 0.006, 1.000, 0.003,
		1.000, 1.000, 0.554, 1.000, 0.831, 0.316, 1.000, 0.020,
		0.002, 0.015, 1.000, 0.002, 0.018, 0.001, 0.016, 0.004,
	}},
}
