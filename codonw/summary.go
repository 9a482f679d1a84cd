package main

// Summary is storing codonw run summary information.
type Summary struct {
	// Version stores codonw version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
	// Result is the command specific summary.
	Result interface{} `json:"result,omitempty"`
}
