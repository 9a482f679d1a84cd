// Gcode generates bio/gcodes.go from the NCBI genetic codes file
// (gc.prt).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/codonw/bio"
)

var log = logging.MustGetLogger("gcode")

func main() {
	var rd io.Reader = os.Stdin
	if len(os.Args) > 1 && os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		rd = f
	}

	gcodes, err := bio.ParseGCPrt(rd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("package bio")
	fmt.Println()
	fmt.Println("// GeneticCodes is a map holding genetic codes.")
	fmt.Println("// This file was generated using gcode program from NCBI genetic codes file.")
	fmt.Println("var GeneticCodes = map[int]*GeneticCode{")
	for _, gc := range gcodes {
		fmt.Printf("%d: %s,\n", gc.ID, gc.GoString())
	}
	fmt.Println("}")
}
